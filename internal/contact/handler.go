package contact

import (
	"kurumsal-backend/internal/database"
	"kurumsal-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type InquiryResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Company   *string `json:"company"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

func buildInquiryResponse(q *models.ContactInquiry) InquiryResponse {
	return InquiryResponse{
		ID:        q.ID,
		Name:      q.Name,
		Email:     q.Email,
		Company:   q.Company,
		Message:   q.Message,
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/admin/inquiries (en yeni talep başta)
func ListInquiriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var inquiries []models.ContactInquiry
		if err := database.DB.Order("created_at desc, id desc").Find(&inquiries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Talepler listelenemedi")
		}

		res := make([]InquiryResponse, 0, len(inquiries))
		for i := range inquiries {
			res = append(res, buildInquiryResponse(&inquiries[i]))
		}
		return c.JSON(res)
	}
}

// PUT /api/admin/inquiries/:id/status
func UpdateInquiryStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var inquiry models.ContactInquiry
		if err := database.DB.First(&inquiry, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Talep bulunamadı")
		}

		var body UpdateInquiryStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		status := models.InquiryStatus(body.Status)
		if status != models.InquiryStatusNew && status != models.InquiryStatusReplied {
			return fiber.NewError(fiber.StatusBadRequest, "Status 'new' veya 'replied' olmalı")
		}

		if err := database.DB.Model(&inquiry).Update("status", status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Talep güncellenemedi")
		}

		return c.JSON(buildInquiryResponse(&inquiry))
	}
}

// DELETE /api/admin/inquiries/:id
func DeleteInquiryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.ContactInquiry{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Talep silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Talep bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
