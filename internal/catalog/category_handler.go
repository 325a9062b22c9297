package catalog

import (
	"strings"

	"kurumsal-backend/internal/database"
	"kurumsal-backend/internal/locale"
	"kurumsal-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AdminCategoryResponse struct {
	ID            uint    `json:"id"`
	NameKo        string  `json:"name_ko"`
	NameEn        string  `json:"name_en"`
	DescriptionKo *string `json:"description_ko"`
	DescriptionEn *string `json:"description_en"`
	Icon          *string `json:"icon"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}

type CreateCategoryRequest struct {
	NameKo        string  `json:"name_ko"`
	NameEn        string  `json:"name_en"`
	DescriptionKo *string `json:"description_ko"`
	DescriptionEn *string `json:"description_en"`
	Icon          *string `json:"icon"`
}

type UpdateCategoryRequest struct {
	NameKo        *string `json:"name_ko"`
	NameEn        *string `json:"name_en"`
	DescriptionKo *string `json:"description_ko"`
	DescriptionEn *string `json:"description_en"`
	Icon          *string `json:"icon"`
	IsActive      *bool   `json:"is_active"`
}

func buildAdminCategoryResponse(cat *models.Category) AdminCategoryResponse {
	return AdminCategoryResponse{
		ID:            cat.ID,
		NameKo:        cat.NameKo,
		NameEn:        cat.NameEn,
		DescriptionKo: cat.DescriptionKo,
		DescriptionEn: cat.DescriptionEn,
		Icon:          cat.Icon,
		IsActive:      cat.IsActive,
		CreatedAt:     cat.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/categories?lang=ko|en (public, sadece aktif kategoriler)
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := locale.Parse(c.Query("lang"))

		var categories []models.Category
		err := database.DB.
			Where("is_active = ?", true).
			Order("name_ko asc").
			Find(&categories).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategoriler listelenemedi")
		}

		res := make([]*locale.CategoryView, 0, len(categories))
		for i := range categories {
			res = append(res, locale.ProjectCategory(&categories[i], lang))
		}
		return c.JSON(res)
	}
}

// GET /api/admin/categories
func ListAdminCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.Category
		if err := database.DB.Order("name_ko asc").Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategoriler listelenemedi")
		}

		res := make([]AdminCategoryResponse, 0, len(categories))
		for i := range categories {
			res = append(res, buildAdminCategoryResponse(&categories[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/categories
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.NameKo = strings.TrimSpace(body.NameKo)
		body.NameEn = strings.TrimSpace(body.NameEn)
		if body.NameKo == "" || body.NameEn == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name_ko ve name_en zorunlu")
		}
		if !validatePair(body.DescriptionKo, body.DescriptionEn) {
			return fiber.NewError(fiber.StatusBadRequest, "description_ko ve description_en birlikte verilmeli")
		}

		cat := models.Category{
			NameKo:        body.NameKo,
			NameEn:        body.NameEn,
			DescriptionKo: body.DescriptionKo,
			DescriptionEn: body.DescriptionEn,
			Icon:          body.Icon,
			IsActive:      true,
		}

		if err := database.DB.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(buildAdminCategoryResponse(&cat))
	}
}

// PUT /api/admin/categories/:id
func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
		}

		var body UpdateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.NameKo != nil || body.NameEn != nil {
			if body.NameKo == nil || body.NameEn == nil {
				return fiber.NewError(fiber.StatusBadRequest, "name_ko ve name_en birlikte güncellenmeli")
			}
			nameKo := strings.TrimSpace(*body.NameKo)
			nameEn := strings.TrimSpace(*body.NameEn)
			if nameKo == "" || nameEn == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name_ko ve name_en boş olamaz")
			}
			cat.NameKo = nameKo
			cat.NameEn = nameEn
		}

		if body.DescriptionKo != nil || body.DescriptionEn != nil {
			if !validatePair(body.DescriptionKo, body.DescriptionEn) {
				return fiber.NewError(fiber.StatusBadRequest, "description_ko ve description_en birlikte güncellenmeli")
			}
			cat.DescriptionKo = body.DescriptionKo
			cat.DescriptionEn = body.DescriptionEn
		}

		if body.Icon != nil {
			cat.Icon = body.Icon
		}
		if body.IsActive != nil {
			cat.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori güncellenemedi")
		}

		return c.JSON(buildAdminCategoryResponse(&cat))
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Kategoriye bağlı ürün varsa silme
		var count int64
		database.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu kategoriye ait ürünler var, önce ürünleri taşıyın")
		}

		res := database.DB.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
