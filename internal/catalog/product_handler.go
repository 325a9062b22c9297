package catalog

import (
	"strings"

	"kurumsal-backend/internal/database"
	"kurumsal-backend/internal/locale"
	"kurumsal-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AdminProductResponse struct {
	ID             uint                   `json:"id"`
	CategoryID     *uint                  `json:"category_id"`
	NameKo         string                 `json:"name_ko"`
	NameEn         string                 `json:"name_en"`
	DescriptionKo  *string                `json:"description_ko"`
	DescriptionEn  *string                `json:"description_en"`
	FeaturesKo     []string               `json:"features_ko"`
	FeaturesEn     []string               `json:"features_en"`
	Specifications map[string]interface{} `json:"specifications"`
	ImageURL       *string                `json:"image_url"`
	IsActive       bool                   `json:"is_active"`
	CreatedAt      string                 `json:"created_at"`
}

type CreateProductRequest struct {
	CategoryID     *uint                  `json:"category_id"`
	NameKo         string                 `json:"name_ko"`
	NameEn         string                 `json:"name_en"`
	DescriptionKo  *string                `json:"description_ko"`
	DescriptionEn  *string                `json:"description_en"`
	FeaturesKo     []string               `json:"features_ko"`
	FeaturesEn     []string               `json:"features_en"`
	Specifications map[string]interface{} `json:"specifications"`
	ImageURL       *string                `json:"image_url"`
}

type UpdateProductRequest struct {
	CategoryID     *uint                  `json:"category_id"`
	NameKo         *string                `json:"name_ko"`
	NameEn         *string                `json:"name_en"`
	DescriptionKo  *string                `json:"description_ko"`
	DescriptionEn  *string                `json:"description_en"`
	FeaturesKo     []string               `json:"features_ko"`
	FeaturesEn     []string               `json:"features_en"`
	Specifications map[string]interface{} `json:"specifications"`
	ImageURL       *string                `json:"image_url"`
}

type SetProductActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func buildAdminProductResponse(p *models.Product) AdminProductResponse {
	return AdminProductResponse{
		ID:             p.ID,
		CategoryID:     p.CategoryID,
		NameKo:         p.NameKo,
		NameEn:         p.NameEn,
		DescriptionKo:  p.DescriptionKo,
		DescriptionEn:  p.DescriptionEn,
		FeaturesKo:     p.FeaturesKo,
		FeaturesEn:     p.FeaturesEn,
		Specifications: p.Specifications,
		ImageURL:       p.ImageURL,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// İki dilli alan çifti ya birlikte dolu ya birlikte boş olmalı, tek dilli
// içerik UI'da null sızdırır
func validatePair(ko, en *string) bool {
	koSet := ko != nil && strings.TrimSpace(*ko) != ""
	enSet := en != nil && strings.TrimSpace(*en) != ""
	return koSet == enSet
}

func validateFeaturePair(ko, en []string) bool {
	return (len(ko) > 0) == (len(en) > 0)
}

// GET /api/products?lang=ko|en (public katalog, sadece aktif ürünler)
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := locale.Parse(c.Query("lang"))

		var products []models.Product
		err := database.DB.Preload("Category").
			Where("is_active = ?", true).
			Order("name_ko asc").
			Find(&products).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		res := make([]*locale.ProductView, 0, len(products))
		for i := range products {
			res = append(res, locale.ProjectProduct(&products[i], lang))
		}
		return c.JSON(res)
	}
}

// GET /api/admin/products (iki dil de ham haliyle döner)
func ListAdminProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Preload("Category").Order("name_ko asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		res := make([]AdminProductResponse, 0, len(products))
		for i := range products {
			res = append(res, buildAdminProductResponse(&products[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
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
		if !validateFeaturePair(body.FeaturesKo, body.FeaturesEn) {
			return fiber.NewError(fiber.StatusBadRequest, "features_ko ve features_en birlikte verilmeli")
		}

		if body.CategoryID != nil {
			var cat models.Category
			if err := database.DB.First(&cat, "id = ?", *body.CategoryID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Kategori bulunamadı")
			}
		}

		p := models.Product{
			CategoryID:     body.CategoryID,
			NameKo:         body.NameKo,
			NameEn:         body.NameEn,
			DescriptionKo:  body.DescriptionKo,
			DescriptionEn:  body.DescriptionEn,
			FeaturesKo:     body.FeaturesKo,
			FeaturesEn:     body.FeaturesEn,
			Specifications: body.Specifications,
			ImageURL:       body.ImageURL,
			IsActive:       true,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(buildAdminProductResponse(&p))
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body UpdateProductRequest
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
			p.NameKo = nameKo
			p.NameEn = nameEn
		}

		if body.DescriptionKo != nil || body.DescriptionEn != nil {
			if !validatePair(body.DescriptionKo, body.DescriptionEn) {
				return fiber.NewError(fiber.StatusBadRequest, "description_ko ve description_en birlikte güncellenmeli")
			}
			p.DescriptionKo = body.DescriptionKo
			p.DescriptionEn = body.DescriptionEn
		}

		if body.FeaturesKo != nil || body.FeaturesEn != nil {
			if !validateFeaturePair(body.FeaturesKo, body.FeaturesEn) {
				return fiber.NewError(fiber.StatusBadRequest, "features_ko ve features_en birlikte güncellenmeli")
			}
			p.FeaturesKo = body.FeaturesKo
			p.FeaturesEn = body.FeaturesEn
		}

		if body.CategoryID != nil {
			var cat models.Category
			if err := database.DB.First(&cat, "id = ?", *body.CategoryID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Kategori bulunamadı")
			}
			p.CategoryID = body.CategoryID
		}

		if body.Specifications != nil {
			p.Specifications = body.Specifications
		}
		if body.ImageURL != nil {
			p.ImageURL = body.ImageURL
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(buildAdminProductResponse(&p))
	}
}

// PUT /api/admin/products/:id/active
func SetProductActiveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body SetProductActiveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if err := database.DB.Model(&p).Update("is_active", body.IsActive).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün durumu güncellenemedi")
		}

		return c.JSON(buildAdminProductResponse(&p))
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
