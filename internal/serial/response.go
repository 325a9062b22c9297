package serial

import (
	"time"

	"kurumsal-backend/internal/locale"
	"kurumsal-backend/internal/models"
)

// SerialPayload: aramanın serial tarafı. Public widget ve admin detay
// görünümü aynı şekli tüketir.
type SerialPayload struct {
	ID               uint    `json:"id"`
	SerialNumber     string  `json:"serial_number"`
	ProductName      *string `json:"product_name"`
	Model            *string `json:"model"`
	ManufactureDate  *string `json:"manufacture_date"`
	InstallationDate *string `json:"installation_date"`
	Location         *string `json:"location"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes"`
}

// SearchResponse: dış kontrat. İki top-level anahtar: serialNumber ve product
// (ürün eşleşmediyse null).
type SearchResponse struct {
	SerialNumber SerialPayload       `json:"serialNumber"`
	Product      *locale.ProductView `json:"product"`
}

func BuildSearchResponse(res *SearchResult, lang locale.Language) SearchResponse {
	sn := res.Serial

	return SearchResponse{
		SerialNumber: SerialPayload{
			ID:               sn.ID,
			SerialNumber:     sn.SerialNumber,
			ProductName:      sn.ProductName,
			Model:            sn.Model,
			ManufactureDate:  formatDate(sn.ManufactureDate),
			InstallationDate: formatDate(sn.InstallationDate),
			Location:         sn.Location,
			Status:           locale.PublicStatus(sn.Status),
			Notes:            sn.Notes,
		},
		Product: locale.ProjectProduct(res.Product, lang),
	}
}

// SerialRecordResponse: admin listesindeki ham kayıt görünümü. Status burada
// admin sözlüğüyle (active/inactive/maintenance/discontinued) döner.
type SerialRecordResponse struct {
	ID               uint    `json:"id"`
	SerialNumber     string  `json:"serial_number"`
	ProductName      *string `json:"product_name"`
	Model            *string `json:"model"`
	ManufactureDate  *string `json:"manufacture_date"`
	InstallationDate *string `json:"installation_date"`
	Location         *string `json:"location"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func buildSerialRecordResponse(sn *models.SerialNumber) SerialRecordResponse {
	return SerialRecordResponse{
		ID:               sn.ID,
		SerialNumber:     sn.SerialNumber,
		ProductName:      sn.ProductName,
		Model:            sn.Model,
		ManufactureDate:  formatDate(sn.ManufactureDate),
		InstallationDate: formatDate(sn.InstallationDate),
		Location:         sn.Location,
		Status:           string(sn.Status),
		Notes:            sn.Notes,
		CreatedAt:        sn.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        sn.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
