package store

import (
	"errors"

	"kurumsal-backend/internal/models"
)

var (
	// ErrNotFound: kayıt yok, beklenen bir sonuç (loglanmaz)
	ErrNotFound = errors.New("kayıt bulunamadı")
	// ErrDuplicateSerial: LOWER(serial_number) unique index ihlali
	ErrDuplicateSerial = errors.New("serial number zaten kayıtlı")
)

// Store: serial arama ve mutasyon yolunun veri erişim sınırı.
// Resolver ve Service yalnızca bu arayüzü görür, testlerde mock'lanır.
type Store interface {
	// FindSerial: case-insensitive substring eşleşmesi, insertion sırasına göre
	// deterministik ilk kayıt. Eşleşme yoksa ErrNotFound.
	FindSerial(query string) (*models.SerialNumber, error)

	// ProductForSerial: serial kaydındaki serbest metin (product_name, model)
	// üzerinden best-effort ürün eşleştirmesi, kategorisi eager-load edilmiş.
	// Eşleşme yoksa ErrNotFound.
	ProductForSerial(sn *models.SerialNumber) (*models.Product, error)

	GetSerial(id uint) (*models.SerialNumber, error)
	ListSerials() ([]models.SerialNumber, error)
	CreateSerial(sn *models.SerialNumber) error
	UpdateSerial(id uint, fields map[string]interface{}) (*models.SerialNumber, error)
	DeleteSerial(id uint) error
}
