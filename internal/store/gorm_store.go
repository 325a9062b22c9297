package store

import (
	"errors"
	"fmt"
	"strings"

	"kurumsal-backend/internal/models"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindSerial(query string) (*models.SerialNumber, error) {
	// '%' ve '_' escape edilmez, sorgu doğrudan LIKE deseni olarak çalışır;
	// '%' girdisi tüm kayıtları eşler ve id sırasına göre ilki döner
	pattern := "%" + strings.ToLower(query) + "%"

	var sn models.SerialNumber
	err := s.db.
		Where("LOWER(serial_number) LIKE ?", pattern).
		Order("id asc").
		First(&sn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("serial sorgusu başarısız: %w", err)
	}
	return &sn, nil
}

// ProductForSerial: public arama yolunda serial ile ürün arasında foreign key
// yok, eşleştirme serbest metin üzerinden yapılıyor. Önce product_name'in
// katalogdaki adlarla birebir eşleşmesi denenir, sonra model alanı üzerinden
// LIKE ile aranır.
func (s *GormStore) ProductForSerial(sn *models.SerialNumber) (*models.Product, error) {
	var p models.Product

	if sn.ProductName != nil {
		name := strings.TrimSpace(*sn.ProductName)
		if name != "" {
			err := s.db.Preload("Category").
				Where("name_en = ? OR name_ko = ?", name, name).
				Order("id asc").
				First(&p).Error
			if err == nil {
				return &p, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("ürün sorgusu başarısız: %w", err)
			}
		}
	}

	if sn.Model != nil {
		model := strings.TrimSpace(*sn.Model)
		if model != "" {
			pattern := "%" + strings.ToLower(model) + "%"
			err := s.db.Preload("Category").
				Where("LOWER(name_en) LIKE ? OR LOWER(name_ko) LIKE ?", pattern, pattern).
				Order("id asc").
				First(&p).Error
			if err == nil {
				return &p, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("ürün sorgusu başarısız: %w", err)
			}
		}
	}

	return nil, ErrNotFound
}

func (s *GormStore) GetSerial(id uint) (*models.SerialNumber, error) {
	var sn models.SerialNumber
	err := s.db.First(&sn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("serial okunamadı: %w", err)
	}
	return &sn, nil
}

func (s *GormStore) ListSerials() ([]models.SerialNumber, error) {
	var serials []models.SerialNumber
	if err := s.db.Order("created_at desc, id desc").Find(&serials).Error; err != nil {
		return nil, fmt.Errorf("serial listesi okunamadı: %w", err)
	}
	return serials, nil
}

func (s *GormStore) CreateSerial(sn *models.SerialNumber) error {
	err := s.db.Create(sn).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSerial
	}
	if err != nil {
		return fmt.Errorf("serial oluşturulamadı: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateSerial(id uint, fields map[string]interface{}) (*models.SerialNumber, error) {
	var sn models.SerialNumber
	if err := s.db.First(&sn, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("serial okunamadı: %w", err)
	}

	if len(fields) == 0 {
		return &sn, nil
	}

	// Updates sadece verilen alanları yazar, updated_at'i gorm kendisi yeniler
	err := s.db.Model(&sn).Updates(fields).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateSerial
	}
	if err != nil {
		return nil, fmt.Errorf("serial güncellenemedi: %w", err)
	}
	return &sn, nil
}

func (s *GormStore) DeleteSerial(id uint) error {
	res := s.db.Delete(&models.SerialNumber{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("serial silinemedi: %w", res.Error)
	}
	// Hiç satır silinmediyse kayıt zaten yok; çağıran "zaten silinmiş" ile
	// "şimdi silindi" ayrımını yapabilsin diye NotFound dönüyoruz
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
