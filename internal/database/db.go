package database

import (
	"log"

	"kurumsal-backend/internal/config"
	"kurumsal-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError: unique constraint ihlalleri gorm.ErrDuplicatedKey olarak
	// dönsün diye açık (serial number duplicate tespiti buna dayanıyor)
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Migration hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate: AutoMigrate + elle eklenen index'ler. Testlerde sqlite üzerinde de
// aynı şema kurulsun diye Init'ten ayrı tutuluyor.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.SerialNumber{},
		&models.ContactInquiry{},
		&models.AuditLog{},
	)
	if err != nil {
		return err
	}

	// serial_number case-insensitive unique olmalı: eşleşme LOWER ile yapıldığı
	// için uniqueness de LOWER üzerinden kuruluyor
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_serial_numbers_serial_lower ON serial_numbers (LOWER(serial_number))").Error
}
