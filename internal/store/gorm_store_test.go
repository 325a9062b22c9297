package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"kurumsal-backend/internal/database"
	"kurumsal-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int

func newTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:gormstore%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite açılamadı: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migration hatası: %v", err)
	}
	return NewGormStore(db), db
}

func strPtr(s string) *string { return &s }

func seedSerial(t *testing.T, db *gorm.DB, sn models.SerialNumber) models.SerialNumber {
	t.Helper()
	if err := db.Create(&sn).Error; err != nil {
		t.Fatalf("seed başarısız: %v", err)
	}
	return sn
}

func TestFindSerial_CaseInsensitiveSubstring(t *testing.T) {
	s, db := newTestStore(t)
	seedSerial(t, db, models.SerialNumber{SerialNumber: "SN123456789", Status: models.SerialStatusActive})

	for _, q := range []string{"456", "sn123", "SN123456789", "N12345678"} {
		got, err := s.FindSerial(q)
		if err != nil {
			t.Fatalf("FindSerial(%q) hata: %v", q, err)
		}
		if got.SerialNumber != "SN123456789" {
			t.Errorf("FindSerial(%q) = %q", q, got.SerialNumber)
		}
	}

	if _, err := s.FindSerial("SN999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("eşleşmeyen sorgu ErrNotFound dönmeli, %v döndü", err)
	}
}

func TestFindSerial_AmbiguousMatchPicksInsertionOrder(t *testing.T) {
	s, db := newTestStore(t)
	first := seedSerial(t, db, models.SerialNumber{SerialNumber: "ABC-100"})
	seedSerial(t, db, models.SerialNumber{SerialNumber: "ABC-100-X"})

	// İki kayıt da "ABC-100" substring'ini içeriyor: ilk eklenen dönmeli
	got, err := s.FindSerial("abc-100")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("deterministik ilk aday bekleniyordu (id=%d), id=%d döndü", first.ID, got.ID)
	}
}

func TestFindSerial_WildcardInputActsAsPattern(t *testing.T) {
	s, db := newTestStore(t)
	first := seedSerial(t, db, models.SerialNumber{SerialNumber: "SN-A1"})
	seedSerial(t, db, models.SerialNumber{SerialNumber: "XK-B2"})

	// LIKE joker karakterleri aynen geçer: '%' her kaydı, '_' tek karakteri eşler
	got, err := s.FindSerial("%")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("'%%' sorgusu ilk kaydı döndürmeli, id=%d döndü", got.ID)
	}

	got, err = s.FindSerial("sn-a_")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if got.SerialNumber != "SN-A1" {
		t.Errorf("'_' tek karakteri eşlemeli, %q döndü", got.SerialNumber)
	}
}

func TestCreateSerial_DuplicateCaseInsensitive(t *testing.T) {
	s, db := newTestStore(t)
	seedSerial(t, db, models.SerialNumber{SerialNumber: "SN123456789"})

	err := s.CreateSerial(&models.SerialNumber{SerialNumber: "sn123456789"})
	if !errors.Is(err, ErrDuplicateSerial) {
		t.Fatalf("case-insensitive duplicate ErrDuplicateSerial dönmeli, %v döndü", err)
	}

	var count int64
	db.Model(&models.SerialNumber{}).Count(&count)
	if count != 1 {
		t.Errorf("duplicate insert satır sayısını değiştirmemeli, %d satır var", count)
	}
}

func TestUpdateSerial_PartialFields(t *testing.T) {
	s, db := newTestStore(t)
	sn := seedSerial(t, db, models.SerialNumber{
		SerialNumber: "SN1",
		ProductName:  strPtr("FCA-9000 Series"),
		Status:       models.SerialStatusActive,
	})

	time.Sleep(10 * time.Millisecond)

	updated, err := s.UpdateSerial(sn.ID, map[string]interface{}{"status": models.SerialStatusMaintenance})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if updated.Status != models.SerialStatusMaintenance {
		t.Errorf("status güncellenmedi: %q", updated.Status)
	}

	var fresh models.SerialNumber
	db.First(&fresh, sn.ID)
	if fresh.ProductName == nil || *fresh.ProductName != "FCA-9000 Series" {
		t.Error("verilmeyen alan eski değerini korumalı")
	}
	if !fresh.UpdatedAt.After(fresh.CreatedAt) {
		t.Error("updated_at store tarafından yenilenmeli")
	}
}

func TestUpdateSerial_NotFound(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.UpdateSerial(999, map[string]interface{}{"notes": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("olmayan id ErrNotFound dönmeli, %v döndü", err)
	}
}

func TestDeleteSerial(t *testing.T) {
	s, db := newTestStore(t)
	sn := seedSerial(t, db, models.SerialNumber{SerialNumber: "SN1"})

	if err := s.DeleteSerial(sn.ID); err != nil {
		t.Fatalf("silme başarısız: %v", err)
	}
	if err := s.DeleteSerial(sn.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("ikinci silme ErrNotFound dönmeli, %v döndü", err)
	}

	var count int64
	db.Model(&models.SerialNumber{}).Count(&count)
	if count != 0 {
		t.Errorf("silinen kayıt kalmamalı, %d satır var", count)
	}

	if err := s.DeleteSerial(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("hiç var olmamış id ErrNotFound dönmeli, %v döndü", err)
	}
}

func TestListSerials_NewestFirst(t *testing.T) {
	s, db := newTestStore(t)
	seedSerial(t, db, models.SerialNumber{SerialNumber: "SN1"})
	seedSerial(t, db, models.SerialNumber{SerialNumber: "SN2"})
	seedSerial(t, db, models.SerialNumber{SerialNumber: "SN3"})

	serials, err := s.ListSerials()
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(serials) != 3 {
		t.Fatalf("3 kayıt bekleniyordu, %d döndü", len(serials))
	}
	if serials[0].SerialNumber != "SN3" || serials[2].SerialNumber != "SN1" {
		t.Errorf("en yeni kayıt başta olmalı: %q, %q, %q",
			serials[0].SerialNumber, serials[1].SerialNumber, serials[2].SerialNumber)
	}
}

func TestProductForSerial_TextualCorrelation(t *testing.T) {
	s, db := newTestStore(t)

	cat := models.Category{NameKo: "제어 시스템", NameEn: "Control System"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("kategori seed başarısız: %v", err)
	}
	product := models.Product{
		CategoryID: &cat.ID,
		NameKo:     "FCA-9000 시리즈",
		NameEn:     "FCA-9000 Series",
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("ürün seed başarısız: %v", err)
	}

	// product_name birebir eşleşmesi
	sn := models.SerialNumber{SerialNumber: "SN1", ProductName: strPtr("FCA-9000 Series")}
	got, err := s.ProductForSerial(&sn)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if got.ID != product.ID {
		t.Errorf("yanlış ürün eşleşti: id=%d", got.ID)
	}
	if got.Category == nil || got.Category.NameEn != "Control System" {
		t.Error("kategori eager-load edilmeli")
	}

	// model alanı üzerinden LIKE eşleşmesi
	sn2 := models.SerialNumber{SerialNumber: "SN2", Model: strPtr("fca-9000")}
	got, err = s.ProductForSerial(&sn2)
	if err != nil {
		t.Fatalf("model eşleşmesi başarısız: %v", err)
	}
	if got.ID != product.ID {
		t.Errorf("model üzerinden yanlış ürün eşleşti: id=%d", got.ID)
	}

	// Hiçbir ipucu yoksa ErrNotFound
	sn3 := models.SerialNumber{SerialNumber: "SN3"}
	if _, err := s.ProductForSerial(&sn3); !errors.Is(err, ErrNotFound) {
		t.Errorf("ipucu olmayan serial ErrNotFound dönmeli, %v döndü", err)
	}

	// Eşleşmeyen metin de ErrNotFound
	sn4 := models.SerialNumber{SerialNumber: "SN4", ProductName: strPtr("bilinmeyen")}
	if _, err := s.ProductForSerial(&sn4); !errors.Is(err, ErrNotFound) {
		t.Errorf("eşleşmeyen metin ErrNotFound dönmeli, %v döndü", err)
	}
}
