package locale

import (
	"testing"

	"kurumsal-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func sampleProduct() *models.Product {
	return &models.Product{
		ID:            1,
		NameKo:        "FCA-9000 시리즈",
		NameEn:        "FCA-9000 Series",
		DescriptionKo: strPtr("산업용 제어 시스템"),
		DescriptionEn: strPtr("Industrial control system"),
		FeaturesKo:    []string{"원격 모니터링"},
		FeaturesEn:    []string{"Remote monitoring"},
		Category: &models.Category{
			ID:     2,
			NameKo: "제어 시스템",
			NameEn: "Control System",
		},
	}
}

func TestProjectProduct_SelectsRequestedLanguage(t *testing.T) {
	p := sampleProduct()

	ko := ProjectProduct(p, LanguageKo)
	if ko.Name != "FCA-9000 시리즈" || *ko.Description != "산업용 제어 시스템" {
		t.Errorf("ko projeksiyonu yanlış: %+v", ko)
	}
	if ko.Category.Name != "제어 시스템" {
		t.Errorf("kategori ko projeksiyonu yanlış: %q", ko.Category.Name)
	}
	if len(ko.Features) != 1 || ko.Features[0] != "원격 모니터링" {
		t.Errorf("features ko projeksiyonu yanlış: %v", ko.Features)
	}

	en := ProjectProduct(p, LanguageEn)
	if en.Name != "FCA-9000 Series" || *en.Description != "Industrial control system" {
		t.Errorf("en projeksiyonu yanlış: %+v", en)
	}
	if en.Category.Name != "Control System" {
		t.Errorf("kategori en projeksiyonu yanlış: %q", en.Category.Name)
	}
}

func TestProjectProduct_UnknownLanguageFallsBackDeterministically(t *testing.T) {
	p := sampleProduct()
	en := ProjectProduct(p, LanguageEn)

	for _, raw := range []string{"fr", "KO", "", "xx"} {
		got := ProjectProduct(p, Parse(raw))
		if got.Name != en.Name {
			t.Errorf("Parse(%q) fallback en olmalı, %q döndü", raw, got.Name)
		}
	}

	// Aynı girdi her seferinde aynı sonucu vermeli
	first := ProjectProduct(p, Parse("de"))
	second := ProjectProduct(p, Parse("de"))
	if first.Name != second.Name || *first.Description != *second.Description {
		t.Error("fallback deterministik olmalı")
	}
}

func TestProjectProduct_DoesNotMutateSource(t *testing.T) {
	p := sampleProduct()
	view := ProjectProduct(p, LanguageKo)
	view.Name = "değişti"
	view.Category.Name = "değişti"

	if p.NameKo != "FCA-9000 시리즈" || p.Category.NameKo != "제어 시스템" {
		t.Error("projeksiyon kaynak kaydı değiştirmemeli")
	}
}

func TestProjectProduct_NilSafe(t *testing.T) {
	if ProjectProduct(nil, LanguageKo) != nil {
		t.Error("nil ürün nil görünüm dönmeli")
	}
	p := sampleProduct()
	p.Category = nil
	if ProjectProduct(p, LanguageKo).Category != nil {
		t.Error("kategorisiz ürün nil kategori görünümü dönmeli")
	}
}

func TestPublicStatus_MapsAdminVocabulary(t *testing.T) {
	cases := map[models.SerialStatus]string{
		models.SerialStatusActive:       "active",
		models.SerialStatusMaintenance:  "maintenance",
		models.SerialStatusInactive:     "retired",
		models.SerialStatusDiscontinued: "retired",
	}
	for in, want := range cases {
		if got := PublicStatus(in); got != want {
			t.Errorf("PublicStatus(%q) = %q, %q bekleniyordu", in, got, want)
		}
	}
}
