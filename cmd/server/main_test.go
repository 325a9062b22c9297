package main

import (
	"net/http/httptest"
	"testing"

	"kurumsal-backend/internal/config"
	"kurumsal-backend/internal/database"
	"kurumsal-backend/internal/serial"
	"kurumsal-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newServerApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:serverapp?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite açılamadı: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migration hatası: %v", err)
	}
	database.DB = db

	cfg := &config.Config{
		HTTPPort:    "8080",
		JWTSecret:   "test-secret-en-az-otuz-iki-karakter",
		CORSOrigins: "https://admin.example.com",
	}
	st := store.NewGormStore(db)
	return newApp(cfg, serial.NewResolver(st), serial.NewService(st))
}

func TestPublicSearchCORSIsWildcard(t *testing.T) {
	app := newServerApp(t)

	req := httptest.NewRequest("GET", "/api/search-serial/SN1", nil)
	req.Header.Set("Origin", "https://bayi.example.com")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("public arama her origin'e açık olmalı, başlık %q", got)
	}

	// Preflight de aynı yüzeyden cevaplanmalı
	pre := httptest.NewRequest("OPTIONS", "/api/search-serial/SN1", nil)
	pre.Header.Set("Origin", "https://bayi.example.com")
	pre.Header.Set("Access-Control-Request-Method", "GET")
	resp, err = app.Test(pre)
	if err != nil {
		t.Fatalf("preflight başarısız: %v", err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("preflight her origin'e açık olmalı, başlık %q", got)
	}
}

func TestAdminCORSUsesConfiguredOrigins(t *testing.T) {
	app := newServerApp(t)

	// Listede olmayan origin başlık almaz
	req := httptest.NewRequest("GET", "/api/admin/serial-numbers", nil)
	req.Header.Set("Origin", "https://bayi.example.com")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("listede olmayan origin'e CORS başlığı yazılmamalı, %q yazıldı", got)
	}

	// Yapılandırılmış origin kendi değerini alır
	req = httptest.NewRequest("GET", "/api/admin/serial-numbers", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Errorf("yapılandırılmış origin bekleniyordu, başlık %q", got)
	}
}
