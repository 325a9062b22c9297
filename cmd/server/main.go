package main

import (
	"log"

	"kurumsal-backend/internal/audit"
	"kurumsal-backend/internal/auth"
	"kurumsal-backend/internal/catalog"
	"kurumsal-backend/internal/config"
	"kurumsal-backend/internal/contact"
	"kurumsal-backend/internal/database"
	"kurumsal-backend/internal/models"
	"kurumsal-backend/internal/serial"
	"kurumsal-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func newApp(cfg *config.Config, resolver *serial.Resolver, serialService *serial.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Beklenmeyen hata:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	// Public arama widget'ı farklı origin'lerden embed ediliyor: public yüzey
	// her zaman wildcard. Admin ve auth uçları CORS_ALLOWED_ORIGINS ile sınırlı.
	publicCORS := cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,OPTIONS",
	})
	adminCORS := cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	})
	app.Use("/api/search-serial", publicCORS)
	app.Use("/api/products", publicCORS)
	app.Use("/api/categories", publicCORS)
	app.Use("/api/auth", adminCORS)
	app.Use("/api/admin", adminCORS)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Public site
	api.Get("/search-serial/:serial?", serial.SearchSerialHandler(resolver))
	api.Get("/products", catalog.ListProductsHandler())
	api.Get("/categories", catalog.ListCategoriesHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Serial number yönetimi
	adminRoutes.Get("/serial-numbers", serial.ListSerialNumbersHandler(serialService))
	adminRoutes.Post("/serial-numbers", serial.CreateSerialNumberHandler(serialService))
	adminRoutes.Post("/serial-numbers/import", serial.ImportSerialNumbersHandler(serialService))
	adminRoutes.Get("/serial-numbers/:id/resolve", serial.ResolveSerialNumberHandler(resolver))
	adminRoutes.Put("/serial-numbers/:id", serial.UpdateSerialNumberHandler(serialService))
	adminRoutes.Delete("/serial-numbers/:id", serial.DeleteSerialNumberHandler(serialService))

	// Ürün yönetimi
	adminRoutes.Get("/products", catalog.ListAdminProductsHandler())
	adminRoutes.Post("/products", catalog.CreateProductHandler())
	adminRoutes.Put("/products/:id/active", catalog.SetProductActiveHandler())
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler())
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler())

	// Kategori yönetimi
	adminRoutes.Get("/categories", catalog.ListAdminCategoriesHandler())
	adminRoutes.Post("/categories", catalog.CreateCategoryHandler())
	adminRoutes.Put("/categories/:id", catalog.UpdateCategoryHandler())
	adminRoutes.Delete("/categories/:id", catalog.DeleteCategoryHandler())

	// Müşteri talepleri
	adminRoutes.Get("/inquiries", contact.ListInquiriesHandler())
	adminRoutes.Put("/inquiries/:id/status", contact.UpdateInquiryStatusHandler())
	adminRoutes.Delete("/inquiries/:id", contact.DeleteInquiryHandler())

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	return app
}

func main() {
	cfg := config.Load()
	database.Init(cfg)

	st := store.NewGormStore(database.DB)
	app := newApp(cfg, serial.NewResolver(st), serial.NewService(st))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
