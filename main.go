package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/maurozn/storefront-api/config"
	"github.com/maurozn/storefront-api/models"
	"github.com/maurozn/storefront-api/payments"
	"github.com/maurozn/storefront-api/repository"
	"github.com/maurozn/storefront-api/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	// Catalog and accounts are logically separate stores; they may share a
	// DSN but never a repository.
	catalogDB := openDatabase(cfg.CatalogDSN)
	usersDB := catalogDB
	if cfg.UsersDSN != cfg.CatalogDSN {
		usersDB = openDatabase(cfg.UsersDSN)
	}

	if err := catalogDB.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	if err := usersDB.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	catalog := repository.NewCatalogStore(catalogDB)
	accounts := repository.NewAccountStore(usersDB)

	if err := catalog.SeedProducts(defaultProducts()); err != nil {
		log.Fatalf("❌ Catalog seeding failed: %v", err)
	}

	provider := payments.NewStripeClient(cfg.StripeAPIURL, cfg.StripeSecretKey)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.BaseURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie-backed sessions hold the cart and the authenticated user
	r.Use(sessions.Sessions("storefront_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:  catalog,
		Accounts: accounts,
		Provider: provider,
		Config:   cfg,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// openDatabase sets up a GORM DB connection
func openDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// defaultProducts is the catalog seed, inserted once on an empty table.
func defaultProducts() []models.Product {
	return []models.Product{
		{Name: "T-Shirt", Description: "100% cotton", Price: price(19.99)},
		{Name: "Mug", Description: "Ceramic, 350ml", Price: price(9.99)},
		{Name: "Notebook", Description: "A5 size, 200 pages", Price: price(5.49)},
	}
}

func price(v float64) *float64 {
	return &v
}
