package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MOHITH-R2/my-e-commerce-website/models"
	"github.com/MOHITH-R2/my-e-commerce-website/routes"
	"github.com/MOHITH-R2/my-e-commerce-website/session"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

func main() {
	log.Println("✅ Starting storefront...")

	// Load environment variables
	_ = godotenv.Load()

	catalog, accounts := initStores()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie session (cart + flash messages)
	r.Use(session.Middleware(sessionSecret()))

	// Setup routes
	routes.SetupRoutes(r, catalog, accounts)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStores picks the storage variant: relational when any database config
// is present, in-memory otherwise.
func initStores() (store.CatalogStore, store.AccountStore) {
	db := openDatabase()
	if db == nil {
		log.Println("ℹ️ No database configured, using in-memory stores")
		return store.NewMemoryCatalog(store.DefaultCatalog()...), store.NewMemoryAccounts()
	}

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if err := store.SeedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	return store.NewGormCatalog(db), store.NewGormAccounts(db)
}

// openDatabase sets up the GORM DB connection, or returns nil when nothing
// is configured. TranslateError is required so unique-index violations reach
// the account store as gorm.ErrDuplicatedKey.
func openDatabase() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect DB: %v", err)
		}
		return db
	}

	if path := os.Getenv("SQLITE_PATH"); path != "" {
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("❌ Failed to open sqlite DB: %v", err)
		}
		return db
	}

	return nil
}

func sessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("⚠️ SESSION_SECRET not set, using an insecure default")
		secret = "change_this_to_a_random_secret"
	}
	return secret
}
