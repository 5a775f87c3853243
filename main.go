package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"restaurant-manager/config"
	"restaurant-manager/middlewares"
	"restaurant-manager/models"
	"restaurant-manager/router"
	"restaurant-manager/storage"
	"restaurant-manager/utils"
)

func init() {
	utils.InitLogger()
}

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := buildStore(cfg)

	rateLimiter := middlewares.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
	r := router.SetupRouter(store, cfg.AllowOrigin, rateLimiter)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// buildStore memilih backend sekali saat startup. Database yang tidak
// bisa dihubungi bukan alasan untuk exit: proses jatuh ke store
// in-memory dan tetap melayani.
func buildStore(cfg *config.Config) storage.Store {
	if cfg.DBKind != config.KindMemory {
		db, err := config.OpenDB(cfg)
		if err == nil {
			gs := storage.NewGormStore(db)
			if err := gs.AutoMigrate(); err == nil {
				utils.InfoLogger.Printf("Using %s database storage", cfg.DBKind)
				return gs
			}
			utils.ErrorLogger.Printf("AutoMigrate failed, falling back to in-memory storage: %v", err)
		} else {
			utils.ErrorLogger.Printf("Database unavailable, falling back to in-memory storage: %v", err)
		}
	}

	utils.InfoLogger.Println("Using in-memory storage")
	mem := storage.NewMemStore()
	seedSampleData(mem)
	return mem
}

// seedSampleData mengisi store in-memory dengan contoh data supaya UI
// punya sesuatu untuk ditampilkan saat development tanpa database.
func seedSampleData(store storage.Store) {
	_ = store.CreateMenuItem(&models.MenuItem{
		Name:        "Sample Cake",
		Description: "A delicious sample cake",
		Price:       1000,
		Category:    "Dessert",
		Available:   true,
	})
	_ = store.CreateTable(&models.Table{
		Number:   1,
		Capacity: 4,
	})
	_ = store.CreateCustomer(&models.Customer{
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "555-1234",
	})
}
