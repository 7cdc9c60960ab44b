package config

import (
	"log"
	"os"
	"time"

	"food-ordering-api/cache"
	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// MenuCache is nil unless REDIS_ADDR is set; a nil cache is a no-op.
var MenuCache *cache.MenuCache

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024"))

// BaseURL is the public address encoded into order-tracking QR codes
var BaseURL = getEnv("BASE_URL", "http://localhost:8080")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "food_ordering.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.CustomerDetail{},
		&models.DeliveryPerson{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Category{},
		&models.MenuItemCategory{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Review{},
		&models.Coupon{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// InitCache wires the optional redis-backed menu cache.
func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, menu cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	MenuCache = cache.NewMenuCache(client, 5*time.Minute)
	log.Println("✅ Menu cache enabled at", addr)
}
