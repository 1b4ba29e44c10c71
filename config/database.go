package config

import (
	"fmt"

	"github.com/haddadin-dev/MazajMart/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes the database connection and migrates the schema
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	err = DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.AddOn{},
		&models.News{},
		&models.Product{},
		&models.VariantGroup{},
		&models.VariantOption{},
		&models.Offer{},
		&models.Coupon{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	backfillOriginalPrices()
}

// backfillOriginalPrices fills OriginalPrice on legacy options imported
// without one. The pricing engine falls back to Price at read time anyway;
// this keeps newly persisted rows canonical.
func backfillOriginalPrices() {
	err := DB.Exec(`
		UPDATE variant_options
		SET original_price = price
		WHERE original_price = 0
		AND offer_type <> 'none'
		AND offer_type <> ''
	`).Error
	if err != nil {
		panic(fmt.Sprintf("Failed to backfill original prices: %v", err))
	}
}
