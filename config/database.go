package config

import (
	"fmt"
	"log"

	"campus-news-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
		&models.AdSubmission{},
		&models.Settings{},
		&models.AnonymousStory{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Payment references must be unique once assigned, but most submissions
	// start without one, so the empty string is excluded from the index.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uidx_ad_submissions_payment_reference
		ON ad_submissions (payment_reference) WHERE payment_reference <> ''`).Error; err != nil {
		log.Fatal("Failed to create payment reference index:", err)
	}

	return db
}
