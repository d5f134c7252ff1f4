package database

import (
	"fmt"
	"log"

	"github.com/framelight/studio-api/internal/config"
	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Client{},

		// Catalog entities
		&entity.ServicePackage{},
		&entity.Addon{},

		// Booking entities
		&entity.Booking{},
		&entity.BookingPackage{},
		&entity.BookingAddon{},
		&entity.Payment{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with a starter catalog and, when
// configured, an admin user
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var packageCount int64
	db.Model(&entity.ServicePackage{}).Count(&packageCount)
	if packageCount == 0 {
		packages := []entity.ServicePackage{
			{
				Name:         "Essential Photo",
				Description:  "Half-day photo coverage for intimate events",
				Price:        80000,
				Deliverables: "4 hours coverage, 150 edited photos, online gallery",
				Category:     enum.PackageCategoryPhoto,
			},
			{
				Name:         "Full Day Wedding",
				Description:  "Complete wedding day photo coverage",
				Price:        150000,
				Deliverables: "10 hours coverage, 500 edited photos, online gallery, engagement session",
				IsPopular:    true,
				Category:     enum.PackageCategoryPhoto,
			},
			{
				Name:         "Cinematic Highlight",
				Description:  "Wedding highlight film",
				Price:        120000,
				Deliverables: "5 minute highlight film, drone footage, licensed music",
				Category:     enum.PackageCategoryVideo,
			},
			{
				Name:         "Photo + Film Combo",
				Description:  "Full photo and video coverage by a two-person team",
				Price:        250000,
				Deliverables: "10 hours coverage, 500 edited photos, highlight film, online gallery",
				IsPopular:    true,
				Category:     enum.PackageCategoryCombo,
			},
		}
		for i := range packages {
			if err := db.Create(&packages[i]).Error; err != nil {
				log.Printf("Warning: failed to seed package %s: %v", packages[i].Name, err)
			}
		}
	}

	var addonCount int64
	db.Model(&entity.Addon{}).Count(&addonCount)
	if addonCount == 0 {
		addons := []entity.Addon{
			{Description: "Extra Album", Price: 20000, Quantity: 1, IsTaxable: true},
			{Description: "Second Shooter", Price: 30000, Quantity: 1, IsTaxable: true},
			{Description: "Extra Coverage Hour", Price: 15000, Quantity: 1, IsTaxable: true},
			{Description: "Print Credit", Price: 5000, Quantity: 1, IsTaxable: false},
		}
		for i := range addons {
			if err := db.Create(&addons[i]).Error; err != nil {
				log.Printf("Warning: failed to seed addon %s: %v", addons[i].Description, err)
			}
		}
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					FirstName: "Studio",
					LastName:  "Admin",
					Email:     adminEmail,
					Password:  string(hashedPassword),
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
