package db

import (
	"crowdfund_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.Cause{}, &domain.DonationOrder{}, &domain.Donation{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	SeedCauses(db)                      // Insert the default causes
	logrus.Info("Migration completed.") // Log successful migration
}

// SeedCauses inserts the default cause catalogue, skipping titles that already exist
func SeedCauses(db *gorm.DB) {
	causes := []domain.Cause{
		{Title: "Old Age Support", Description: "Providing care and essentials to elderly individuals.", Image: "https://images.unsplash.com/photo-1494438043283-22a3c46831a4", Raised: 10000, Goal: 10000},
		{Title: "Education for Poor Kids", Description: "Helping children access quality education.", Image: "https://images.unsplash.com/photo-1567057419565-4349c49d8a04", Raised: 8000, Goal: 12000},
		{Title: "Food Donation", Description: "Ensuring no one goes to sleep hungry.", Image: "https://images.unsplash.com/photo-1609139003551-ee40f5f73ec0", Raised: 3000, Goal: 6000},
		{Title: "Medical Aid for Children", Description: "Providing medical care and support to underprivileged children.", Image: "https://plus.unsplash.com/premium_photo-1661306540580-1e6e374ecf9d", Raised: 5000, Goal: 10000},
		{Title: "Clean Water Initiative", Description: "Providing access to clean and safe drinking water in rural areas.", Image: "https://plus.unsplash.com/premium_photo-1678837556048-8809e355241b", Raised: 4000, Goal: 9000},
		{Title: "Disaster Relief Fund", Description: "Providing immediate support to victims of natural disasters.", Image: "https://plus.unsplash.com/premium_photo-1663089162887-403fb53108cd", Raised: 7000, Goal: 15000},
	}
	// Insert each cause unless its title is already present
	for _, cause := range causes {
		var existing domain.Cause
		if err := db.Where("title = ?", cause.Title).First(&existing).Error; err == nil {
			continue // Already seeded
		}
		if err := db.Create(&cause).Error; err != nil {
			logrus.Warnf("failed to seed cause %q: %v", cause.Title, err) // Log and keep going
		}
	}
}
