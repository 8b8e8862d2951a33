package db

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Owner{},
		&model.Rider{},
		&model.Category{},
		&model.Payment{},
		&model.Store{},
		&model.StorePayment{},
		&model.Menu{},
		&model.Order{},
		&model.Review{},
		&model.FavoriteStore{},
		&model.Coupon{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedBaseData(DB); err != nil {
		logger.Error("Failed to seed base data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// seedBaseData inserts the default payment methods and categories when the
// tables are empty. Safe to run on every startup.
func seedBaseData(db *gorm.DB) error {
	var paymentCount int64
	if err := db.Model(&model.Payment{}).Count(&paymentCount).Error; err != nil {
		return err
	}
	if paymentCount == 0 {
		payments := []model.Payment{
			{Name: "만나서 카드결제"},
			{Name: "만나서 현금 결제"},
		}
		if err := db.Create(&payments).Error; err != nil {
			return err
		}
		logger.Info("Default payment methods seeded", map[string]interface{}{
			"count": len(payments),
		})
	}

	var categoryCount int64
	if err := db.Model(&model.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		var categories []model.Category
		for _, name := range model.DefaultCategoryNames() {
			categories = append(categories, model.Category{Name: name})
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		logger.Info("Default categories seeded", map[string]interface{}{
			"count": len(categories),
		})
	}

	return nil
}
