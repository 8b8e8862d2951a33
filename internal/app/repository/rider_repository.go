package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type RiderRepository interface {
	Create(rider *model.Rider) error
	FindByID(id uint) (*model.Rider, error)
	FindByLoginID(loginID string) (*model.Rider, error)
	ExistsByLoginID(loginID string) (bool, error)
}

type riderRepository struct {
	db *gorm.DB
}

func NewRiderRepository(db *gorm.DB) RiderRepository {
	return &riderRepository{db: db}
}

func (r *riderRepository) Create(rider *model.Rider) error {
	if err := r.db.Create(rider).Error; err != nil {
		logger.Error("Failed to create rider in database", err, map[string]interface{}{
			"login_id": rider.LoginID,
		})
		return err
	}

	logger.Debug("Rider created in database", map[string]interface{}{
		"rider_id": rider.ID,
		"login_id": rider.LoginID,
	})
	return nil
}

func (r *riderRepository) FindByID(id uint) (*model.Rider, error) {
	var rider model.Rider
	if err := r.db.First(&rider, id).Error; err != nil {
		return nil, err
	}
	return &rider, nil
}

func (r *riderRepository) FindByLoginID(loginID string) (*model.Rider, error) {
	var rider model.Rider
	if err := r.db.Where("login_id = ?", loginID).First(&rider).Error; err != nil {
		return nil, err
	}
	return &rider, nil
}

func (r *riderRepository) ExistsByLoginID(loginID string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Rider{}).
		Where("login_id = ?", loginID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
