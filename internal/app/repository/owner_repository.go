package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type OwnerRepository interface {
	Create(owner *model.Owner) error
	FindByID(id uint) (*model.Owner, error)
	FindByLoginID(loginID string) (*model.Owner, error)
	ExistsByLoginID(loginID string) (bool, error)
}

type ownerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(owner *model.Owner) error {
	if err := r.db.Create(owner).Error; err != nil {
		logger.Error("Failed to create owner in database", err, map[string]interface{}{
			"login_id": owner.LoginID,
		})
		return err
	}

	logger.Debug("Owner created in database", map[string]interface{}{
		"owner_id": owner.ID,
		"login_id": owner.LoginID,
	})
	return nil
}

func (r *ownerRepository) FindByID(id uint) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.First(&owner, id).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByLoginID(loginID string) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.Where("login_id = ?", loginID).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) ExistsByLoginID(loginID string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Owner{}).
		Where("login_id = ?", loginID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
