package repository

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByLoginID(loginID string) (*model.User, error)
	ExistsByLoginID(loginID string) (bool, error)
	Update(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"login_id": user.LoginID,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"login_id": user.LoginID,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id":  user.ID,
		"login_id": user.LoginID,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find user by ID in database", err, map[string]interface{}{
				"user_id": id,
			})
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByLoginID(loginID string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("login_id = ?", loginID).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find user by login ID in database", err, map[string]interface{}{
				"login_id": loginID,
			})
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByLoginID(loginID string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).
		Where("login_id = ?", loginID).
		Count(&count).Error; err != nil {
		logger.Error("Failed to count users by login ID in database", err, map[string]interface{}{
			"login_id": loginID,
		})
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Update(user *model.User) error {
	logger.Debug("Updating user in database", map[string]interface{}{
		"user_id":  user.ID,
		"login_id": user.LoginID,
	})

	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}
