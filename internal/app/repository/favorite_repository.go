package repository

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *model.FavoriteStore) error
	FindActive(userID, storeID uint) (*model.FavoriteStore, error)
	FindActiveByUserID(userID uint) ([]model.FavoriteStore, error)
	SoftDelete(id uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(favorite *model.FavoriteStore) error {
	if err := r.db.Create(favorite).Error; err != nil {
		logger.Error("Failed to create favorite in database", err, map[string]interface{}{
			"user_id":  favorite.UserID,
			"store_id": favorite.StoreID,
		})
		return err
	}

	logger.Debug("Favorite created in database", map[string]interface{}{
		"favorite_id": favorite.ID,
		"user_id":     favorite.UserID,
		"store_id":    favorite.StoreID,
	})
	return nil
}

// FindActive (사용자, 가게)의 활성 찜 행. 없으면 gorm.ErrRecordNotFound.
func (r *favoriteRepository) FindActive(userID, storeID uint) (*model.FavoriteStore, error) {
	var favorite model.FavoriteStore
	err := r.db.Where("user_id = ? AND store_id = ? AND is_deleted = ?", userID, storeID, false).
		First(&favorite).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find active favorite in database", err, map[string]interface{}{
				"user_id":  userID,
				"store_id": storeID,
			})
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindActiveByUserID(userID uint) ([]model.FavoriteStore, error) {
	var favorites []model.FavoriteStore
	if err := r.db.Preload("Store").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		logger.Error("Failed to find favorites by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return favorites, nil
}

// SoftDelete 행을 지우지 않고 is_deleted만 올린다
func (r *favoriteRepository) SoftDelete(id uint) error {
	if err := r.db.Model(&model.FavoriteStore{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		logger.Error("Failed to soft-delete favorite in database", err, map[string]interface{}{
			"favorite_id": id,
		})
		return err
	}
	return nil
}
