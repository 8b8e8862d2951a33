package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateWithRecount(review *model.Review) error
	DeleteWithRecount(reviewID, storeID uint) error
	FindByID(id uint) (*model.Review, error)
	FindByStoreID(storeID uint) ([]model.Review, error)
	ExistsByUserAndOrder(userID, orderID uint) (bool, error)
	ReviewedOrderIDs(userID uint) (map[uint]bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// recountStore stores.review_count를 같은 트랜잭션 안에서 실제 행 수로
// 맞춘다. 이 비정규화 컬럼을 건드리는 유일한 경로.
func recountStore(tx *gorm.DB, storeID uint) error {
	var count int64
	if err := tx.Model(&model.Review{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&model.Store{}).
		Where("id = ?", storeID).
		Update("review_count", count).Error
}

// CreateWithRecount 리뷰 삽입과 review_count 재계산을 한 트랜잭션으로
// 처리한다. 둘 중 하나라도 실패하면 전부 롤백.
func (r *reviewRepository) CreateWithRecount(review *model.Review) error {
	logger.Debug("Creating review in database", map[string]interface{}{
		"user_id":  review.UserID,
		"store_id": review.StoreID,
		"rating":   review.Rating,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recountStore(tx, review.StoreID)
	})
	if err != nil {
		logger.Error("Failed to create review in database", err, map[string]interface{}{
			"user_id":  review.UserID,
			"store_id": review.StoreID,
		})
		return err
	}

	logger.Debug("Review created in database", map[string]interface{}{
		"review_id": review.ID,
		"store_id":  review.StoreID,
	})
	return nil
}

// DeleteWithRecount 리뷰 삭제와 review_count 재계산을 한 트랜잭션으로 처리
func (r *reviewRepository) DeleteWithRecount(reviewID, storeID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Review{}, reviewID).Error; err != nil {
			return err
		}
		return recountStore(tx, storeID)
	})
	if err != nil {
		logger.Error("Failed to delete review from database", err, map[string]interface{}{
			"review_id": reviewID,
			"store_id":  storeID,
		})
		return err
	}

	logger.Debug("Review deleted from database", map[string]interface{}{
		"review_id": reviewID,
		"store_id":  storeID,
	})
	return nil
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByStoreID(storeID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.Preload("User").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		logger.Error("Failed to find reviews by store ID in database", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ExistsByUserAndOrder(userID, orderID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Review{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReviewedOrderIDs 사용자가 리뷰를 남긴 주문 ID 집합
func (r *reviewRepository) ReviewedOrderIDs(userID uint) (map[uint]bool, error) {
	var orderIDs []uint
	if err := r.db.Model(&model.Review{}).
		Where("user_id = ? AND order_id IS NOT NULL", userID).
		Pluck("order_id", &orderIDs).Error; err != nil {
		return nil, err
	}

	reviewed := make(map[uint]bool, len(orderIDs))
	for _, id := range orderIDs {
		reviewed[id] = true
	}
	return reviewed, nil
}
