package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

// StoreStats 가게별 집계 값. review_count 비정규화 컬럼이 아니라
// 실제 행 수를 그때그때 센 결과다.
type StoreStats struct {
	ReviewCount int64   `json:"review_count"`
	OrderCount  int64   `json:"order_count"`
	AvgRating   float64 `json:"avg_rating"`
}

type StoreRepository interface {
	Create(store *model.Store, paymentIDs []uint) error
	FindByID(id uint) (*model.Store, error)
	FindByName(name string) (*model.Store, error)
	FindAll() ([]model.Store, error)
	FindByCategoryID(categoryID uint) ([]model.Store, error)
	FindByOwnerID(ownerID uint) ([]model.Store, error)
	Update(store *model.Store, paymentIDs []uint) error
	Stats(storeID uint) (*StoreStats, error)
	StatsByCategory(categoryID uint) (map[uint]*StoreStats, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

// Create 가게와 지불방식 연결 행을 한 트랜잭션으로 삽입
func (r *storeRepository) Create(store *model.Store, paymentIDs []uint) error {
	logger.Debug("Creating store in database", map[string]interface{}{
		"store_name":  store.Name,
		"owner_id":    store.OwnerID,
		"category_id": store.CategoryID,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(store).Error; err != nil {
			return err
		}
		for _, pid := range paymentIDs {
			sp := model.StorePayment{StoreID: store.ID, PaymentID: pid}
			if err := tx.Create(&sp).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"store_name": store.Name,
		})
		return err
	}

	logger.Debug("Store created in database", map[string]interface{}{
		"store_id":   store.ID,
		"store_name": store.Name,
	})
	return nil
}

func (r *storeRepository) FindByID(id uint) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByName(name string) (*model.Store, error) {
	var store model.Store
	if err := r.db.Where("name = ?", name).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindAll() ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Order("id ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) FindByCategoryID(categoryID uint) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&stores).Error; err != nil {
		logger.Error("Failed to find stores by category ID in database", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) FindByOwnerID(ownerID uint) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// Update 가게 수정. paymentIDs가 nil이 아니면 지불방식 연결을 통째로
// 교체한다 (기존 행 삭제 후 재삽입).
func (r *storeRepository) Update(store *model.Store, paymentIDs []uint) error {
	logger.Debug("Updating store in database", map[string]interface{}{
		"store_id":   store.ID,
		"store_name": store.Name,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(store).Error; err != nil {
			return err
		}
		if paymentIDs == nil {
			return nil
		}
		if err := tx.Where("store_id = ?", store.ID).
			Delete(&model.StorePayment{}).Error; err != nil {
			return err
		}
		for _, pid := range paymentIDs {
			sp := model.StorePayment{StoreID: store.ID, PaymentID: pid}
			if err := tx.Create(&sp).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to update store in database", err, map[string]interface{}{
			"store_id": store.ID,
		})
		return err
	}
	return nil
}

// Stats 단일 가게의 리뷰 수, 주문 수, 평균 평점
func (r *storeRepository) Stats(storeID uint) (*StoreStats, error) {
	stats := &StoreStats{}

	if err := r.db.Model(&model.Review{}).
		Where("store_id = ?", storeID).
		Count(&stats.ReviewCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Order{}).
		Where("store_id = ?", storeID).
		Count(&stats.OrderCount).Error; err != nil {
		return nil, err
	}

	var avg struct {
		Avg float64
	}
	if err := r.db.Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg").
		Where("store_id = ?", storeID).
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	stats.AvgRating = avg.Avg

	return stats, nil
}

// StatsByCategory 카테고리 소속 전체 가게의 집계를 한 번에 조회
func (r *storeRepository) StatsByCategory(categoryID uint) (map[uint]*StoreStats, error) {
	result := make(map[uint]*StoreStats)

	get := func(storeID uint) *StoreStats {
		if s, ok := result[storeID]; ok {
			return s
		}
		s := &StoreStats{}
		result[storeID] = s
		return s
	}

	var reviewRows []struct {
		StoreID uint
		Count   int64
		Avg     float64
	}
	if err := r.db.Model(&model.Review{}).
		Select("reviews.store_id, COUNT(reviews.id) as count, COALESCE(AVG(reviews.rating), 0) as avg").
		Joins("JOIN stores ON stores.id = reviews.store_id").
		Where("stores.category_id = ?", categoryID).
		Group("reviews.store_id").
		Scan(&reviewRows).Error; err != nil {
		logger.Error("Failed to aggregate reviews by category in database", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	for _, row := range reviewRows {
		s := get(row.StoreID)
		s.ReviewCount = row.Count
		s.AvgRating = row.Avg
	}

	var orderRows []struct {
		StoreID uint
		Count   int64
	}
	if err := r.db.Model(&model.Order{}).
		Select("orders.store_id, COUNT(orders.id) as count").
		Joins("JOIN stores ON stores.id = orders.store_id").
		Where("stores.category_id = ?", categoryID).
		Group("orders.store_id").
		Scan(&orderRows).Error; err != nil {
		logger.Error("Failed to aggregate orders by category in database", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	for _, row := range orderRows {
		get(row.StoreID).OrderCount = row.Count
	}

	return result, nil
}
