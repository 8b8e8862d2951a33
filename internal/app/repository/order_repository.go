package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByUserID(userID uint) ([]model.Order, error)
	FindWaiting() ([]model.Order, error)
	Accept(orderID, riderID uint) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"user_id":     order.UserID,
		"store_id":    order.StoreID,
		"total_price": order.TotalPrice,
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"user_id":  order.UserID,
			"store_id": order.StoreID,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Store").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUserID(userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Preload("Store").
		Where("user_id = ?", userID).
		Order("order_time DESC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

// FindWaiting 라이더 배정 전 주문 목록 (최신순)
func (r *orderRepository) FindWaiting() ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Preload("Store").
		Where("rider_id IS NULL").
		Order("order_time DESC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find waiting orders in database", err, nil)
		return nil, err
	}
	return orders, nil
}

// Accept 조건부 단일 UPDATE로 주문을 수락한다. rider_id가 아직 비어
// 있을 때만 갱신되므로 동시에 수락해도 승자는 정확히 한 명이다.
// 반환값은 이번 호출이 승자였는지 여부.
func (r *orderRepository) Accept(orderID, riderID uint) (bool, error) {
	result := r.db.Model(&model.Order{}).
		Where("id = ? AND rider_id IS NULL", orderID).
		Update("rider_id", riderID)
	if result.Error != nil {
		logger.Error("Failed to accept order in database", result.Error, map[string]interface{}{
			"order_id": orderID,
			"rider_id": riderID,
		})
		return false, result.Error
	}

	accepted := result.RowsAffected > 0
	logger.Debug("Order accept attempted in database", map[string]interface{}{
		"order_id": orderID,
		"rider_id": riderID,
		"accepted": accepted,
	})
	return accepted, nil
}
