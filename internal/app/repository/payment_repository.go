package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *model.Payment) error
	FindByID(id uint) (*model.Payment, error)
	FindByName(name string) (*model.Payment, error)
	FindAll() ([]model.Payment, error)
	FindByStoreID(storeID uint) ([]model.Payment, error)
	PairExists(storeID, paymentID uint) (bool, error)
	Attach(storeID, paymentID uint) error
	Detach(storeID, paymentID uint) (int64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) FindByID(id uint) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByName(name string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.Where("name = ?", name).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll() ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.Order("id ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByStoreID 가게가 제공하는 지불방식 목록 (store_payments 조인)
func (r *paymentRepository) FindByStoreID(storeID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Model(&model.Payment{}).
		Joins("JOIN store_payments ON store_payments.payment_id = payments.id").
		Where("store_payments.store_id = ?", storeID).
		Order("payments.id ASC").
		Find(&payments).Error
	if err != nil {
		logger.Error("Failed to find payments by store ID in database", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) PairExists(storeID, paymentID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.StorePayment{}).
		Where("store_id = ? AND payment_id = ?", storeID, paymentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *paymentRepository) Attach(storeID, paymentID uint) error {
	sp := model.StorePayment{StoreID: storeID, PaymentID: paymentID}
	if err := r.db.Create(&sp).Error; err != nil {
		logger.Error("Failed to attach payment to store in database", err, map[string]interface{}{
			"store_id":   storeID,
			"payment_id": paymentID,
		})
		return err
	}
	return nil
}

func (r *paymentRepository) Detach(storeID, paymentID uint) (int64, error) {
	result := r.db.Where("store_id = ? AND payment_id = ?", storeID, paymentID).
		Delete(&model.StorePayment{})
	if result.Error != nil {
		logger.Error("Failed to detach payment from store in database", result.Error, map[string]interface{}{
			"store_id":   storeID,
			"payment_id": paymentID,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
