package repository

import (
	"time"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type CouponRepository interface {
	Create(coupon *model.Coupon) error
	FindByID(id uint) (*model.Coupon, error)
	FindActiveByStoreID(storeID uint) ([]model.Coupon, error)
	ExistsByStoreAndDiscount(storeID uint, discount int) (bool, error)
	SoftDelete(id uint) error
	SoftDeleteExpired(now time.Time) (int64, error)
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(coupon *model.Coupon) error {
	if err := r.db.Create(coupon).Error; err != nil {
		logger.Error("Failed to create coupon in database", err, map[string]interface{}{
			"store_id": coupon.StoreID,
		})
		return err
	}
	return nil
}

func (r *couponRepository) FindByID(id uint) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) FindActiveByStoreID(storeID uint) ([]model.Coupon, error) {
	var coupons []model.Coupon
	if err := r.db.Where("store_id = ? AND is_deleted = ?", storeID, false).
		Order("id ASC").
		Find(&coupons).Error; err != nil {
		logger.Error("Failed to find coupons by store ID in database", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) ExistsByStoreAndDiscount(storeID uint, discount int) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Coupon{}).
		Where("store_id = ? AND discount = ? AND is_deleted = ?", storeID, discount, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *couponRepository) SoftDelete(id uint) error {
	if err := r.db.Model(&model.Coupon{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		logger.Error("Failed to soft-delete coupon in database", err, map[string]interface{}{
			"coupon_id": id,
		})
		return err
	}
	return nil
}

// SoftDeleteExpired 발행 후 period일이 지난 쿠폰을 일괄 만료 처리.
// period가 NULL인 쿠폰은 만료되지 않는다.
func (r *couponRepository) SoftDeleteExpired(now time.Time) (int64, error) {
	var expiredIDs []uint
	var coupons []model.Coupon

	if err := r.db.Where("is_deleted = ? AND period IS NOT NULL", false).
		Find(&coupons).Error; err != nil {
		logger.Error("Failed to load active coupons for expiry sweep", err, nil)
		return 0, err
	}

	for _, c := range coupons {
		expiresAt := c.CreatedAt.AddDate(0, 0, *c.Period)
		if !now.Before(expiresAt) {
			expiredIDs = append(expiredIDs, c.ID)
		}
	}

	if len(expiredIDs) == 0 {
		return 0, nil
	}

	result := r.db.Model(&model.Coupon{}).
		Where("id IN ?", expiredIDs).
		Update("is_deleted", true)
	if result.Error != nil {
		logger.Error("Failed to expire coupons in database", result.Error, map[string]interface{}{
			"count": len(expiredIDs),
		})
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
