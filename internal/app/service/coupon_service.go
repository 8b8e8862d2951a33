package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCouponNotFound = errors.New("쿠폰을 찾을 수 없습니다")

type CouponCreateInput struct {
	Discount int
	Period   *int
}

type CouponService interface {
	Create(user *model.User, storeID uint, input CouponCreateInput) (*model.Coupon, error)
	ListActive(storeID uint) ([]model.Coupon, error)
	Delete(user *model.User, storeID, couponID uint) error
}

type couponService struct {
	couponRepo repository.CouponRepository
	storeRepo  repository.StoreRepository
	ownerRepo  repository.OwnerRepository
}

func NewCouponService(
	couponRepo repository.CouponRepository,
	storeRepo repository.StoreRepository,
	ownerRepo repository.OwnerRepository,
) CouponService {
	return &couponService{
		couponRepo: couponRepo,
		storeRepo:  storeRepo,
		ownerRepo:  ownerRepo,
	}
}

func (s *couponService) Create(user *model.User, storeID uint, input CouponCreateInput) (*model.Coupon, error) {
	store, err := ownedStore(s.storeRepo, s.ownerRepo, user, storeID)
	if err != nil {
		return nil, err
	}

	discount := input.Discount
	coupon := &model.Coupon{
		StoreID:  store.ID,
		Discount: &discount,
		Period:   input.Period,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}

	logger.Info("Coupon created", map[string]interface{}{
		"coupon_id": coupon.ID,
		"store_id":  store.ID,
		"discount":  discount,
	})
	return coupon, nil
}

func (s *couponService) ListActive(storeID uint) ([]model.Coupon, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return s.couponRepo.FindActiveByStoreID(storeID)
}

// Delete 쿠폰 소프트 삭제 (가게 소유자만)
func (s *couponService) Delete(user *model.User, storeID, couponID uint) error {
	store, err := ownedStore(s.storeRepo, s.ownerRepo, user, storeID)
	if err != nil {
		return err
	}

	coupon, err := s.couponRepo.FindByID(couponID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	if coupon.StoreID != store.ID || coupon.IsDeleted {
		return ErrCouponNotFound
	}

	if err := s.couponRepo.SoftDelete(coupon.ID); err != nil {
		return err
	}

	logger.Info("Coupon deleted", map[string]interface{}{
		"coupon_id": coupon.ID,
		"store_id":  store.ID,
	})
	return nil
}
