package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound        = errors.New("주문을 찾을 수 없습니다")
	ErrOrderAlreadyAccepted = errors.New("이미 수락된 주문입니다")
)

// defaultVehicle 첫 수락 시 자동 생성되는 라이더의 운송 수단
const defaultVehicle = "자전거"

// OrderWithReview 주문 목록 항목. 리뷰 작성 여부 포함.
type OrderWithReview struct {
	Order     model.Order `json:"order"`
	HasReview bool        `json:"has_review"`
}

type OrderService interface {
	Create(userID, storeID uint, content string, totalPrice int) (*model.Order, error)
	ListByUser(userID uint) ([]OrderWithReview, error)
	ListWaiting() ([]model.Order, error)
	Accept(user *model.User, orderID uint) (*model.Rider, error)
}

type orderService struct {
	orderRepo  repository.OrderRepository
	storeRepo  repository.StoreRepository
	riderRepo  repository.RiderRepository
	reviewRepo repository.ReviewRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	riderRepo repository.RiderRepository,
	reviewRepo repository.ReviewRepository,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		storeRepo:  storeRepo,
		riderRepo:  riderRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *orderService) Create(userID, storeID uint, content string, totalPrice int) (*model.Order, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	// 주문은 라이더 미배정 상태로 시작한다
	order := &model.Order{
		UserID:     userID,
		StoreID:    storeID,
		Content:    content,
		TotalPrice: totalPrice,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id":    order.ID,
		"user_id":     userID,
		"store_id":    storeID,
		"total_price": totalPrice,
	})
	return order, nil
}

func (s *orderService) ListByUser(userID uint) ([]OrderWithReview, error) {
	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	reviewed, err := s.reviewRepo.ReviewedOrderIDs(userID)
	if err != nil {
		return nil, err
	}

	result := make([]OrderWithReview, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderWithReview{
			Order:     order,
			HasReview: reviewed[order.ID],
		})
	}
	return result, nil
}

func (s *orderService) ListWaiting() ([]model.Order, error) {
	return s.orderRepo.FindWaiting()
}

// mirrorRider 사용자와 같은 로그인 아이디의 라이더를 찾고, 없으면 기본
// 운송 수단으로 만들어 돌려준다. 첫 주문 수락 시 한 번만 생성된다.
func (s *orderService) mirrorRider(user *model.User) (*model.Rider, error) {
	rider, err := s.riderRepo.FindByLoginID(user.LoginID)
	if err == nil {
		return rider, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rider = &model.Rider{
		LoginID: user.LoginID,
		Vehicle: defaultVehicle,
	}
	if err := s.riderRepo.Create(rider); err != nil {
		return nil, err
	}

	logger.Info("Rider mirrored from user", map[string]interface{}{
		"rider_id": rider.ID,
		"login_id": rider.LoginID,
	})
	return rider, nil
}

// Accept 주문 수락. 조건부 단일 UPDATE라 동시에 여러 명이 수락해도
// 승자는 한 명이고, 나머지는 ErrOrderAlreadyAccepted를 받는다.
func (s *orderService) Accept(user *model.User, orderID uint) (*model.Rider, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.RiderID != nil {
		return nil, ErrOrderAlreadyAccepted
	}

	rider, err := s.mirrorRider(user)
	if err != nil {
		return nil, err
	}

	accepted, err := s.orderRepo.Accept(order.ID, rider.ID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		logger.Warn("Order accept lost the race", map[string]interface{}{
			"order_id": order.ID,
			"rider_id": rider.ID,
		})
		return nil, ErrOrderAlreadyAccepted
	}

	logger.Info("Order accepted", map[string]interface{}{
		"order_id": order.ID,
		"rider_id": rider.ID,
	})
	return rider, nil
}
