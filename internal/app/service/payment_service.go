package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound       = errors.New("지불방식을 찾을 수 없습니다")
	ErrPaymentAlreadyOffered = errors.New("이미 제공 중인 지불방식입니다")
	ErrPaymentNotOffered     = errors.New("제공하지 않는 지불방식입니다")
)

// PaymentAttachInput 지불방식 연결 입력. PaymentID가 있으면 기존
// 지불방식을 연결하고, 없으면 Name으로 새로 만들어 연결한다.
type PaymentAttachInput struct {
	PaymentID *uint
	Name      string
}

type PaymentService interface {
	ListAll() ([]model.Payment, error)
	ListForStore(storeID uint) ([]model.Payment, error)
	AttachToStore(owner *model.Owner, storeID uint, input PaymentAttachInput) (*model.Payment, error)
	DetachFromStore(owner *model.Owner, storeID, paymentID uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	storeRepo   repository.StoreRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	storeRepo repository.StoreRepository,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		storeRepo:   storeRepo,
	}
}

func (s *paymentService) ListAll() ([]model.Payment, error) {
	return s.paymentRepo.FindAll()
}

// ListForStore 가게가 제공하는 지불방식 목록. store_payments 행이 하나도
// 없으면 하위 호환 컬럼(stores.payment_id)으로 대체한다.
func (s *paymentService) ListForStore(storeID uint) ([]model.Payment, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	payments, err := s.paymentRepo.FindByStoreID(store.ID)
	if err != nil {
		return nil, err
	}
	if len(payments) > 0 {
		return payments, nil
	}

	if store.PaymentID != nil {
		payment, err := s.paymentRepo.FindByID(*store.PaymentID)
		if err == nil {
			return []model.Payment{*payment}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return []model.Payment{}, nil
}

// ownedStoreByOwner 사장 세션으로 가게 소유를 검증한다
func (s *paymentService) ownedStoreByOwner(owner *model.Owner, storeID uint) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	if store.OwnerID != owner.ID {
		logger.Warn("Store ownership check failed for owner", map[string]interface{}{
			"store_id": store.ID,
			"owner_id": owner.ID,
		})
		return nil, ErrNotStoreOwner
	}
	return store, nil
}

func (s *paymentService) AttachToStore(owner *model.Owner, storeID uint, input PaymentAttachInput) (*model.Payment, error) {
	store, err := s.ownedStoreByOwner(owner, storeID)
	if err != nil {
		return nil, err
	}

	var payment *model.Payment
	if input.PaymentID != nil {
		payment, err = s.paymentRepo.FindByID(*input.PaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPaymentNotFound
			}
			return nil, err
		}
	} else {
		// 이름으로 조회하고 없으면 새로 만든다
		payment, err = s.paymentRepo.FindByName(input.Name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			payment = &model.Payment{Name: input.Name}
			if err := s.paymentRepo.Create(payment); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}

	exists, err := s.paymentRepo.PairExists(store.ID, payment.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPaymentAlreadyOffered
	}

	if err := s.paymentRepo.Attach(store.ID, payment.ID); err != nil {
		return nil, err
	}

	logger.Info("Payment attached to store", map[string]interface{}{
		"store_id":   store.ID,
		"payment_id": payment.ID,
	})
	return payment, nil
}

func (s *paymentService) DetachFromStore(owner *model.Owner, storeID, paymentID uint) error {
	store, err := s.ownedStoreByOwner(owner, storeID)
	if err != nil {
		return err
	}

	detached, err := s.paymentRepo.Detach(store.ID, paymentID)
	if err != nil {
		return err
	}
	if detached == 0 {
		return ErrPaymentNotOffered
	}

	logger.Info("Payment detached from store", map[string]interface{}{
		"store_id":   store.ID,
		"payment_id": paymentID,
	})
	return nil
}
