package service

import (
	"errors"
	"math"
	"sort"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound    = errors.New("가게를 찾을 수 없습니다")
	ErrNotStoreOwner    = errors.New("가게 소유자만 가능합니다")
	ErrCategoryNotFound = errors.New("카테고리를 찾을 수 없습니다")
)

type StoreRegisterInput struct {
	Name          string
	CategoryID    uint
	Phone         string
	MinPrice      string
	OperationTime string
	ClosedDay     string
	Information   string
	PaymentIDs    []uint
}

type StoreUpdateInput struct {
	Name          *string
	CategoryID    *uint
	Phone         *string
	MinPrice      *string
	OperationTime *string
	ClosedDay     *string
	Information   *string
	PaymentIDs    []uint // nil이면 지불방식 유지
}

// StoreDetail 가게 상세 응답. 집계는 비정규화 컬럼이 아닌 실시간 계산값.
type StoreDetail struct {
	Store       *model.Store `json:"store"`
	ReviewCount int64        `json:"review_count"`
	OrderCount  int64        `json:"order_count"`
	AvgRating   float64      `json:"avg_rating"` // 소수점 한 자리 반올림
}

// StoreSummary 카테고리별 목록 항목
type StoreSummary struct {
	Store       model.Store `json:"store"`
	ReviewCount int64       `json:"review_count"`
	OrderCount  int64       `json:"order_count"`
	AvgRating   float64     `json:"avg_rating"`
}

type StoreService interface {
	ListCategories() ([]model.Category, error)
	Register(user *model.User, input StoreRegisterInput) (*model.Store, error)
	Update(user *model.User, storeID uint, input StoreUpdateInput) (*model.Store, error)
	Detail(storeID uint) (*StoreDetail, error)
	ListByCategory(categoryID uint, sortKey string) ([]StoreSummary, error)
	ListByOwnerLoginID(loginID string) ([]model.Store, error)
	ResolveOwnedStore(user *model.User, storeID uint) (*model.Store, error)
}

type storeService struct {
	storeRepo    repository.StoreRepository
	ownerRepo    repository.OwnerRepository
	categoryRepo repository.CategoryRepository
	paymentRepo  repository.PaymentRepository
}

func NewStoreService(
	storeRepo repository.StoreRepository,
	ownerRepo repository.OwnerRepository,
	categoryRepo repository.CategoryRepository,
	paymentRepo repository.PaymentRepository,
) StoreService {
	return &storeService{
		storeRepo:    storeRepo,
		ownerRepo:    ownerRepo,
		categoryRepo: categoryRepo,
		paymentRepo:  paymentRepo,
	}
}

// ownedStore 사용자 세션으로 가게 소유를 검증한다. 사용자와 같은 로그인
// 아이디를 가진 Owner가 그 가게의 소유자여야 한다 (아이디 네임스페이스
// 공유 관례). 가게가 없으면 ErrStoreNotFound, 소유자가 아니면
// ErrNotStoreOwner.
func ownedStore(
	storeRepo repository.StoreRepository,
	ownerRepo repository.OwnerRepository,
	user *model.User,
	storeID uint,
) (*model.Store, error) {
	store, err := storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	owner, err := ownerRepo.FindByLoginID(user.LoginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotStoreOwner
		}
		return nil, err
	}

	if store.OwnerID != owner.ID {
		logger.Warn("Store ownership check failed", map[string]interface{}{
			"store_id": store.ID,
			"user_id":  user.ID,
			"owner_id": owner.ID,
		})
		return nil, ErrNotStoreOwner
	}
	return store, nil
}

func (s *storeService) ResolveOwnedStore(user *model.User, storeID uint) (*model.Store, error) {
	return ownedStore(s.storeRepo, s.ownerRepo, user, storeID)
}

func (s *storeService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

// mirrorOwner 사용자와 같은 로그인 아이디의 Owner를 찾고, 없으면 같은
// 해시와 이메일로 만들어 돌려준다. 가게 등록이 사용자 세션으로
// 이루어지는 흐름을 지탱하는 관례.
func (s *storeService) mirrorOwner(user *model.User) (*model.Owner, error) {
	owner, err := s.ownerRepo.FindByLoginID(user.LoginID)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	owner = &model.Owner{
		LoginID:      user.LoginID,
		PasswordHash: user.PasswordHash,
		Email:        user.Email,
	}
	if err := s.ownerRepo.Create(owner); err != nil {
		return nil, err
	}

	logger.Info("Owner mirrored from user", map[string]interface{}{
		"owner_id": owner.ID,
		"login_id": owner.LoginID,
	})
	return owner, nil
}

func (s *storeService) validatePayments(paymentIDs []uint) error {
	for _, pid := range paymentIDs {
		if _, err := s.paymentRepo.FindByID(pid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
	}
	return nil
}

func (s *storeService) Register(user *model.User, input StoreRegisterInput) (*model.Store, error) {
	logger.Info("Registering store", map[string]interface{}{
		"store_name": input.Name,
		"user_id":    user.ID,
	})

	category, err := s.categoryRepo.FindByID(input.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if err := s.validatePayments(input.PaymentIDs); err != nil {
		return nil, err
	}

	owner, err := s.mirrorOwner(user)
	if err != nil {
		return nil, err
	}

	store := &model.Store{
		OwnerID:       owner.ID,
		CategoryID:    category.ID,
		Name:          input.Name,
		CategoryName:  category.Name,
		Phone:         input.Phone,
		MinPrice:      input.MinPrice,
		OperationTime: input.OperationTime,
		ClosedDay:     input.ClosedDay,
		Information:   input.Information,
	}
	if len(input.PaymentIDs) > 0 {
		// 하위 호환 컬럼에는 첫 번째 지불방식만 기록
		store.PaymentID = &input.PaymentIDs[0]
	}

	if err := s.storeRepo.Create(store, input.PaymentIDs); err != nil {
		return nil, err
	}

	logger.Info("Store registered", map[string]interface{}{
		"store_id":   store.ID,
		"store_name": store.Name,
		"owner_id":   owner.ID,
	})
	return store, nil
}

func (s *storeService) Update(user *model.User, storeID uint, input StoreUpdateInput) (*model.Store, error) {
	store, err := s.ResolveOwnedStore(user, storeID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(*input.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		store.CategoryID = category.ID
		store.CategoryName = category.Name
	}
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Phone != nil {
		store.Phone = *input.Phone
	}
	if input.MinPrice != nil {
		store.MinPrice = *input.MinPrice
	}
	if input.OperationTime != nil {
		store.OperationTime = *input.OperationTime
	}
	if input.ClosedDay != nil {
		store.ClosedDay = *input.ClosedDay
	}
	if input.Information != nil {
		store.Information = *input.Information
	}
	if input.PaymentIDs != nil {
		if err := s.validatePayments(input.PaymentIDs); err != nil {
			return nil, err
		}
		if len(input.PaymentIDs) > 0 {
			store.PaymentID = &input.PaymentIDs[0]
		} else {
			store.PaymentID = nil
		}
	}

	if err := s.storeRepo.Update(store, input.PaymentIDs); err != nil {
		return nil, err
	}

	logger.Info("Store updated", map[string]interface{}{
		"store_id": store.ID,
	})
	return store, nil
}

func (s *storeService) Detail(storeID uint) (*StoreDetail, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	stats, err := s.storeRepo.Stats(store.ID)
	if err != nil {
		return nil, err
	}

	return &StoreDetail{
		Store:       store,
		ReviewCount: stats.ReviewCount,
		OrderCount:  stats.OrderCount,
		AvgRating:   roundRating(stats.AvgRating),
	}, nil
}

func (s *storeService) ListByCategory(categoryID uint, sortKey string) ([]StoreSummary, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	stores, err := s.storeRepo.FindByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}

	statsByStore, err := s.storeRepo.StatsByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	summaries := make([]StoreSummary, 0, len(stores))
	for _, store := range stores {
		summary := StoreSummary{Store: store}
		if stats, ok := statsByStore[store.ID]; ok {
			summary.ReviewCount = stats.ReviewCount
			summary.OrderCount = stats.OrderCount
			summary.AvgRating = roundRating(stats.AvgRating)
		}
		summaries = append(summaries, summary)
	}

	sortSummaries(summaries, sortKey)
	return summaries, nil
}

func (s *storeService) ListByOwnerLoginID(loginID string) ([]model.Store, error) {
	owner, err := s.ownerRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return s.storeRepo.FindByOwnerID(owner.ID)
}

// roundRating 평균 평점을 소수점 한 자리로 반올림
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// sortSummaries sortKey에 따라 정렬. 모르는 키는 이름순.
func sortSummaries(summaries []StoreSummary, sortKey string) {
	switch sortKey {
	case "review":
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].ReviewCount > summaries[j].ReviewCount
		})
	case "rating":
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].AvgRating > summaries[j].AvgRating
		})
	case "order":
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].OrderCount > summaries[j].OrderCount
		})
	default:
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Store.Name < summaries[j].Store.Name
		})
	}
}
