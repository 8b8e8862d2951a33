package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("리뷰를 찾을 수 없습니다")
	ErrInvalidRating       = errors.New("평점은 1~5 사이여야 합니다")
	ErrReviewAlreadyExists = errors.New("이미 이 주문에 리뷰를 작성했습니다")
)

type ReviewCreateInput struct {
	StoreID uint
	OrderID *uint
	Rating  int
	Content string
}

// ReviewWithAuthor 리뷰 목록 항목 (작성자 이름 포함)
type ReviewWithAuthor struct {
	Review     model.Review `json:"review"`
	AuthorName string       `json:"author_name"`
}

type ReviewService interface {
	Create(user *model.User, input ReviewCreateInput) (*model.Review, error)
	ListByStore(storeID uint) ([]ReviewWithAuthor, error)
	Delete(user *model.User, reviewID uint) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	storeRepo  repository.StoreRepository
	orderRepo  repository.OrderRepository
	ownerRepo  repository.OwnerRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	ownerRepo repository.OwnerRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		storeRepo:  storeRepo,
		orderRepo:  orderRepo,
		ownerRepo:  ownerRepo,
	}
}

// Create 리뷰 등록. 삽입과 stores.review_count 재계산은 저장소가 한
// 트랜잭션으로 처리하므로 둘이 어긋난 상태가 노출되지 않는다.
func (s *reviewService) Create(user *model.User, input ReviewCreateInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.storeRepo.FindByID(input.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	if input.OrderID != nil {
		order, err := s.orderRepo.FindByID(*input.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
		if order.UserID != user.ID {
			return nil, ErrOrderNotFound
		}

		exists, err := s.reviewRepo.ExistsByUserAndOrder(user.ID, *input.OrderID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrReviewAlreadyExists
		}
	}

	review := &model.Review{
		UserID:  user.ID,
		StoreID: input.StoreID,
		OrderID: input.OrderID,
		Rating:  input.Rating,
		Content: input.Content,
	}
	if err := s.reviewRepo.CreateWithRecount(review); err != nil {
		return nil, err
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id": review.ID,
		"store_id":  review.StoreID,
		"rating":    review.Rating,
	})
	return review, nil
}

func (s *reviewService) ListByStore(storeID uint) ([]ReviewWithAuthor, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByStoreID(storeID)
	if err != nil {
		return nil, err
	}

	result := make([]ReviewWithAuthor, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, ReviewWithAuthor{
			Review:     review,
			AuthorName: review.User.Name,
		})
	}
	return result, nil
}

// Delete 가게 사장만 리뷰를 삭제할 수 있다. 삭제와 review_count
// 재계산은 한 트랜잭션.
func (s *reviewService) Delete(user *model.User, reviewID uint) error {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if _, err := ownedStore(s.storeRepo, s.ownerRepo, user, review.StoreID); err != nil {
		return err
	}

	if err := s.reviewRepo.DeleteWithRecount(review.ID, review.StoreID); err != nil {
		return err
	}

	logger.Info("Review deleted", map[string]interface{}{
		"review_id": review.ID,
		"store_id":  review.StoreID,
	})
	return nil
}
