package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrFavoriteExists   = errors.New("이미 찜한 가게입니다")
	ErrFavoriteNotFound = errors.New("찜한 가게가 아닙니다")
)

// FavoriteWithStore 찜 목록 항목. 가게의 리뷰 수는 실시간 계산값.
type FavoriteWithStore struct {
	Favorite    model.FavoriteStore `json:"favorite"`
	Store       model.Store         `json:"store"`
	ReviewCount int64               `json:"review_count"`
}

type FavoriteService interface {
	Add(userID, storeID uint) (*model.FavoriteStore, error)
	Remove(userID, storeID uint) error
	List(userID uint) ([]FavoriteWithStore, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	storeRepo    repository.StoreRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	storeRepo repository.StoreRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		storeRepo:    storeRepo,
	}
}

// Add 찜 등록. (사용자, 가게)당 활성 행은 최대 하나이고, 소프트 삭제된 행이
// 있어도 새 활성 행을 만든다.
func (s *favoriteService) Add(userID, storeID uint) (*model.FavoriteStore, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	_, err := s.favoriteRepo.FindActive(userID, storeID)
	if err == nil {
		return nil, ErrFavoriteExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite := &model.FavoriteStore{
		UserID:  userID,
		StoreID: storeID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, err
	}

	logger.Info("Store favorited", map[string]interface{}{
		"favorite_id": favorite.ID,
		"user_id":     userID,
		"store_id":    storeID,
	})
	return favorite, nil
}

// Remove 찜 해제 (소프트 삭제)
func (s *favoriteService) Remove(userID, storeID uint) error {
	favorite, err := s.favoriteRepo.FindActive(userID, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}

	if err := s.favoriteRepo.SoftDelete(favorite.ID); err != nil {
		return err
	}

	logger.Info("Store unfavorited", map[string]interface{}{
		"favorite_id": favorite.ID,
		"user_id":     userID,
		"store_id":    storeID,
	})
	return nil
}

func (s *favoriteService) List(userID uint) ([]FavoriteWithStore, error) {
	favorites, err := s.favoriteRepo.FindActiveByUserID(userID)
	if err != nil {
		return nil, err
	}

	result := make([]FavoriteWithStore, 0, len(favorites))
	for _, favorite := range favorites {
		stats, err := s.storeRepo.Stats(favorite.StoreID)
		if err != nil {
			return nil, err
		}
		result = append(result, FavoriteWithStore{
			Favorite:    favorite,
			Store:       favorite.Store,
			ReviewCount: stats.ReviewCount,
		})
	}
	return result, nil
}
