package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrMenuNotFound = errors.New("메뉴를 찾을 수 없습니다")

type MenuService interface {
	ListByStore(storeID uint) ([]model.Menu, error)
	Create(user *model.User, storeID uint, name string, price int) (*model.Menu, error)
	Delete(user *model.User, storeID, menuID uint) error
}

type menuService struct {
	menuRepo  repository.MenuRepository
	storeRepo repository.StoreRepository
	ownerRepo repository.OwnerRepository
}

func NewMenuService(
	menuRepo repository.MenuRepository,
	storeRepo repository.StoreRepository,
	ownerRepo repository.OwnerRepository,
) MenuService {
	return &menuService{
		menuRepo:  menuRepo,
		storeRepo: storeRepo,
		ownerRepo: ownerRepo,
	}
}

func (s *menuService) ListByStore(storeID uint) ([]model.Menu, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return s.menuRepo.FindByStoreID(storeID)
}

func (s *menuService) Create(user *model.User, storeID uint, name string, price int) (*model.Menu, error) {
	store, err := ownedStore(s.storeRepo, s.ownerRepo, user, storeID)
	if err != nil {
		return nil, err
	}

	menu := &model.Menu{
		StoreID: store.ID,
		Name:    name,
		Price:   price,
	}
	if err := s.menuRepo.Create(menu); err != nil {
		return nil, err
	}

	logger.Info("Menu created", map[string]interface{}{
		"menu_id":  menu.ID,
		"store_id": store.ID,
		"menu":     menu.Name,
	})
	return menu, nil
}

func (s *menuService) Delete(user *model.User, storeID, menuID uint) error {
	store, err := ownedStore(s.storeRepo, s.ownerRepo, user, storeID)
	if err != nil {
		return err
	}

	menu, err := s.menuRepo.FindByID(menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		return err
	}
	if menu.StoreID != store.ID {
		return ErrMenuNotFound
	}

	if err := s.menuRepo.Delete(menu.ID); err != nil {
		return err
	}

	logger.Info("Menu deleted", map[string]interface{}{
		"menu_id":  menu.ID,
		"store_id": store.ID,
	})
	return nil
}
