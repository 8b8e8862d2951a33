package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(menu *model.Menu) error
	FindByID(id uint) (*model.Menu, error)
	FindByStoreID(storeID uint) ([]model.Menu, error)
	ExistsByStoreAndName(storeID uint, name string) (bool, error)
	Delete(id uint) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(menu *model.Menu) error {
	if err := r.db.Create(menu).Error; err != nil {
		logger.Error("Failed to create menu in database", err, map[string]interface{}{
			"store_id": menu.StoreID,
			"menu":     menu.Name,
		})
		return err
	}
	return nil
}

func (r *menuRepository) FindByID(id uint) (*model.Menu, error) {
	var menu model.Menu
	if err := r.db.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) FindByStoreID(storeID uint) ([]model.Menu, error) {
	var menus []model.Menu
	if err := r.db.Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) ExistsByStoreAndName(storeID uint, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Menu{}).
		Where("store_id = ? AND name = ?", storeID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *menuRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Menu{}, id).Error; err != nil {
		logger.Error("Failed to delete menu from database", err, map[string]interface{}{
			"menu_id": id,
		})
		return err
	}
	return nil
}
