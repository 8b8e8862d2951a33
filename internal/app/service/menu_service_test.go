package service

import (
	"testing"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMenuServiceTest(t *testing.T) (MenuService, *gorm.DB, *model.User, *model.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	menuRepo := repository.NewMenuRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	ownerRepo := repository.NewOwnerRepository(testDB)
	menuService := NewMenuService(menuRepo, storeRepo, ownerRepo)

	// 사장과 같은 로그인 아이디의 사용자 세션으로 메뉴를 관리한다
	ownerUser := &model.User{
		LoginID:      "testowner",
		PasswordHash: "hash",
		Email:        "owner@example.com",
		Name:         "사장님",
		Address:      "서울시",
	}
	testDB.Create(ownerUser)

	owner := &model.Owner{LoginID: "testowner", PasswordHash: "hash", Email: "owner@example.com"}
	testDB.Create(owner)

	category := &model.Category{Name: "분식"}
	testDB.Create(category)

	store := &model.Store{
		OwnerID:      owner.ID,
		CategoryID:   category.ID,
		Name:         "떡볶이집",
		CategoryName: category.Name,
		Phone:        "02-1234-5678",
		MinPrice:     "5000원",
	}
	testDB.Create(store)

	return menuService, testDB, ownerUser, store
}

func TestMenuService_Create_Success(t *testing.T) {
	menuService, _, ownerUser, store := setupMenuServiceTest(t)

	menu, err := menuService.Create(ownerUser, store.ID, "로제떡볶이", 8000)
	require.NoError(t, err)
	assert.NotZero(t, menu.ID)
	assert.Equal(t, store.ID, menu.StoreID)
	assert.Equal(t, 8000, menu.Price)
}

func TestMenuService_Create_NotOwner(t *testing.T) {
	menuService, testDB, _, store := setupMenuServiceTest(t)

	stranger := &model.User{
		LoginID:      "stranger",
		PasswordHash: "hash",
		Email:        "s@example.com",
		Name:         "남남",
		Address:      "부산시",
	}
	testDB.Create(stranger)

	menu, err := menuService.Create(stranger, store.ID, "몰래 메뉴", 1000)
	assert.ErrorIs(t, err, ErrNotStoreOwner)
	assert.Nil(t, menu)
}

func TestMenuService_Create_StoreNotFound(t *testing.T) {
	menuService, _, ownerUser, _ := setupMenuServiceTest(t)

	menu, err := menuService.Create(ownerUser, 99999, "유령 메뉴", 1000)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Nil(t, menu)
}

func TestMenuService_Delete(t *testing.T) {
	menuService, testDB, ownerUser, store := setupMenuServiceTest(t)

	menu, err := menuService.Create(ownerUser, store.ID, "순대", 4000)
	require.NoError(t, err)

	err = menuService.Delete(ownerUser, store.ID, menu.ID)
	require.NoError(t, err)

	var count int64
	testDB.Model(&model.Menu{}).Where("store_id = ?", store.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMenuService_Delete_WrongStore(t *testing.T) {
	menuService, testDB, ownerUser, store := setupMenuServiceTest(t)

	menu, err := menuService.Create(ownerUser, store.ID, "튀김", 3000)
	require.NoError(t, err)

	// 같은 사장의 다른 가게를 경유해도 메뉴가 속한 가게가 아니면 거부
	other := &model.Store{
		OwnerID:      store.OwnerID,
		CategoryID:   store.CategoryID,
		Name:         "분점",
		CategoryName: store.CategoryName,
		Phone:        "02-0000-0000",
		MinPrice:     "5000원",
	}
	testDB.Create(other)

	err = menuService.Delete(ownerUser, other.ID, menu.ID)
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestMenuService_ListByStore(t *testing.T) {
	menuService, _, ownerUser, store := setupMenuServiceTest(t)

	_, err := menuService.Create(ownerUser, store.ID, "김말이", 3500)
	require.NoError(t, err)
	_, err = menuService.Create(ownerUser, store.ID, "오뎅", 2000)
	require.NoError(t, err)

	menus, err := menuService.ListByStore(store.ID)
	require.NoError(t, err)
	assert.Len(t, menus, 2)
}
