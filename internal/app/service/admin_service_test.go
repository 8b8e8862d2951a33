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

func setupAdminServiceTest(t *testing.T) (AdminService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	purgeRepo := repository.NewPurgeRepository(testDB)
	return NewAdminService(testDB, purgeRepo), testDB
}

func TestAdminService_SeedCategories_Idempotent(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	inserted, err := adminService.SeedCategories()
	require.NoError(t, err)
	assert.Equal(t, len(model.DefaultCategoryNames()), inserted)

	// 두 번째 시드는 아무것도 넣지 않는다
	inserted, err = adminService.SeedCategories()
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	var count int64
	testDB.Model(&model.Category{}).Count(&count)
	assert.Equal(t, int64(len(model.DefaultCategoryNames())), count)
}

func TestAdminService_SeedUsers_HashesPasswords(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	inserted, err := adminService.SeedUsers()
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	var user model.User
	err = testDB.Where("login_id = ?", "testuser1").First(&user).Error
	require.NoError(t, err)
	// 평문이 저장되면 안 된다
	assert.NotEqual(t, "test1234", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)

	inserted, err = adminService.SeedUsers()
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestAdminService_SeedStores_RequiresCategories(t *testing.T) {
	adminService, _ := setupAdminServiceTest(t)

	inserted, err := adminService.SeedStores()
	assert.ErrorIs(t, err, ErrNoCategories)
	assert.Equal(t, 0, inserted)
}

func TestAdminService_SeedStores_CreatesOwnerAndPayment(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	_, err := adminService.SeedCategories()
	require.NoError(t, err)

	inserted, err := adminService.SeedStores()
	require.NoError(t, err)
	assert.Greater(t, inserted, 0)

	// 시드용 사장 계정과 기본 지불방식이 같이 만들어진다
	var owner model.Owner
	err = testDB.Where("login_id = ?", "testowner").First(&owner).Error
	require.NoError(t, err)

	var payment model.Payment
	err = testDB.Where("name = ?", DefaultPaymentCard).First(&payment).Error
	require.NoError(t, err)

	// 모든 시드 가게는 시드 사장 소유이며 지불방식이 연결된다
	var stores []model.Store
	testDB.Find(&stores)
	for _, store := range stores {
		assert.Equal(t, owner.ID, store.OwnerID)
	}

	var spCount int64
	testDB.Model(&model.StorePayment{}).Count(&spCount)
	assert.Equal(t, int64(len(stores)), spCount)

	inserted, err = adminService.SeedStores()
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestAdminService_SeedMenus_FollowsStoreCategory(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	_, err := adminService.SeedCategories()
	require.NoError(t, err)
	_, err = adminService.SeedStores()
	require.NoError(t, err)

	inserted, err := adminService.SeedMenus()
	require.NoError(t, err)
	assert.Greater(t, inserted, 0)

	// 메뉴는 모두 실존하는 가게에 매달린다
	var orphans int64
	testDB.Model(&model.Menu{}).
		Where("store_id NOT IN (?)", testDB.Model(&model.Store{}).Select("id")).
		Count(&orphans)
	assert.Equal(t, int64(0), orphans)

	inserted, err = adminService.SeedMenus()
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestAdminService_SeedMenus_RequiresStores(t *testing.T) {
	adminService, _ := setupAdminServiceTest(t)

	inserted, err := adminService.SeedMenus()
	assert.ErrorIs(t, err, ErrNoStores)
	assert.Equal(t, 0, inserted)
}

func TestAdminService_SeedCoupons(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	_, err := adminService.SeedCategories()
	require.NoError(t, err)
	_, err = adminService.SeedStores()
	require.NoError(t, err)

	inserted, err := adminService.SeedCoupons()
	require.NoError(t, err)
	assert.Greater(t, inserted, 0)

	var storeCount int64
	testDB.Model(&model.Store{}).Count(&storeCount)
	// 가게마다 템플릿 쿠폰 세 장
	assert.Equal(t, int(storeCount)*3, inserted)

	inserted, err = adminService.SeedCoupons()
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestAdminService_CreateStores_SkipsUnknownCategoryAndDuplicates(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	_, err := adminService.CreateCategories([]CategoryRecord{{Name: "한식"}})
	require.NoError(t, err)

	records := []StoreRecord{
		{Name: "직접 등록 가게", Category: "한식", Phone: "02-1234-5678", MinPrice: "10000원"},
		{Name: "모르는 카테고리 가게", Category: "없는카테고리"},
		{Name: "직접 등록 가게", Category: "한식"}, // 중복
	}
	inserted, err := adminService.CreateStores(records)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	var count int64
	testDB.Model(&model.Store{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminService_ClearUsers_CascadesDependents(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	_, err := adminService.SeedCategories()
	require.NoError(t, err)
	_, err = adminService.SeedUsers()
	require.NoError(t, err)
	_, err = adminService.SeedStores()
	require.NoError(t, err)

	var user model.User
	require.NoError(t, testDB.First(&user).Error)
	var store model.Store
	require.NoError(t, testDB.First(&store).Error)

	order := &model.Order{UserID: user.ID, StoreID: store.ID, Content: "비빔밥", TotalPrice: 9000}
	testDB.Create(order)
	testDB.Create(&model.Review{UserID: user.ID, StoreID: store.ID, OrderID: &order.ID, Rating: 5})
	testDB.Create(&model.FavoriteStore{UserID: user.ID, StoreID: store.ID})

	deleted, err := adminService.ClearUsers()
	require.NoError(t, err)
	assert.Greater(t, deleted, int64(0))

	// 사용자와 함께 주문, 리뷰, 찜이 모두 비워진다
	for _, m := range []interface{}{&model.User{}, &model.Order{}, &model.Review{}, &model.FavoriteStore{}} {
		var count int64
		testDB.Model(m).Count(&count)
		assert.Equal(t, int64(0), count)
	}

	// 가게는 남는다
	var storeCount int64
	testDB.Model(&model.Store{}).Count(&storeCount)
	assert.Greater(t, storeCount, int64(0))
}

func TestAdminService_Reset_EmptiesEverything(t *testing.T) {
	adminService, testDB := setupAdminServiceTest(t)

	_, err := adminService.SeedCategories()
	require.NoError(t, err)
	_, err = adminService.SeedUsers()
	require.NoError(t, err)
	_, err = adminService.SeedStores()
	require.NoError(t, err)
	_, err = adminService.SeedMenus()
	require.NoError(t, err)
	_, err = adminService.SeedCoupons()
	require.NoError(t, err)

	var user model.User
	require.NoError(t, testDB.First(&user).Error)
	var store model.Store
	require.NoError(t, testDB.First(&store).Error)
	order := &model.Order{UserID: user.ID, StoreID: store.ID, Content: "김치찌개", TotalPrice: 8000}
	testDB.Create(order)
	testDB.Create(&model.Review{UserID: user.ID, StoreID: store.ID, OrderID: &order.ID, Rating: 4})
	testDB.Create(&model.FavoriteStore{UserID: user.ID, StoreID: store.ID})

	total, err := adminService.Reset()
	require.NoError(t, err)
	assert.Greater(t, total, int64(0))

	models := []interface{}{
		&model.StorePayment{}, &model.Menu{}, &model.Coupon{}, &model.Payment{},
		&model.Review{}, &model.FavoriteStore{}, &model.Order{}, &model.Store{},
		&model.Category{}, &model.User{}, &model.Owner{}, &model.Rider{},
	}
	for _, m := range models {
		var count int64
		testDB.Model(m).Count(&count)
		assert.Equal(t, int64(0), count)
	}

	// 초기화 후 다시 시드할 수 있다
	inserted, err := adminService.SeedCategories()
	require.NoError(t, err)
	assert.Equal(t, len(model.DefaultCategoryNames()), inserted)
}
