package repository

import (
	"testing"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedFullGraph 모든 테이블에 최소 한 행씩 채운다
func seedFullGraph(t *testing.T, testDB *gorm.DB) {
	t.Helper()

	user := &model.User{
		LoginID: "testuser1", PasswordHash: "hash",
		Email: "u@test.com", Name: "사용자", Address: "서울시",
	}
	require.NoError(t, testDB.Create(user).Error)

	owner := &model.Owner{LoginID: "testowner", PasswordHash: "hash", Email: "o@test.com"}
	require.NoError(t, testDB.Create(owner).Error)

	rider := &model.Rider{LoginID: "testrider", Vehicle: "자전거"}
	require.NoError(t, testDB.Create(rider).Error)

	category := &model.Category{Name: "한식"}
	require.NoError(t, testDB.Create(category).Error)

	payment := &model.Payment{Name: "만나서 카드결제"}
	require.NoError(t, testDB.Create(payment).Error)

	store := &model.Store{
		OwnerID: owner.ID, CategoryID: category.ID, PaymentID: &payment.ID,
		Name: "김밥천국", CategoryName: category.Name,
		Phone: "02-1234-5678", MinPrice: "10000원",
	}
	require.NoError(t, testDB.Create(store).Error)

	require.NoError(t, testDB.Create(&model.StorePayment{StoreID: store.ID, PaymentID: payment.ID}).Error)
	require.NoError(t, testDB.Create(&model.Menu{StoreID: store.ID, Name: "참치김밥", Price: 4000}).Error)

	period := 30
	discount := 1000
	require.NoError(t, testDB.Create(&model.Coupon{StoreID: store.ID, Discount: &discount, Period: &period}).Error)

	order := &model.Order{UserID: user.ID, StoreID: store.ID, RiderID: &rider.ID, Content: "참치김밥", TotalPrice: 4000}
	require.NoError(t, testDB.Create(order).Error)

	require.NoError(t, testDB.Create(&model.Review{UserID: user.ID, StoreID: store.ID, OrderID: &order.ID, Rating: 5}).Error)
	require.NoError(t, testDB.Create(&model.FavoriteStore{UserID: user.ID, StoreID: store.ID}).Error)
}

func allModels() []interface{} {
	return []interface{}{
		&model.StorePayment{}, &model.Menu{}, &model.Coupon{}, &model.Payment{},
		&model.Review{}, &model.FavoriteStore{}, &model.Order{}, &model.Store{},
		&model.Category{}, &model.User{}, &model.Owner{}, &model.Rider{},
	}
}

func TestPurgeRepository_ResetAll(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	seedFullGraph(t, testDB)
	purgeRepo := NewPurgeRepository(testDB)

	deleted, err := purgeRepo.ResetAll()
	require.NoError(t, err)

	// 테이블별 삭제 수가 보고되고 모든 테이블이 빈다
	assert.Equal(t, int64(1), deleted["stores"])
	assert.Equal(t, int64(1), deleted["users"])
	assert.Equal(t, int64(1), deleted["store_payments"])
	for _, m := range allModels() {
		var count int64
		testDB.Model(m).Count(&count)
		assert.Equal(t, int64(0), count)
	}
}

func TestPurgeRepository_ClearUsers_KeepsStores(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	seedFullGraph(t, testDB)
	purgeRepo := NewPurgeRepository(testDB)

	count, err := purgeRepo.ClearUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 사용자 쪽 데이터만 지워진다
	for _, m := range []interface{}{&model.User{}, &model.Order{}, &model.Review{}, &model.FavoriteStore{}} {
		var n int64
		testDB.Model(m).Count(&n)
		assert.Equal(t, int64(0), n)
	}
	for _, m := range []interface{}{&model.Store{}, &model.Menu{}, &model.Category{}, &model.Owner{}} {
		var n int64
		testDB.Model(m).Count(&n)
		assert.Equal(t, int64(1), n)
	}
}

func TestPurgeRepository_ClearStores_KeepsCategoriesAndUsers(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	seedFullGraph(t, testDB)
	purgeRepo := NewPurgeRepository(testDB)

	count, err := purgeRepo.ClearStores()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	for _, m := range []interface{}{
		&model.Store{}, &model.StorePayment{}, &model.Menu{}, &model.Coupon{},
		&model.Payment{}, &model.Review{}, &model.FavoriteStore{}, &model.Order{},
	} {
		var n int64
		testDB.Model(m).Count(&n)
		assert.Equal(t, int64(0), n)
	}
	for _, m := range []interface{}{&model.Category{}, &model.User{}, &model.Owner{}} {
		var n int64
		testDB.Model(m).Count(&n)
		assert.Equal(t, int64(1), n)
	}
}

func TestPurgeRepository_ClearMenus(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	seedFullGraph(t, testDB)
	purgeRepo := NewPurgeRepository(testDB)

	count, err := purgeRepo.ClearMenus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var menus, stores int64
	testDB.Model(&model.Menu{}).Count(&menus)
	testDB.Model(&model.Store{}).Count(&stores)
	assert.Equal(t, int64(0), menus)
	assert.Equal(t, int64(1), stores)
}

func TestPurgeRepository_ClearCategories_RollbackOnFailure(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	seedFullGraph(t, testDB)
	purgeRepo := NewPurgeRepository(testDB)

	// 마지막으로 지워질 테이블을 없애 트랜잭션 중간 실패를 유도한다
	require.NoError(t, testDB.Migrator().DropTable(&model.Category{}))

	_, err = purgeRepo.ClearCategories()
	require.Error(t, err)

	// 앞서 지워졌어야 할 테이블들이 롤백으로 모두 복원된다
	for _, m := range []interface{}{&model.Store{}, &model.Menu{}, &model.Order{}, &model.Review{}} {
		var count int64
		testDB.Model(m).Count(&count)
		assert.Equal(t, int64(1), count)
	}
}

func TestPurgeRepository_EmptyTables(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	purgeRepo := NewPurgeRepository(testDB)

	// 빈 데이터베이스에서도 오류 없이 0을 돌려준다
	count, err := purgeRepo.ClearCategories()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	deleted, err := purgeRepo.ResetAll()
	require.NoError(t, err)
	for _, n := range deleted {
		assert.Equal(t, int64(0), n)
	}
}
