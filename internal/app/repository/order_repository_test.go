package repository

import (
	"testing"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderRepoTest(t *testing.T) (OrderRepository, *gorm.DB, *model.User, *model.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	user := &model.User{
		LoginID: "testuser1", PasswordHash: "hash",
		Email: "u@test.com", Name: "사용자", Address: "서울시",
	}
	testDB.Create(user)

	owner := &model.Owner{LoginID: "testowner", PasswordHash: "hash", Email: "o@test.com"}
	testDB.Create(owner)

	category := &model.Category{Name: "분식"}
	testDB.Create(category)

	store := &model.Store{
		OwnerID: owner.ID, CategoryID: category.ID,
		Name: "떡볶이집", CategoryName: category.Name,
		Phone: "02-1234-5678", MinPrice: "5000원",
	}
	testDB.Create(store)

	return NewOrderRepository(testDB), testDB, user, store
}

func TestOrderRepository_Accept_FirstWriterWins(t *testing.T) {
	orderRepo, testDB, user, store := setupOrderRepoTest(t)

	order := &model.Order{UserID: user.ID, StoreID: store.ID, Content: "떡볶이", TotalPrice: 5000}
	require.NoError(t, orderRepo.Create(order))

	rider1 := &model.Rider{LoginID: "rider1", Vehicle: "자전거"}
	testDB.Create(rider1)
	rider2 := &model.Rider{LoginID: "rider2", Vehicle: "오토바이"}
	testDB.Create(rider2)

	accepted, err := orderRepo.Accept(order.ID, rider1.ID)
	require.NoError(t, err)
	assert.True(t, accepted)

	// 이미 배정된 주문에 대한 조건부 UPDATE는 아무 행도 건드리지 않는다
	accepted, err = orderRepo.Accept(order.ID, rider2.ID)
	require.NoError(t, err)
	assert.False(t, accepted)

	var updated model.Order
	testDB.First(&updated, order.ID)
	require.NotNil(t, updated.RiderID)
	assert.Equal(t, rider1.ID, *updated.RiderID)
}

func TestOrderRepository_FindWaiting(t *testing.T) {
	orderRepo, testDB, user, store := setupOrderRepoTest(t)

	waiting := &model.Order{UserID: user.ID, StoreID: store.ID, Content: "순대", TotalPrice: 4000}
	require.NoError(t, orderRepo.Create(waiting))

	rider := &model.Rider{LoginID: "rider1", Vehicle: "자전거"}
	testDB.Create(rider)
	taken := &model.Order{UserID: user.ID, StoreID: store.ID, RiderID: &rider.ID, Content: "튀김", TotalPrice: 3000}
	require.NoError(t, orderRepo.Create(taken))

	orders, err := orderRepo.FindWaiting()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, waiting.ID, orders[0].ID)
}

func TestOrderRepository_FindByUserID_PreloadsStore(t *testing.T) {
	orderRepo, _, user, store := setupOrderRepoTest(t)

	order := &model.Order{UserID: user.ID, StoreID: store.ID, Content: "라볶이", TotalPrice: 6000}
	require.NoError(t, orderRepo.Create(order))

	orders, err := orderRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "떡볶이집", orders[0].Store.Name)
}
