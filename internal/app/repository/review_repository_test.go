package repository

import (
	"testing"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReviewRepoTest(t *testing.T) (ReviewRepository, *gorm.DB, *model.User, *model.Store) {
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

	category := &model.Category{Name: "양식"}
	testDB.Create(category)

	store := &model.Store{
		OwnerID: owner.ID, CategoryID: category.ID,
		Name: "파스타집", CategoryName: category.Name,
		Phone: "02-1234-5678", MinPrice: "15000원",
	}
	testDB.Create(store)

	return NewReviewRepository(testDB), testDB, user, store
}

func TestReviewRepository_CreateWithRecount(t *testing.T) {
	reviewRepo, testDB, user, store := setupReviewRepoTest(t)

	for i := 0; i < 2; i++ {
		review := &model.Review{UserID: user.ID, StoreID: store.ID, Rating: 4}
		require.NoError(t, reviewRepo.CreateWithRecount(review))
	}

	var updated model.Store
	testDB.First(&updated, store.ID)
	assert.Equal(t, 2, updated.ReviewCount)
}

func TestReviewRepository_DeleteWithRecount(t *testing.T) {
	reviewRepo, testDB, user, store := setupReviewRepoTest(t)

	review := &model.Review{UserID: user.ID, StoreID: store.ID, Rating: 3}
	require.NoError(t, reviewRepo.CreateWithRecount(review))

	require.NoError(t, reviewRepo.DeleteWithRecount(review.ID, store.ID))

	var updated model.Store
	testDB.First(&updated, store.ID)
	assert.Equal(t, 0, updated.ReviewCount)
}

func TestReviewRepository_RecountFixesDrift(t *testing.T) {
	reviewRepo, testDB, user, store := setupReviewRepoTest(t)

	// 비정규화 컬럼이 어긋나 있어도 재계산이 실제 수로 맞춘다
	testDB.Model(&model.Store{}).Where("id = ?", store.ID).Update("review_count", 42)

	review := &model.Review{UserID: user.ID, StoreID: store.ID, Rating: 5}
	require.NoError(t, reviewRepo.CreateWithRecount(review))

	var updated model.Store
	testDB.First(&updated, store.ID)
	assert.Equal(t, 1, updated.ReviewCount)
}

func TestReviewRepository_ReviewedOrderIDs(t *testing.T) {
	reviewRepo, testDB, user, store := setupReviewRepoTest(t)

	order := &model.Order{UserID: user.ID, StoreID: store.ID, Content: "까르보나라", TotalPrice: 16000}
	testDB.Create(order)
	other := &model.Order{UserID: user.ID, StoreID: store.ID, Content: "알리오올리오", TotalPrice: 14000}
	testDB.Create(other)

	review := &model.Review{UserID: user.ID, StoreID: store.ID, OrderID: &order.ID, Rating: 5}
	require.NoError(t, reviewRepo.CreateWithRecount(review))

	reviewed, err := reviewRepo.ReviewedOrderIDs(user.ID)
	require.NoError(t, err)
	assert.True(t, reviewed[order.ID])
	assert.False(t, reviewed[other.ID])
}
