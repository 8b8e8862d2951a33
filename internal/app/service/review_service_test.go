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

func setupReviewServiceTest(t *testing.T) (ReviewService, *gorm.DB, *model.User, *model.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewRepo := repository.NewReviewRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	ownerRepo := repository.NewOwnerRepository(testDB)
	reviewService := NewReviewService(reviewRepo, storeRepo, orderRepo, ownerRepo)

	user := &model.User{
		LoginID:      "testuser1",
		PasswordHash: "hash",
		Email:        "user@example.com",
		Name:         "테스트 사용자",
		Address:      "서울시 강남구",
	}
	testDB.Create(user)

	owner := &model.Owner{
		LoginID:      "testowner",
		PasswordHash: "hash",
		Email:        "owner@example.com",
	}
	testDB.Create(owner)

	category := &model.Category{Name: "한식"}
	testDB.Create(category)

	store := &model.Store{
		OwnerID:      owner.ID,
		CategoryID:   category.ID,
		Name:         "김밥천국",
		CategoryName: category.Name,
		Phone:        "02-1234-5678",
		MinPrice:     "10000원",
	}
	testDB.Create(store)

	return reviewService, testDB, user, store
}

func TestReviewService_Create_RecountsStore(t *testing.T) {
	reviewService, testDB, user, store := setupReviewServiceTest(t)

	for i := 1; i <= 3; i++ {
		review, err := reviewService.Create(user, ReviewCreateInput{
			StoreID: store.ID,
			Rating:  i + 2,
			Content: "맛있어요",
		})
		require.NoError(t, err)
		assert.NotZero(t, review.ID)
	}

	// review_count는 실제 리뷰 수와 같은 트랜잭션에서 맞춰진다
	var updated model.Store
	testDB.First(&updated, store.ID)
	assert.Equal(t, 3, updated.ReviewCount)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	reviewService, _, user, store := setupReviewServiceTest(t)

	for _, rating := range []int{0, 6, -1} {
		review, err := reviewService.Create(user, ReviewCreateInput{
			StoreID: store.ID,
			Rating:  rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating)
		assert.Nil(t, review)
	}
}

func TestReviewService_Create_StoreNotFound(t *testing.T) {
	reviewService, _, user, _ := setupReviewServiceTest(t)

	review, err := reviewService.Create(user, ReviewCreateInput{
		StoreID: 99999,
		Rating:  5,
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Nil(t, review)
}

func TestReviewService_Create_DuplicateOrderReview(t *testing.T) {
	reviewService, testDB, user, store := setupReviewServiceTest(t)

	order := &model.Order{
		UserID:     user.ID,
		StoreID:    store.ID,
		Content:    "참치김밥 2줄",
		TotalPrice: 8000,
	}
	testDB.Create(order)

	_, err := reviewService.Create(user, ReviewCreateInput{
		StoreID: store.ID,
		OrderID: &order.ID,
		Rating:  5,
		Content: "빨리 왔어요",
	})
	require.NoError(t, err)

	// 같은 (사용자, 주문) 쌍으로는 두 번 작성할 수 없다
	review, err := reviewService.Create(user, ReviewCreateInput{
		StoreID: store.ID,
		OrderID: &order.ID,
		Rating:  4,
	})
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)
	assert.Nil(t, review)
}

func TestReviewService_Create_OtherUsersOrder(t *testing.T) {
	reviewService, testDB, user, store := setupReviewServiceTest(t)

	other := &model.User{
		LoginID:      "otheruser",
		PasswordHash: "hash",
		Email:        "other@example.com",
		Name:         "다른 사용자",
		Address:      "서울시 서초구",
	}
	testDB.Create(other)

	order := &model.Order{
		UserID:     other.ID,
		StoreID:    store.ID,
		Content:    "치즈김밥",
		TotalPrice: 4000,
	}
	testDB.Create(order)

	review, err := reviewService.Create(user, ReviewCreateInput{
		StoreID: store.ID,
		OrderID: &order.ID,
		Rating:  5,
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, review)
}

func TestReviewService_Delete_OwnerOnly(t *testing.T) {
	reviewService, testDB, user, store := setupReviewServiceTest(t)

	review, err := reviewService.Create(user, ReviewCreateInput{
		StoreID: store.ID,
		Rating:  1,
		Content: "별로예요",
	})
	require.NoError(t, err)

	// 일반 사용자는 사장이 아니므로 삭제할 수 없다
	err = reviewService.Delete(user, review.ID)
	assert.ErrorIs(t, err, ErrNotStoreOwner)

	// 가게 사장과 같은 로그인 아이디의 사용자는 삭제할 수 있다
	ownerUser := &model.User{
		LoginID:      "testowner",
		PasswordHash: "hash",
		Email:        "owner@example.com",
		Name:         "사장님",
		Address:      "서울시 강남구",
	}
	testDB.Create(ownerUser)

	err = reviewService.Delete(ownerUser, review.ID)
	require.NoError(t, err)

	var updated model.Store
	testDB.First(&updated, store.ID)
	assert.Equal(t, 0, updated.ReviewCount)

	var count int64
	testDB.Model(&model.Review{}).Where("store_id = ?", store.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReviewService_ListByStore(t *testing.T) {
	reviewService, _, user, store := setupReviewServiceTest(t)

	_, err := reviewService.Create(user, ReviewCreateInput{
		StoreID: store.ID,
		Rating:  5,
		Content: "최고",
	})
	require.NoError(t, err)

	reviews, err := reviewService.ListByStore(store.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "최고", reviews[0].Review.Content)
	assert.Equal(t, "테스트 사용자", reviews[0].AuthorName)
}
