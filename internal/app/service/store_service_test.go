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

func setupStoreServiceTest(t *testing.T) (StoreService, *gorm.DB, *model.User, *model.Category) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	storeRepo := repository.NewStoreRepository(testDB)
	ownerRepo := repository.NewOwnerRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	paymentRepo := repository.NewPaymentRepository(testDB)
	storeService := NewStoreService(storeRepo, ownerRepo, categoryRepo, paymentRepo)

	user := &model.User{
		LoginID:      "testuser1",
		PasswordHash: "hash",
		Email:        "user@example.com",
		Name:         "테스트 사용자",
		Address:      "서울시 강남구",
	}
	testDB.Create(user)

	category := &model.Category{Name: "한식"}
	testDB.Create(category)

	return storeService, testDB, user, category
}

func TestStoreService_Register_MirrorsOwner(t *testing.T) {
	storeService, testDB, user, category := setupStoreServiceTest(t)

	store, err := storeService.Register(user, StoreRegisterInput{
		Name:       "백반집",
		CategoryID: category.ID,
		Phone:      "02-1234-5678",
		MinPrice:   "8000원",
	})
	require.NoError(t, err)
	assert.NotZero(t, store.ID)
	assert.Equal(t, category.Name, store.CategoryName)

	// 같은 로그인 아이디의 Owner가 자동 생성된다
	var owner model.Owner
	err = testDB.Where("login_id = ?", user.LoginID).First(&owner).Error
	require.NoError(t, err)
	assert.Equal(t, owner.ID, store.OwnerID)
	assert.Equal(t, user.PasswordHash, owner.PasswordHash)

	// 두 번째 가게 등록은 기존 Owner를 재사용한다
	second, err := storeService.Register(user, StoreRegisterInput{
		Name:       "국밥집",
		CategoryID: category.ID,
		Phone:      "02-5678-1234",
		MinPrice:   "9000원",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, second.OwnerID)

	var ownerCount int64
	testDB.Model(&model.Owner{}).Where("login_id = ?", user.LoginID).Count(&ownerCount)
	assert.Equal(t, int64(1), ownerCount)
}

func TestStoreService_Register_WithPayments(t *testing.T) {
	storeService, testDB, user, category := setupStoreServiceTest(t)

	card := &model.Payment{Name: "만나서 카드결제"}
	testDB.Create(card)
	cash := &model.Payment{Name: "만나서 현금 결제"}
	testDB.Create(cash)

	store, err := storeService.Register(user, StoreRegisterInput{
		Name:       "분식왕",
		CategoryID: category.ID,
		Phone:      "02-0000-0000",
		MinPrice:   "5000원",
		PaymentIDs: []uint{card.ID, cash.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, store.PaymentID)
	assert.Equal(t, card.ID, *store.PaymentID)

	var count int64
	testDB.Model(&model.StorePayment{}).Where("store_id = ?", store.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestStoreService_Register_CategoryNotFound(t *testing.T) {
	storeService, _, user, _ := setupStoreServiceTest(t)

	store, err := storeService.Register(user, StoreRegisterInput{
		Name:       "없는 카테고리 가게",
		CategoryID: 99999,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Nil(t, store)
}

func TestStoreService_Update_NotOwner(t *testing.T) {
	storeService, testDB, user, category := setupStoreServiceTest(t)

	store, err := storeService.Register(user, StoreRegisterInput{
		Name:       "백반집",
		CategoryID: category.ID,
		Phone:      "02-1234-5678",
		MinPrice:   "8000원",
	})
	require.NoError(t, err)

	stranger := &model.User{
		LoginID:      "stranger",
		PasswordHash: "hash",
		Email:        "s@example.com",
		Name:         "남남",
		Address:      "부산시",
	}
	testDB.Create(stranger)

	newName := "내 가게"
	updated, err := storeService.Update(stranger, store.ID, StoreUpdateInput{Name: &newName})
	assert.ErrorIs(t, err, ErrNotStoreOwner)
	assert.Nil(t, updated)
}

func TestStoreService_Update_PartialFields(t *testing.T) {
	storeService, _, user, category := setupStoreServiceTest(t)

	store, err := storeService.Register(user, StoreRegisterInput{
		Name:       "백반집",
		CategoryID: category.ID,
		Phone:      "02-1234-5678",
		MinPrice:   "8000원",
	})
	require.NoError(t, err)

	newPhone := "02-9999-9999"
	updated, err := storeService.Update(user, store.ID, StoreUpdateInput{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	// 넘기지 않은 필드는 유지된다
	assert.Equal(t, "백반집", updated.Name)
	assert.Equal(t, "8000원", updated.MinPrice)
}

func TestStoreService_Detail_Aggregates(t *testing.T) {
	storeService, testDB, user, category := setupStoreServiceTest(t)

	store, err := storeService.Register(user, StoreRegisterInput{
		Name:       "백반집",
		CategoryID: category.ID,
		Phone:      "02-1234-5678",
		MinPrice:   "8000원",
	})
	require.NoError(t, err)

	for _, rating := range []int{5, 4} {
		testDB.Create(&model.Review{UserID: user.ID, StoreID: store.ID, Rating: rating})
	}
	testDB.Create(&model.Order{UserID: user.ID, StoreID: store.ID, Content: "제육볶음", TotalPrice: 9000})

	detail, err := storeService.Detail(store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.ReviewCount)
	assert.Equal(t, int64(1), detail.OrderCount)
	assert.Equal(t, 4.5, detail.AvgRating)
}

func TestStoreService_ListByCategory_Sorting(t *testing.T) {
	storeService, testDB, user, category := setupStoreServiceTest(t)

	names := []string{"가나다집", "하하식당", "마포갈비"}
	stores := make([]*model.Store, 0, len(names))
	for _, name := range names {
		store, err := storeService.Register(user, StoreRegisterInput{
			Name:       name,
			CategoryID: category.ID,
			Phone:      "02-0000-0000",
			MinPrice:   "10000원",
		})
		require.NoError(t, err)
		stores = append(stores, store)
	}

	// 하하식당에 리뷰 2개, 마포갈비에 1개
	testDB.Create(&model.Review{UserID: user.ID, StoreID: stores[1].ID, Rating: 3})
	testDB.Create(&model.Review{UserID: user.ID, StoreID: stores[1].ID, Rating: 4})
	testDB.Create(&model.Review{UserID: user.ID, StoreID: stores[2].ID, Rating: 5})

	// 기본값은 이름 오름차순
	byName, err := storeService.ListByCategory(category.ID, "")
	require.NoError(t, err)
	require.Len(t, byName, 3)
	assert.Equal(t, "가나다집", byName[0].Store.Name)

	// review 키는 리뷰 수 내림차순
	byReview, err := storeService.ListByCategory(category.ID, "review")
	require.NoError(t, err)
	assert.Equal(t, "하하식당", byReview[0].Store.Name)
	assert.Equal(t, int64(2), byReview[0].ReviewCount)

	// rating 키는 평균 평점 내림차순
	byRating, err := storeService.ListByCategory(category.ID, "rating")
	require.NoError(t, err)
	assert.Equal(t, "마포갈비", byRating[0].Store.Name)
	assert.Equal(t, 5.0, byRating[0].AvgRating)
}

func TestStoreService_ListByCategory_CategoryNotFound(t *testing.T) {
	storeService, _, _, _ := setupStoreServiceTest(t)

	summaries, err := storeService.ListByCategory(99999, "")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Nil(t, summaries)
}
