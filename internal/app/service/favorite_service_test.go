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

func setupFavoriteServiceTest(t *testing.T) (FavoriteService, *gorm.DB, *model.User, *model.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	favoriteRepo := repository.NewFavoriteRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	favoriteService := NewFavoriteService(favoriteRepo, storeRepo)

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

	category := &model.Category{Name: "일식"}
	testDB.Create(category)

	store := &model.Store{
		OwnerID:      owner.ID,
		CategoryID:   category.ID,
		Name:         "스시히로",
		CategoryName: category.Name,
		Phone:        "02-3333-4444",
		MinPrice:     "20000원",
	}
	testDB.Create(store)

	return favoriteService, testDB, user, store
}

func TestFavoriteService_Add_Success(t *testing.T) {
	favoriteService, _, user, store := setupFavoriteServiceTest(t)

	favorite, err := favoriteService.Add(user.ID, store.ID)
	require.NoError(t, err)
	assert.NotZero(t, favorite.ID)
	assert.False(t, favorite.IsDeleted)
}

func TestFavoriteService_Add_Duplicate(t *testing.T) {
	favoriteService, _, user, store := setupFavoriteServiceTest(t)

	_, err := favoriteService.Add(user.ID, store.ID)
	require.NoError(t, err)

	favorite, err := favoriteService.Add(user.ID, store.ID)
	assert.ErrorIs(t, err, ErrFavoriteExists)
	assert.Nil(t, favorite)
}

func TestFavoriteService_Add_StoreNotFound(t *testing.T) {
	favoriteService, _, user, _ := setupFavoriteServiceTest(t)

	favorite, err := favoriteService.Add(user.ID, 99999)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Nil(t, favorite)
}

func TestFavoriteService_Remove_ThenReAdd(t *testing.T) {
	favoriteService, testDB, user, store := setupFavoriteServiceTest(t)

	first, err := favoriteService.Add(user.ID, store.ID)
	require.NoError(t, err)

	err = favoriteService.Remove(user.ID, store.ID)
	require.NoError(t, err)

	// 소프트 삭제라 행은 남고 플래그만 바뀐다
	var deleted model.FavoriteStore
	testDB.First(&deleted, first.ID)
	assert.True(t, deleted.IsDeleted)

	// 해제 후에는 다시 찜할 수 있다
	second, err := favoriteService.Add(user.ID, store.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	testDB.Model(&model.FavoriteStore{}).
		Where("user_id = ? AND store_id = ?", user.ID, store.ID).
		Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestFavoriteService_Remove_NotFound(t *testing.T) {
	favoriteService, _, user, store := setupFavoriteServiceTest(t)

	err := favoriteService.Remove(user.ID, store.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestFavoriteService_List(t *testing.T) {
	favoriteService, testDB, user, store := setupFavoriteServiceTest(t)

	_, err := favoriteService.Add(user.ID, store.ID)
	require.NoError(t, err)

	review := &model.Review{
		UserID:  user.ID,
		StoreID: store.ID,
		Rating:  4,
	}
	testDB.Create(review)

	favorites, err := favoriteService.List(user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, store.ID, favorites[0].Store.ID)
	assert.Equal(t, "스시히로", favorites[0].Store.Name)
	// 리뷰 수는 비정규화 컬럼이 아니라 실시간 집계값
	assert.Equal(t, int64(1), favorites[0].ReviewCount)
}

func TestFavoriteService_List_ExcludesDeleted(t *testing.T) {
	favoriteService, _, user, store := setupFavoriteServiceTest(t)

	_, err := favoriteService.Add(user.ID, store.ID)
	require.NoError(t, err)
	err = favoriteService.Remove(user.ID, store.ID)
	require.NoError(t, err)

	favorites, err := favoriteService.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 0)
}
