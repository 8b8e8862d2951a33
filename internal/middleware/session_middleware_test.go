package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/db"
	"github.com/ikkim/baedal-backend/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testCookieName = "session_id"

func setupSessionMiddlewareTest(t *testing.T) (*SessionMiddleware, *session.MemoryStore, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	store := session.NewMemoryStore(time.Minute)
	return NewSessionMiddleware(store, testDB, testCookieName), store, testDB
}

func performRequest(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware_Resolve_AttachesUser(t *testing.T) {
	sm, store, testDB := setupSessionMiddlewareTest(t)

	user := &model.User{
		LoginID: "testuser1", PasswordHash: "hash",
		Email: "u@test.com", Name: "사용자", Address: "서울시",
	}
	testDB.Create(user)

	token := session.NewToken()
	require.NoError(t, store.Save(context.Background(), token, &session.Session{UserID: &user.ID}))

	var resolved *model.User
	engine := gin.New()
	engine.Use(sm.Resolve())
	engine.GET("/probe", func(c *gin.Context) {
		resolved, _ = GetCurrentUser(c)
		c.Status(http.StatusOK)
	})

	w := performRequest(engine, token)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestSessionMiddleware_Resolve_GuestWithoutCookie(t *testing.T) {
	sm, _, _ := setupSessionMiddlewareTest(t)

	var hasUser, hasOwner bool
	engine := gin.New()
	engine.Use(sm.Resolve())
	engine.GET("/probe", func(c *gin.Context) {
		_, hasUser = GetCurrentUser(c)
		_, hasOwner = GetCurrentOwner(c)
		c.Status(http.StatusOK)
	})

	w := performRequest(engine, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hasUser)
	assert.False(t, hasOwner)
}

func TestSessionMiddleware_Resolve_ClearsDeletedUserSlot(t *testing.T) {
	sm, store, testDB := setupSessionMiddlewareTest(t)

	user := &model.User{
		LoginID: "testuser1", PasswordHash: "hash",
		Email: "u@test.com", Name: "사용자", Address: "서울시",
	}
	testDB.Create(user)
	owner := &model.Owner{LoginID: "testowner", PasswordHash: "hash", Email: "o@test.com"}
	testDB.Create(owner)

	token := session.NewToken()
	require.NoError(t, store.Save(context.Background(), token,
		&session.Session{UserID: &user.ID, OwnerID: &owner.ID}))

	// 세션이 가리키는 사용자를 지운다
	testDB.Delete(&model.User{}, user.ID)

	engine := gin.New()
	engine.Use(sm.Resolve())
	engine.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })
	performRequest(engine, token)

	// 사용자 슬롯은 지워지고 사장 슬롯은 남는다
	sess, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, sess.UserID)
	require.NotNil(t, sess.OwnerID)
	assert.Equal(t, owner.ID, *sess.OwnerID)
}

func TestSessionMiddleware_Resolve_DeletesFullyStaleSession(t *testing.T) {
	sm, store, testDB := setupSessionMiddlewareTest(t)

	user := &model.User{
		LoginID: "testuser1", PasswordHash: "hash",
		Email: "u@test.com", Name: "사용자", Address: "서울시",
	}
	testDB.Create(user)

	token := session.NewToken()
	require.NoError(t, store.Save(context.Background(), token, &session.Session{UserID: &user.ID}))

	testDB.Delete(&model.User{}, user.ID)

	engine := gin.New()
	engine.Use(sm.Resolve())
	engine.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })
	performRequest(engine, token)

	// 빈 세션은 저장소에서 제거된다
	_, err := store.Get(context.Background(), token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionMiddleware_RequireUser(t *testing.T) {
	sm, store, testDB := setupSessionMiddlewareTest(t)

	engine := gin.New()
	engine.Use(sm.Resolve())
	engine.GET("/probe", sm.RequireUser(), func(c *gin.Context) { c.Status(http.StatusOK) })

	// 비로그인 요청은 401
	w := performRequest(engine, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := &model.User{
		LoginID: "testuser1", PasswordHash: "hash",
		Email: "u@test.com", Name: "사용자", Address: "서울시",
	}
	testDB.Create(user)
	token := session.NewToken()
	require.NoError(t, store.Save(context.Background(), token, &session.Session{UserID: &user.ID}))

	w = performRequest(engine, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionMiddleware_RequireOwner(t *testing.T) {
	sm, store, testDB := setupSessionMiddlewareTest(t)

	engine := gin.New()
	engine.Use(sm.Resolve())
	engine.GET("/probe", sm.RequireOwner(), func(c *gin.Context) { c.Status(http.StatusOK) })

	// 사용자 세션만으로는 사장 전용 경로에 들어갈 수 없다
	user := &model.User{
		LoginID: "testuser1", PasswordHash: "hash",
		Email: "u@test.com", Name: "사용자", Address: "서울시",
	}
	testDB.Create(user)
	userToken := session.NewToken()
	require.NoError(t, store.Save(context.Background(), userToken, &session.Session{UserID: &user.ID}))

	w := performRequest(engine, userToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	owner := &model.Owner{LoginID: "testowner", PasswordHash: "hash", Email: "o@test.com"}
	testDB.Create(owner)
	ownerToken := session.NewToken()
	require.NoError(t, store.Save(context.Background(), ownerToken, &session.Session{OwnerID: &owner.ID}))

	w = performRequest(engine, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
