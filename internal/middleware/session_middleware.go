package middleware

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/errors"
	"github.com/ikkim/baedal-backend/pkg/session"
	"gorm.io/gorm"
)

// Context keys for session identity
const (
	CurrentUserKey  = "current_user"
	CurrentOwnerKey = "current_owner"
	SessionTokenKey = "session_token"
	SessionDataKey  = "session_data"
)

type SessionMiddleware struct {
	store      session.Store
	db         *gorm.DB
	cookieName string
}

func NewSessionMiddleware(store session.Store, db *gorm.DB, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		db:         db,
		cookieName: cookieName,
	}
}

// Resolve loads the session behind the cookie and attaches the logged-in
// user/owner rows to the request context. Requests without a cookie (or with
// an expired token) continue as guests.
//
// 세션에 기록된 계정이 이미 삭제된 경우 해당 슬롯을 세션에서 제거한다
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sess, err := m.store.Get(c.Request.Context(), token)
		if err != nil {
			if !stderrors.Is(err, session.ErrNotFound) {
				log.Error("Failed to load session", err, map[string]interface{}{
					"path": c.Request.URL.Path,
				})
			}
			c.Next()
			return
		}

		changed := false

		if sess.UserID != nil {
			var user model.User
			err := m.db.First(&user, *sess.UserID).Error
			switch {
			case err == nil:
				c.Set(CurrentUserKey, &user)
			case stderrors.Is(err, gorm.ErrRecordNotFound):
				log.Warn("Session references deleted user - clearing slot", map[string]interface{}{
					"user_id": *sess.UserID,
				})
				sess.UserID = nil
				changed = true
			default:
				log.Error("Failed to load session user", err, nil)
			}
		}

		if sess.OwnerID != nil {
			var owner model.Owner
			err := m.db.First(&owner, *sess.OwnerID).Error
			switch {
			case err == nil:
				c.Set(CurrentOwnerKey, &owner)
			case stderrors.Is(err, gorm.ErrRecordNotFound):
				log.Warn("Session references deleted owner - clearing slot", map[string]interface{}{
					"owner_id": *sess.OwnerID,
				})
				sess.OwnerID = nil
				changed = true
			default:
				log.Error("Failed to load session owner", err, nil)
			}
		}

		if changed {
			if sess.Empty() {
				if err := m.store.Delete(c.Request.Context(), token); err != nil {
					log.Error("Failed to delete stale session", err, nil)
				}
			} else {
				if err := m.store.Save(c.Request.Context(), token, sess); err != nil {
					log.Error("Failed to update stale session", err, nil)
				}
			}
		}

		c.Set(SessionTokenKey, token)
		c.Set(SessionDataKey, sess)

		c.Next()
	}
}

// RequireUser rejects requests without a logged-in customer
func (m *SessionMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCurrentUser(c); !ok {
			GetLoggerFromContext(c).Warn("User login required", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "로그인이 필요합니다")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOwner rejects requests without a logged-in owner
func (m *SessionMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCurrentOwner(c); !ok {
			GetLoggerFromContext(c).Warn("Owner login required", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, 401, errors.AuthOwnerRequired, "사장님 로그인이 필요합니다")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUser extracts the logged-in customer from context
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

// GetCurrentOwner extracts the logged-in owner from context
func GetCurrentOwner(c *gin.Context) (*model.Owner, bool) {
	v, exists := c.Get(CurrentOwnerKey)
	if !exists {
		return nil, false
	}
	owner, ok := v.(*model.Owner)
	return owner, ok
}

// GetSessionToken extracts the opaque session token from context
func GetSessionToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(SessionTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// GetSessionData extracts the decoded session from context
func GetSessionData(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(SessionDataKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
