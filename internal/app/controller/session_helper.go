package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/baedal-backend/config"
	"github.com/ikkim/baedal-backend/internal/middleware"
	"github.com/ikkim/baedal-backend/pkg/session"
)

// sessionWriter 로그인/로그아웃 컨트롤러가 공유하는 세션 쿠키 처리.
// 이미 세션이 있으면 같은 토큰을 재사용해 사용자/사장 슬롯이 한 세션에
// 공존할 수 있게 한다.
type sessionWriter struct {
	store session.Store
	cfg   *config.SessionConfig
}

func newSessionWriter(store session.Store, cfg *config.SessionConfig) sessionWriter {
	return sessionWriter{store: store, cfg: cfg}
}

// mutate 현재 세션(없으면 새 세션)에 apply를 적용해 저장하고 쿠키를 내려준다
func (w sessionWriter) mutate(c *gin.Context, apply func(*session.Session)) error {
	token, hasToken := middleware.GetSessionToken(c)
	sess := &session.Session{}
	if hasToken {
		if existing, ok := middleware.GetSessionData(c); ok {
			sess = existing
		}
	} else {
		token = session.NewToken()
	}

	apply(sess)

	if err := w.store.Save(c.Request.Context(), token, sess); err != nil {
		return err
	}

	c.SetCookie(w.cfg.CookieName, token, int(w.cfg.TTL.Seconds()), "/", "", w.cfg.Secure, true)
	return nil
}

// clear 해당 슬롯만 비운다. 세션이 완전히 비면 저장소에서 삭제하고
// 쿠키를 만료시킨다.
func (w sessionWriter) clear(c *gin.Context, apply func(*session.Session)) error {
	token, hasToken := middleware.GetSessionToken(c)
	if !hasToken {
		return nil
	}

	sess, ok := middleware.GetSessionData(c)
	if !ok {
		sess = &session.Session{}
	}

	apply(sess)

	if sess.Empty() {
		if err := w.store.Delete(c.Request.Context(), token); err != nil &&
			!errors.Is(err, session.ErrNotFound) {
			return err
		}
		c.SetCookie(w.cfg.CookieName, "", -1, "/", "", w.cfg.Secure, true)
		return nil
	}

	return w.store.Save(c.Request.Context(), token, sess)
}
