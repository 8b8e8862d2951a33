package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// Session holds the identities bound to one browser session.
// The user slot and the owner slot are independent and may coexist.
type Session struct {
	UserID  *uint `json:"user_id,omitempty"`  // 로그인한 사용자 PK
	OwnerID *uint `json:"owner_id,omitempty"` // 로그인한 사장 PK
}

// Empty reports whether the session carries no identity at all.
func (s *Session) Empty() bool {
	return s.UserID == nil && s.OwnerID == nil
}

// Store is a server-side session store keyed by an opaque cookie token.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, token string, sess *Session) error
	Delete(ctx context.Context, token string) error
}

// NewToken returns a fresh opaque session token.
func NewToken() string {
	return uuid.NewString()
}
