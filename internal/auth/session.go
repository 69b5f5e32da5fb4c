package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoSession is returned when a token is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Session is the server-side state bound to one opaque token.
type Session struct {
	UserID uint   `json:"user_id"`
	Locale string `json:"locale,omitempty"`
}

// SessionStore persists sessions keyed by token, with a TTL applied on
// every write.
type SessionStore interface {
	Create(ctx context.Context, sess Session) (token string, err error)
	Get(ctx context.Context, token string) (Session, error)
	Save(ctx context.Context, token string, sess Session) error
	Delete(ctx context.Context, token string) error
}

// NewToken generates an opaque session token.
func NewToken() string {
	return uuid.NewString()
}

// DefaultSessionTTL applies when no session_ttl is configured.
const DefaultSessionTTL = 24 * time.Hour
