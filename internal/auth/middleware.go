package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/models"
)

// SessionCookie is the cookie carrying the session token. A bearer token in
// the Authorization header is accepted as well for non-browser clients.
const SessionCookie = "joblink_session"

// LocaleCookie stores the language choice for guests without a session.
const LocaleCookie = "locale"

const (
	ctxUserKey    = "currentUser"
	ctxTokenKey   = "sessionToken"
	ctxSessionKey = "session"
	ctxLocaleKey  = "locale"
)

var supportedLocales = map[string]bool{"en": true, "es": true}

// Middleware resolves sessions into users on each request.
type Middleware struct {
	db       *gorm.DB
	sessions SessionStore
}

func NewMiddleware(db *gorm.DB, sessions SessionStore) *Middleware {
	return &Middleware{db: db, sessions: sessions}
}

// Identify resolves the session token into the current user, if any, and
// never rejects: public endpoints use it for the optional identity.
func (m *Middleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := m.sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		err = m.db.Preload("JobSeekerProfile").Preload("CompanyProfile").
			First(&user, sess.UserID).Error
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxUserKey, &user)
		c.Set(ctxTokenKey, token)
		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// RequireAuth aborts with 401 when no authenticated user is present. It
// must run after Identify.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the current user carries the admin
// flag.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// Localize picks the request locale: session choice first, then the guest
// cookie, then the Accept-Language header, defaulting to English.
func (m *Middleware) Localize() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := ""
		if sess, ok := sessionFrom(c); ok {
			locale = sess.Locale
		}
		if locale == "" {
			locale, _ = c.Cookie(LocaleCookie)
		}
		if locale == "" {
			header := c.GetHeader("Accept-Language")
			if len(header) >= 2 {
				locale = header[:2]
			}
		}
		if !supportedLocales[locale] {
			locale = "en"
		}
		c.Set(ctxLocaleKey, locale)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Identify, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// SessionToken returns the token of the active session, or "".
func SessionToken(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}

// Locale returns the locale resolved by Localize.
func Locale(c *gin.Context) string {
	if l := c.GetString(ctxLocaleKey); l != "" {
		return l
	}
	return "en"
}

func sessionFrom(c *gin.Context) (Session, bool) {
	if v, ok := c.Get(ctxSessionKey); ok {
		if sess, ok := v.(Session); ok {
			return sess, true
		}
	}
	return Session{}, false
}

func tokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
