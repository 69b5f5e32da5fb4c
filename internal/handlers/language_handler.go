package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/dtos"
)

// LanguageHandler persists the language choice: in the session for
// authenticated users, in a plain cookie for guests.
type LanguageHandler struct {
	Sessions auth.SessionStore
}

func NewLanguageHandler(sessions auth.SessionStore) *LanguageHandler {
	return &LanguageHandler{Sessions: sessions}
}

// Switch is POST /language/switch.
func (h *LanguageHandler) Switch(c *gin.Context) {
	var req dtos.SwitchLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	if token := auth.SessionToken(c); token != "" {
		sess, err := h.Sessions.Get(c.Request.Context(), token)
		if err == nil {
			sess.Locale = req.Locale
			if err := h.Sessions.Save(c.Request.Context(), token, sess); err != nil {
				fail(c, err)
				return
			}
		}
	}

	c.SetCookie(auth.LocaleCookie, req.Locale, 365*24*60*60, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"locale": req.Locale})
}
