package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/services"
)

type AuthHandler struct {
	AuthService *services.AuthService
	SessionTTL  int // cookie max-age, seconds
}

func NewAuthHandler(authService *services.AuthService, sessionTTLSeconds int) *AuthHandler {
	return &AuthHandler{AuthService: authService, SessionTTL: sessionTTLSeconds}
}

// RegisterJobSeeker is POST /register/job-seeker.
func (h *AuthHandler) RegisterJobSeeker(c *gin.Context) {
	var req dtos.RegisterJobSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	user, token, err := h.AuthService.RegisterJobSeeker(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// RegisterCompany is POST /register/company.
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req dtos.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	user, token, err := h.AuthService.RegisterCompany(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login is POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	user, token, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout is POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := auth.SessionToken(c); token != "" {
		if err := h.AuthService.Logout(c.Request.Context(), token); err != nil {
			fail(c, err)
			return
		}
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(auth.SessionCookie, token, h.SessionTTL, "/", "", false, true)
}
