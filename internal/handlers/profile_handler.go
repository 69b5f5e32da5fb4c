package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/services"
)

type ProfileHandler struct {
	ProfileService *services.ProfileService
	AuthService    *services.AuthService
}

func NewProfileHandler(profileService *services.ProfileService, authService *services.AuthService) *ProfileHandler {
	return &ProfileHandler{ProfileService: profileService, AuthService: authService}
}

// Show is GET /profile.
func (h *ProfileHandler) Show(c *gin.Context) {
	user := auth.CurrentUser(c)

	profile, err := h.ProfileService.Get(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"profile": profile,
	})
}

// Update is PATCH /profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	user := auth.CurrentUser(c)
	if err := h.ProfileService.Update(c.Request.Context(), user, &req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

// Destroy is DELETE /profile: the account goes away after a password
// confirmation, along with everything it owns.
func (h *ProfileHandler) Destroy(c *gin.Context) {
	var req dtos.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	user := auth.CurrentUser(c)
	err := h.AuthService.DeleteAccount(c.Request.Context(), user, req.Password, auth.SessionToken(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
