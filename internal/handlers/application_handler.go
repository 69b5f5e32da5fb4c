package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/services"
)

// ApplicationHandler covers the job seeker side of applications.
type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: applicationService}
}

// Apply is POST /jobs/:id/apply.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	app, err := h.ApplicationService.Apply(c.Request.Context(), auth.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "application submitted successfully",
		"application": app,
	})
}

// MyApplications is GET /my-applications.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.ApplicationService.ListMine(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
