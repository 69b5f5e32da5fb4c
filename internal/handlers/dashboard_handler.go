package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/services"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{DashboardService: dashboardService}
}

// Show is GET /dashboard.
func (h *DashboardHandler) Show(c *gin.Context) {
	dash, err := h.DashboardService.Get(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
