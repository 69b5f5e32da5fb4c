package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/services"
)

type AdminHandler struct {
	AdminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: adminService}
}

// ListCompanies is GET /admin/companies.
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	companies, err := h.AdminService.ListCompanies(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// ValidateCompany is PATCH /admin/companies/:id/validate. Repeated calls
// are harmless.
func (h *AdminHandler) ValidateCompany(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	company, err := h.AdminService.ValidateCompany(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "company validated successfully",
		"company": company,
	})
}
