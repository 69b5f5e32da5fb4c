package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/services"
)

// PublicJobHandler serves the unauthenticated job browsing surface.
type PublicJobHandler struct {
	SearchService *services.SearchService
}

func NewPublicJobHandler(searchService *services.SearchService) *PublicJobHandler {
	return &PublicJobHandler{SearchService: searchService}
}

// Browse is GET /jobs-browse?search=&sort=&types[]=. The applied filters
// are echoed back alongside the results.
func (h *PublicJobHandler) Browse(c *gin.Context) {
	var req dtos.BrowseJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingFail(c, err)
		return
	}

	jobs, err := h.SearchService.ListPublished(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_postings": jobs,
		"filters": gin.H{
			"search": req.Search,
			"sort":   req.Sort,
			"types":  req.Types,
		},
	})
}

// Show is GET /jobs/:id. Unpublished postings and postings of unvalidated
// companies 404 like absent ones.
func (h *PublicJobHandler) Show(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	job, hasApplied, err := h.SearchService.GetPublished(c.Request.Context(), id, auth.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_posting": job,
		"has_applied": hasApplied,
	})
}

// HealthCheck is GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
