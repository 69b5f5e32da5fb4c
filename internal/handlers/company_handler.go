package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/services"
)

// CompanyHandler covers the company-side surface: posting CRUD, the
// applicant list, and application decisions.
type CompanyHandler struct {
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
}

func NewCompanyHandler(jobService *services.JobService, applicationService *services.ApplicationService) *CompanyHandler {
	return &CompanyHandler{JobService: jobService, ApplicationService: applicationService}
}

// ListJobs is GET /company/jobs.
func (h *CompanyHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.List(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_postings": jobs})
}

// ShowJob is GET /company/jobs/:id.
func (h *CompanyHandler) ShowJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	job, err := h.JobService.Get(c.Request.Context(), auth.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_posting": job})
}

// CreateJob is POST /company/jobs. New postings start as drafts.
func (h *CompanyHandler) CreateJob(c *gin.Context) {
	var req dtos.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), auth.CurrentUser(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job_posting": job})
}

// UpdateJob is PATCH /company/jobs/:id.
func (h *CompanyHandler) UpdateJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	var req dtos.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	job, err := h.JobService.Update(c.Request.Context(), auth.CurrentUser(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_posting": job})
}

// PublishJob is PATCH /company/jobs/:id/publish.
func (h *CompanyHandler) PublishJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	job, err := h.JobService.Publish(c.Request.Context(), auth.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "job published successfully",
		"job_posting": job,
	})
}

// DeleteJob is DELETE /company/jobs/:id.
func (h *CompanyHandler) DeleteJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	if err := h.JobService.Delete(c.Request.Context(), auth.CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deleted successfully"})
}

// ListApplicants is GET /company/jobs/:id/applicants.
func (h *CompanyHandler) ListApplicants(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	job, apps, err := h.JobService.ListApplicants(c.Request.Context(), auth.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job_posting":  job,
		"applications": apps,
	})
}

// ShowApplicant is GET /company/applicants/:id. The first view of a
// submitted application moves it to viewed.
func (h *CompanyHandler) ShowApplicant(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	app, err := h.ApplicationService.GetForCompany(c.Request.Context(), auth.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

// UpdateApplicationStatus is PATCH /company/applications/:id/status.
func (h *CompanyHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		fail(c, apperr.ErrNotFound)
		return
	}

	var req dtos.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFail(c, err)
		return
	}

	app, err := h.ApplicationService.UpdateStatus(c.Request.Context(), auth.CurrentUser(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "applicant status updated",
		"application": app,
	})
}
