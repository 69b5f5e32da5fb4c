package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/auth"
)

// Handlers bundles every handler for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Public      *PublicJobHandler
	Application *ApplicationHandler
	Company     *CompanyHandler
	Profile     *ProfileHandler
	Admin       *AdminHandler
	Dashboard   *DashboardHandler
	Language    *LanguageHandler
}

// RegisterRoutes wires the full HTTP surface onto the engine. Identify and
// Localize run on everything; auth requirements tighten per group.
func RegisterRoutes(r *gin.Engine, mw *auth.Middleware, h *Handlers) {
	r.Use(mw.Identify(), mw.Localize())

	r.GET("/health", HealthCheck)
	r.POST("/language/switch", h.Language.Switch)

	// Public job browsing
	r.GET("/jobs-browse", h.Public.Browse)
	r.GET("/jobs/:id", h.Public.Show)

	// Registration and sessions
	r.POST("/register/job-seeker", h.Auth.RegisterJobSeeker)
	r.POST("/register/company", h.Auth.RegisterCompany)
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)

	// Authenticated surface
	authed := r.Group("/", mw.RequireAuth())
	{
		authed.GET("/dashboard", h.Dashboard.Show)
		authed.POST("/jobs/:id/apply", h.Application.Apply)
		authed.GET("/my-applications", h.Application.MyApplications)

		authed.GET("/profile", h.Profile.Show)
		authed.PATCH("/profile", h.Profile.Update)
		authed.DELETE("/profile", h.Profile.Destroy)
	}

	// Companies manage their own postings and applicants
	company := r.Group("/company", mw.RequireAuth())
	{
		company.GET("/jobs", h.Company.ListJobs)
		company.POST("/jobs", h.Company.CreateJob)
		company.GET("/jobs/:id", h.Company.ShowJob)
		company.PATCH("/jobs/:id", h.Company.UpdateJob)
		company.PATCH("/jobs/:id/publish", h.Company.PublishJob)
		company.DELETE("/jobs/:id", h.Company.DeleteJob)
		company.GET("/jobs/:id/applicants", h.Company.ListApplicants)
		company.GET("/applicants/:id", h.Company.ShowApplicant)
		company.PATCH("/applications/:id/status", h.Company.UpdateApplicationStatus)
	}

	// Admin-only validation surface
	admin := r.Group("/admin", mw.RequireAuth(), mw.RequireAdmin())
	{
		admin.GET("/companies", h.Admin.ListCompanies)
		admin.PATCH("/companies/:id/validate", h.Admin.ValidateCompany)
	}
}
