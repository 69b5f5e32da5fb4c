// Package policy holds the per-resource authorization rules. Policies are
// pure functions over already-loaded entities, evaluated on every request.
package policy

import "github.com/joblinkhq/joblink/internal/models"

// CanViewApplication reports whether user may read an application made to
// one of their postings. The application's JobPosting must be loaded.
func CanViewApplication(user *models.User, app *models.Application) bool {
	if user == nil || app == nil || app.JobPosting == nil {
		return false
	}
	return user.IsCompany() &&
		user.CompanyProfile != nil &&
		user.CompanyProfile.ID == app.JobPosting.CompanyProfileID
}

// CanUpdateApplication shares the view rule: only the owning company may
// move an application through its lifecycle.
func CanUpdateApplication(user *models.User, app *models.Application) bool {
	return CanViewApplication(user, app)
}

// CanManageJobPosting reports whether user owns the posting. View, update
// and delete all reduce to ownership; there is no ownership transfer.
func CanManageJobPosting(user *models.User, job *models.JobPosting) bool {
	if user == nil || job == nil {
		return false
	}
	return user.IsCompany() &&
		user.CompanyProfile != nil &&
		user.CompanyProfile.ID == job.CompanyProfileID
}

// IsAdmin gates the admin surface.
func IsAdmin(user *models.User) bool {
	return user != nil && user.IsAdmin
}
