package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/appstatus"
	"github.com/joblinkhq/joblink/internal/models"
	"github.com/joblinkhq/joblink/internal/policy"
)

// ApplicationService owns the application lifecycle on both sides: seekers
// apply, the owning company reads and decides.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply submits an application for the given posting. The duplicate guard
// is the composite unique index, so two concurrent submissions cannot both
// succeed; the pre-check only exists for the friendlier error on the common
// path.
func (s *ApplicationService) Apply(ctx context.Context, user *models.User, jobID uint) (*models.Application, error) {
	if user == nil || !user.IsJobSeeker() {
		return nil, apperr.ErrForbidden
	}
	if user.JobSeekerProfile == nil {
		return nil, apperr.ErrProfileRequired
	}

	var job models.JobPosting
	err := s.DB.WithContext(ctx).First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("job_posting_id = ? AND job_seeker_profile_id = ?", job.ID, user.JobSeekerProfile.ID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.ErrAlreadyApplied
	}

	app := &models.Application{
		JobPostingID:       job.ID,
		JobSeekerProfileID: user.JobSeekerProfile.ID,
		Status:             string(appstatus.StatusSubmitted),
	}
	err = s.DB.WithContext(ctx).Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.ErrAlreadyApplied
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// GetForCompany returns one application for the owning company. The first
// read of a submitted application marks it viewed; this is the explicit
// mutation-on-read the workflow defines, and it happens at most once.
func (s *ApplicationService) GetForCompany(ctx context.Context, user *models.User, appID uint) (*models.Application, error) {
	app, err := s.find(ctx, appID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewApplication(user, app) {
		return nil, apperr.ErrForbidden
	}

	if err := s.MarkViewed(ctx, app); err != nil {
		return nil, err
	}

	// Load the seeker's profile for the applicant view.
	err = s.DB.WithContext(ctx).Preload("JobSeekerProfile").First(app, app.ID).Error
	if err != nil {
		return nil, err
	}
	return app, nil
}

// MarkViewed transitions a submitted application to viewed. The guarded
// UPDATE makes the transition happen exactly once even under concurrent
// first reads; any other current status leaves the row untouched.
func (s *ApplicationService) MarkViewed(ctx context.Context, app *models.Application) error {
	if !appstatus.CanTransition(appstatus.Status(app.Status), appstatus.StatusViewed) {
		return nil
	}

	res := s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("id = ? AND status = ?", app.ID, string(appstatus.StatusSubmitted)).
		Update("status", string(appstatus.StatusViewed))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		app.Status = string(appstatus.StatusViewed)
	}
	return nil
}

// UpdateStatus applies the company's decision. Only shortlisted and
// rejected are accepted, and a decided application cannot change again.
func (s *ApplicationService) UpdateStatus(ctx context.Context, user *models.User, appID uint, status string) (*models.Application, error) {
	target, err := appstatus.Parse(status)
	if err != nil || !appstatus.IsDecision(target) {
		return nil, apperr.NewValidation("status", "status must be shortlisted or rejected")
	}

	app, err := s.find(ctx, appID)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdateApplication(user, app) {
		return nil, apperr.ErrForbidden
	}

	current := appstatus.Status(app.Status)
	if appstatus.Terminal(current) {
		return nil, apperr.NewValidation("status", "application has already been decided")
	}

	err = s.DB.WithContext(ctx).Model(app).Update("status", string(target)).Error
	if err != nil {
		return nil, err
	}
	app.Status = string(target)
	return app, nil
}

// ListMine returns the seeker's own applications, newest first, with the
// posting and its company name loaded.
func (s *ApplicationService) ListMine(ctx context.Context, user *models.User) ([]models.Application, error) {
	if user == nil || !user.IsJobSeeker() {
		return nil, apperr.ErrForbidden
	}
	if user.JobSeekerProfile == nil {
		return []models.Application{}, nil
	}

	apps := []models.Application{}
	err := s.DB.WithContext(ctx).
		Preload("JobPosting").
		Preload("JobPosting.CompanyProfile").
		Where("job_seeker_profile_id = ?", user.JobSeekerProfile.ID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) find(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).Preload("JobPosting").First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}
