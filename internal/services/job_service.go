package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/appstatus"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/models"
	"github.com/joblinkhq/joblink/internal/policy"
)

// JobService is the company-side posting lifecycle: create as draft,
// publish, update, delete. Publishing is deliberately not gated on company
// validation; validation only controls public visibility.
type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns the company's own postings, newest first, each with its
// application count.
func (s *JobService) List(ctx context.Context, user *models.User) ([]dtos.JobWithApplicantCount, error) {
	if !user.IsCompany() || user.CompanyProfile == nil {
		return nil, apperr.ErrForbidden
	}

	rows := []dtos.JobWithApplicantCount{}
	err := s.DB.WithContext(ctx).Model(&models.JobPosting{}).
		Select("job_postings.id, job_postings.title, job_postings.type, job_postings.location, "+
			"job_postings.employment_type, job_postings.status, job_postings.published_at, job_postings.created_at, "+
			"(SELECT COUNT(*) FROM applications WHERE applications.job_posting_id = job_postings.id) AS application_count").
		Where("job_postings.company_profile_id = ?", user.CompanyProfile.ID).
		Order("job_postings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns one of the company's own postings.
func (s *JobService) Get(ctx context.Context, user *models.User, id uint) (*models.JobPosting, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageJobPosting(user, job) {
		return nil, apperr.ErrForbidden
	}
	return job, nil
}

// Create stores a new posting in draft status.
func (s *JobService) Create(ctx context.Context, user *models.User, req *dtos.JobPostingRequest) (*models.JobPosting, error) {
	if !user.IsCompany() || user.CompanyProfile == nil {
		return nil, apperr.ErrForbidden
	}

	job := &models.JobPosting{
		CompanyProfileID: user.CompanyProfile.ID,
		Status:           string(appstatus.JobStatusDraft),
	}
	applyJobRequest(job, req)

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update replaces the editable fields of an owned posting.
func (s *JobService) Update(ctx context.Context, user *models.User, id uint, req *dtos.JobPostingRequest) (*models.JobPosting, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageJobPosting(user, job) {
		return nil, apperr.ErrForbidden
	}

	applyJobRequest(job, req)
	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Publish moves an owned posting to published and stamps PublishedAt.
func (s *JobService) Publish(ctx context.Context, user *models.User, id uint) (*models.JobPosting, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageJobPosting(user, job) {
		return nil, apperr.ErrForbidden
	}

	now := time.Now()
	job.Status = string(appstatus.JobStatusPublished)
	job.PublishedAt = &now
	if err := s.DB.WithContext(ctx).Model(job).
		Updates(map[string]any{"status": job.Status, "published_at": job.PublishedAt}).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes an owned posting and, through it, its applications.
func (s *JobService) Delete(ctx context.Context, user *models.User, id uint) error {
	job, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanManageJobPosting(user, job) {
		return apperr.ErrForbidden
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_posting_id = ?", job.ID).
			Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
}

// ListApplicants returns the applications made to an owned posting, with
// the seeker profiles and their users loaded.
func (s *JobService) ListApplicants(ctx context.Context, user *models.User, jobID uint) (*models.JobPosting, []models.Application, error) {
	job, err := s.find(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if !policy.CanManageJobPosting(user, job) {
		return nil, nil, apperr.ErrForbidden
	}

	apps := []models.Application{}
	err = s.DB.WithContext(ctx).
		Preload("JobSeekerProfile").
		Where("job_posting_id = ?", job.ID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, nil, err
	}
	return job, apps, nil
}

func (s *JobService) find(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := s.DB.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func applyJobRequest(job *models.JobPosting, req *dtos.JobPostingRequest) {
	job.Title = req.Title
	job.Description = req.Description
	job.Responsibilities = req.Responsibilities
	job.Qualifications = req.Qualifications
	job.Type = req.Type
	job.Location = req.Location
	job.RemotePolicy = req.RemotePolicy
	job.EmploymentType = req.EmploymentType
	job.StartDate = parseDate(req.StartDate)
	job.SalaryMin = *req.SalaryMin
	job.SalaryCurrency = req.SalaryCurrency
	job.SalaryPeriod = req.SalaryPeriod
	job.ApplicationDeadline = parseDate(req.ApplicationDeadline)
	job.InterviewRounds = req.InterviewRounds
	job.ApplicationProcessDuration = req.ApplicationProcessDuration
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	// Format already validated by the binding tag.
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
