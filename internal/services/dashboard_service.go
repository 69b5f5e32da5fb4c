package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/models"
)

// DashboardService assembles the role-conditioned recent activity shown
// after login.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Dashboard holds whichever section matches the user's role.
type Dashboard struct {
	RecentJobPostings  []dtos.JobWithApplicantCount `json:"recent_job_postings,omitempty"`
	RecentApplications []models.Application         `json:"recent_applications,omitempty"`
}

func (s *DashboardService) Get(ctx context.Context, user *models.User) (*Dashboard, error) {
	dash := &Dashboard{}

	if user.IsCompany() && user.CompanyProfile != nil {
		rows := []dtos.JobWithApplicantCount{}
		err := s.DB.WithContext(ctx).Model(&models.JobPosting{}).
			Select("job_postings.id, job_postings.title, job_postings.type, job_postings.location, "+
				"job_postings.employment_type, job_postings.status, job_postings.published_at, job_postings.created_at, "+
				"(SELECT COUNT(*) FROM applications WHERE applications.job_posting_id = job_postings.id) AS application_count").
			Where("job_postings.company_profile_id = ?", user.CompanyProfile.ID).
			Order("job_postings.created_at DESC").
			Limit(5).
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		dash.RecentJobPostings = rows
	}

	if user.IsJobSeeker() && user.JobSeekerProfile != nil {
		apps := []models.Application{}
		err := s.DB.WithContext(ctx).
			Preload("JobPosting").
			Preload("JobPosting.CompanyProfile").
			Where("job_seeker_profile_id = ?", user.JobSeekerProfile.ID).
			Order("created_at DESC").
			Limit(5).
			Find(&apps).Error
		if err != nil {
			return nil, err
		}
		dash.RecentApplications = apps
	}

	return dash, nil
}
