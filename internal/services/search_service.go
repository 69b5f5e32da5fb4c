package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/appstatus"
	"github.com/joblinkhq/joblink/internal/cache"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/models"
)

// SearchService serves the public job listing and detail views. Listings go
// through a read-through cache with a bounded staleness window; the
// visibility predicate (published + validated company) is baked into the
// cached computation, so hidden postings can never be served from a stale
// entry.
type SearchService struct {
	DB    *gorm.DB
	Cache cache.Store
	TTL   time.Duration
}

func NewSearchService(db *gorm.DB, store cache.Store, ttl time.Duration) *SearchService {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &SearchService{DB: db, Cache: store, TTL: ttl}
}

// ListPublished returns the filtered, sorted public listing. Concurrent
// misses on the same key may compute the result twice; last write wins,
// which is harmless because both computed the same data.
func (s *SearchService) ListPublished(ctx context.Context, req *dtos.BrowseJobsRequest) ([]dtos.JobSummary, error) {
	key := cache.ListingKey(req.Search, req.Sort, req.Types)

	if raw, err := s.Cache.Get(ctx, key); err == nil {
		var cached []dtos.JobSummary
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Corrupt entry: fall through and recompute.
	}

	summaries, err := s.queryPublished(ctx, req)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(summaries); err == nil {
		// Cache write failures only cost the next request a recompute.
		_ = s.Cache.Set(ctx, key, raw, s.TTL)
	}
	return summaries, nil
}

func (s *SearchService) queryPublished(ctx context.Context, req *dtos.BrowseJobsRequest) ([]dtos.JobSummary, error) {
	q := s.DB.WithContext(ctx).Model(&models.JobPosting{}).
		Joins("JOIN company_profiles ON company_profiles.id = job_postings.company_profile_id").
		Where("job_postings.status = ?", string(appstatus.JobStatusPublished)).
		Where("company_profiles.is_validated = ?", true).
		Select("job_postings.id, job_postings.title, job_postings.description, " +
			"job_postings.salary_min, job_postings.salary_currency, job_postings.salary_period, " +
			"job_postings.type, job_postings.employment_type, job_postings.location, " +
			"job_postings.created_at, job_postings.published_at, " +
			"company_profiles.company_name AS company_name, company_profiles.website AS website")

	if req.Search != "" {
		term := "%" + strings.ToLower(req.Search) + "%"
		q = q.Where("(LOWER(job_postings.title) LIKE ? OR LOWER(job_postings.description) LIKE ? OR LOWER(company_profiles.company_name) LIKE ?)",
			term, term, term)
	}

	if len(req.Types) > 0 {
		q = q.Where("job_postings.type IN ?", req.Types)
	}

	switch req.Sort {
	case "salary_high_to_low":
		q = q.Order("job_postings.salary_min DESC")
	case "salary_low_to_high":
		q = q.Order("job_postings.salary_min ASC")
	default:
		q = q.Order("job_postings.published_at DESC")
	}

	summaries := []dtos.JobSummary{}
	if err := q.Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetPublished returns one publicly visible posting. Absent, unpublished,
// and unvalidated-company postings all come back as the same not-found
// error. When the viewer is a job seeker with a profile, hasApplied reports
// whether they already applied.
func (s *SearchService) GetPublished(ctx context.Context, id uint, viewer *models.User) (*models.JobPosting, bool, error) {
	var job models.JobPosting
	err := s.DB.WithContext(ctx).Preload("CompanyProfile").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperr.ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}

	if job.Status != string(appstatus.JobStatusPublished) ||
		job.CompanyProfile == nil || !job.CompanyProfile.IsValidated {
		return nil, false, apperr.ErrNotFound
	}

	hasApplied := false
	if viewer != nil && viewer.IsJobSeeker() && viewer.JobSeekerProfile != nil {
		var count int64
		err := s.DB.WithContext(ctx).Model(&models.Application{}).
			Where("job_posting_id = ? AND job_seeker_profile_id = ?", job.ID, viewer.JobSeekerProfile.ID).
			Count(&count).Error
		if err != nil {
			return nil, false, err
		}
		hasApplied = count > 0
	}

	// The public view only needs the company's name and website.
	job.CompanyProfile = &models.CompanyProfile{
		ID:          job.CompanyProfile.ID,
		CompanyName: job.CompanyProfile.CompanyName,
		Website:     job.CompanyProfile.Website,
	}
	return &job, hasApplied, nil
}
