package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/models"
)

// AdminService serves the company-validation surface. Route-level admin
// checks happen in middleware; this service only does the work.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// ListCompanies returns every company profile, unvalidated first so the
// admin sees pending work at the top, then newest first.
func (s *AdminService) ListCompanies(ctx context.Context) ([]models.CompanyProfile, error) {
	companies := []models.CompanyProfile{}
	err := s.DB.WithContext(ctx).
		Order("is_validated ASC").
		Order("created_at DESC").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// ValidateCompany flips is_validated to true. The transition is one-way and
// idempotent: validating an already validated company changes nothing and
// is not an error.
func (s *AdminService) ValidateCompany(ctx context.Context, id uint) (*models.CompanyProfile, error) {
	var company models.CompanyProfile
	err := s.DB.WithContext(ctx).First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !company.IsValidated {
		if err := s.DB.WithContext(ctx).Model(&company).
			Update("is_validated", true).Error; err != nil {
			return nil, err
		}
		company.IsValidated = true
	}
	return &company, nil
}
