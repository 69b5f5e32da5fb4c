package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/models"
)

// ProfileService reads and updates the role-conditioned profile of a user.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// Get returns the profile union for the user's role. Exactly one arm is
// set.
func (s *ProfileService) Get(ctx context.Context, user *models.User) (*models.Profile, error) {
	profile := &models.Profile{}

	switch {
	case user.IsJobSeeker():
		var p models.JobSeekerProfile
		err := s.DB.WithContext(ctx).Where("user_id = ?", user.ID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile, nil
		}
		if err != nil {
			return nil, err
		}
		profile.JobSeeker = &p
	case user.IsCompany():
		var p models.CompanyProfile
		err := s.DB.WithContext(ctx).Where("user_id = ?", user.ID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile, nil
		}
		if err != nil {
			return nil, err
		}
		profile.Company = &p
	}
	return profile, nil
}

// Update applies user fields plus the profile fields matching the user's
// role. Fields for the other profile kind are ignored.
func (s *ProfileService) Update(ctx context.Context, user *models.User, req *dtos.UpdateProfileRequest) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Email != "" {
			user.Email = req.Email
		}
		if err := tx.Model(&models.User{ID: user.ID}).
			Updates(map[string]any{"name": user.Name, "email": user.Email}).Error; err != nil {
			return err
		}

		if user.IsJobSeeker() {
			updates := map[string]any{}
			if req.Headline != nil {
				updates["headline"] = *req.Headline
			}
			if req.Summary != nil {
				updates["summary"] = *req.Summary
			}
			if req.Skills != nil {
				updates["skills"] = *req.Skills
			}
			if req.Experience != nil {
				updates["experience"] = models.ExperienceList(req.Experience)
			}
			if req.Education != nil {
				updates["education"] = models.EducationList(req.Education)
			}
			if len(updates) > 0 {
				return tx.Model(&models.JobSeekerProfile{}).
					Where("user_id = ?", user.ID).Updates(updates).Error
			}
		}

		if user.IsCompany() {
			updates := map[string]any{}
			if req.CompanyName != nil {
				updates["company_name"] = *req.CompanyName
			}
			if req.Website != nil {
				updates["website"] = *req.Website
			}
			if req.Description != nil {
				updates["description"] = *req.Description
			}
			if len(updates) > 0 {
				return tx.Model(&models.CompanyProfile{}).
					Where("user_id = ?", user.ID).Updates(updates).Error
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.ErrEmailTaken
	}
	return err
}
