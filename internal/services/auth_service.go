package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/models"
)

// AuthService handles registration, login and account deletion.
type AuthService struct {
	DB       *gorm.DB
	Sessions auth.SessionStore
}

func NewAuthService(db *gorm.DB, sessions auth.SessionStore) *AuthService {
	return &AuthService{DB: db, Sessions: sessions}
}

// RegisterJobSeeker creates a user and an empty job seeker profile in one
// transaction: either both rows exist afterwards or neither does.
func (s *AuthService) RegisterJobSeeker(ctx context.Context, req *dtos.RegisterJobSeekerRequest) (*models.User, string, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleJobSeeker,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.JobSeekerProfile{UserID: user.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, "", apperr.ErrEmailTaken
	}
	if err != nil {
		return nil, "", err
	}

	token, err := s.Sessions.Create(ctx, auth.Session{UserID: user.ID})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// RegisterCompany creates a user and its company profile atomically. The
// profile starts unvalidated; an admin has to validate it before the
// company's postings become publicly visible.
func (s *AuthService) RegisterCompany(ctx context.Context, req *dtos.RegisterCompanyRequest) (*models.User, string, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         req.CompanyName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleCompany,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CompanyProfile{}).
			Where("registration_number = ?", req.RegistrationNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.ErrRegistrationTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.CompanyProfile{
			UserID:             user.ID,
			CompanyName:        req.CompanyName,
			RegistrationNumber: req.RegistrationNumber,
			Website:            req.Website,
		}).Error
	})
	if errors.Is(err, apperr.ErrRegistrationTaken) {
		return nil, "", apperr.ErrRegistrationTaken
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, "", apperr.ErrEmailTaken
	}
	if err != nil {
		return nil, "", err
	}

	token, err := s.Sessions.Create(ctx, auth.Session{UserID: user.ID})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and opens a session. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Preload("JobSeekerProfile").Preload("CompanyProfile").
		Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", apperr.ErrInvalidCredentials
	}

	token, err := s.Sessions.Create(ctx, auth.Session{UserID: user.ID})
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Logout discards the session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}

// DeleteAccount removes the user after confirming the password. The owned
// profile, its postings and their applications go with it in one
// transaction.
func (s *AuthService) DeleteAccount(ctx context.Context, user *models.User, password, token string) error {
	if !auth.CheckPassword(user.PasswordHash, password) {
		return apperr.NewValidation("password", "password does not match")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if user.IsJobSeeker() {
			var profile models.JobSeekerProfile
			err := tx.Where("user_id = ?", user.ID).First(&profile).Error
			if err == nil {
				if err := tx.Where("job_seeker_profile_id = ?", profile.ID).
					Delete(&models.Application{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&profile).Error; err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if user.IsCompany() {
			var profile models.CompanyProfile
			err := tx.Where("user_id = ?", user.ID).First(&profile).Error
			if err == nil {
				var jobIDs []uint
				if err := tx.Model(&models.JobPosting{}).
					Where("company_profile_id = ?", profile.ID).
					Pluck("id", &jobIDs).Error; err != nil {
					return err
				}
				if len(jobIDs) > 0 {
					if err := tx.Where("job_posting_id IN ?", jobIDs).
						Delete(&models.Application{}).Error; err != nil {
						return err
					}
					if err := tx.Delete(&models.JobPosting{}, jobIDs).Error; err != nil {
						return err
					}
				}
				if err := tx.Delete(&profile).Error; err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		return err
	}

	if token != "" {
		return s.Sessions.Delete(ctx, token)
	}
	return nil
}
