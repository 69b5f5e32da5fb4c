package dtos

import "github.com/joblinkhq/joblink/internal/models"

type RegisterJobSeekerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterCompanyRequest struct {
	CompanyName        string `json:"company_name" binding:"required,max=255"`
	RegistrationNumber string `json:"registration_number" binding:"required,max=255"`
	Website            string `json:"website" binding:"omitempty,url,max=255"`
	Email              string `json:"email" binding:"required,email,max=255"`
	Password           string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// DeleteAccountRequest confirms the current password before the account and
// everything it owns is removed.
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries user fields plus the fields of whichever
// profile kind the caller owns; fields for the other kind are ignored.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Email string `json:"email" binding:"omitempty,email,max=255"`

	// Job seeker profile fields
	Headline   *string                  `json:"headline" binding:"omitempty"`
	Summary    *string                  `json:"summary" binding:"omitempty"`
	Skills     *string                  `json:"skills" binding:"omitempty"`
	Experience []models.ExperienceEntry `json:"experience" binding:"omitempty"`
	Education  []models.EducationEntry  `json:"education" binding:"omitempty"`

	// Company profile fields
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	Website     *string `json:"website" binding:"omitempty,url,max=255"`
	Description *string `json:"description" binding:"omitempty"`
}

type JobPostingRequest struct {
	Title            string `json:"title" binding:"required,max=255"`
	Description      string `json:"description" binding:"required"`
	Responsibilities string `json:"responsibilities" binding:"omitempty"`
	Qualifications   string `json:"qualifications" binding:"omitempty"`

	Type         string `json:"type" binding:"required,oneof=on-site hybrid remote"`
	Location     string `json:"location" binding:"omitempty,max=255"`
	RemotePolicy string `json:"remote_policy" binding:"omitempty,max=255"`

	EmploymentType string `json:"employment_type" binding:"required,oneof=full-time part-time contract internship"`
	StartDate      string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`

	// Minor currency units. Pointer so an explicit zero passes required.
	SalaryMin      *int   `json:"salary_min" binding:"required,min=0"`
	SalaryCurrency string `json:"salary_currency" binding:"required,len=3"`
	SalaryPeriod   string `json:"salary_period" binding:"required,oneof=yearly monthly"`

	ApplicationDeadline        string `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
	InterviewRounds            string `json:"interview_rounds" binding:"omitempty,max=255"`
	ApplicationProcessDuration string `json:"application_process_duration" binding:"omitempty,max=255"`
}

// BrowseJobsRequest is bound from the public listing query string.
type BrowseJobsRequest struct {
	Search string   `form:"search" binding:"omitempty,max=100"`
	Sort   string   `form:"sort" binding:"omitempty,oneof=latest salary_high_to_low salary_low_to_high"`
	Types  []string `form:"types[]" binding:"omitempty,dive,oneof=remote hybrid on-site"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=shortlisted rejected"`
}

type SwitchLanguageRequest struct {
	Locale string `json:"locale" binding:"required,oneof=en es"`
}
