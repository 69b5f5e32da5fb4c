package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User roles. A user owns exactly one profile kind, selected by Role.
const (
	RoleJobSeeker = "job_seeker"
	RoleCompany   = "company"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	JobSeekerProfile *JobSeekerProfile `gorm:"constraint:OnDelete:CASCADE" json:"job_seeker_profile,omitempty"`
	CompanyProfile   *CompanyProfile   `gorm:"constraint:OnDelete:CASCADE" json:"company_profile,omitempty"`
}

func (u *User) IsJobSeeker() bool { return u.Role == RoleJobSeeker }
func (u *User) IsCompany() bool   { return u.Role == RoleCompany }

// Profile is the role-conditioned union of the two profile kinds. Exactly
// one arm is non-nil, selected by the owning user's role.
type Profile struct {
	JobSeeker *JobSeekerProfile `json:"job_seeker,omitempty"`
	Company   *CompanyProfile   `json:"company,omitempty"`
}

type CompanyProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID             uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName        string `gorm:"not null" json:"company_name"`
	Website            string `json:"website"`
	RegistrationNumber string `gorm:"uniqueIndex" json:"registration_number"`
	Description        string `gorm:"type:text" json:"description"`
	IsValidated        bool   `gorm:"default:false" json:"is_validated"`

	// 'omitempty' prevents infinite loops when serializing Company -> Jobs -> Company -> ...
	JobPostings []JobPosting `gorm:"constraint:OnDelete:CASCADE" json:"job_postings,omitempty"`
}

type JobSeekerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Headline string `json:"headline"`
	Summary  string `gorm:"type:text" json:"summary"`
	Skills   string `gorm:"type:text" json:"skills"`

	Experience ExperienceList `gorm:"type:text" json:"experience"`
	Education  EducationList  `gorm:"type:text" json:"education"`

	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ExperienceList and EducationList persist as JSON text columns so the
// entry order survives round trips on both postgres and sqlite.
type ExperienceList []ExperienceEntry

func (l ExperienceList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ExperienceList) Scan(src any) error {
	return scanJSON(src, l)
}

type EducationList []EducationEntry

func (l EducationList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *EducationList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON list", src)
	}
}

// Work type and employment type enums for job postings.
const (
	WorkTypeOnSite = "on-site"
	WorkTypeHybrid = "hybrid"
	WorkTypeRemote = "remote"

	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"

	SalaryPeriodMonthly = "monthly"
	SalaryPeriodYearly  = "yearly"
)

type JobPosting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyProfileID uint            `gorm:"not null;index" json:"company_profile_id"`
	CompanyProfile   *CompanyProfile `json:"company_profile,omitempty"`

	Title            string `gorm:"not null" json:"title"`
	Description      string `gorm:"type:text;not null" json:"description"`
	Responsibilities string `gorm:"type:text" json:"responsibilities"`
	Qualifications   string `gorm:"type:text" json:"qualifications"`

	Type         string `gorm:"not null;default:'on-site'" json:"type"`
	Location     string `json:"location"`
	RemotePolicy string `json:"remote_policy"`

	EmploymentType string     `gorm:"not null;default:'full-time'" json:"employment_type"`
	StartDate      *time.Time `json:"start_date"`

	// SalaryMin is stored in minor currency units (cents) to avoid float error.
	SalaryMin      int    `gorm:"not null" json:"salary_min"`
	SalaryCurrency string `gorm:"not null;default:'EUR'" json:"salary_currency"`
	SalaryPeriod   string `gorm:"not null;default:'yearly'" json:"salary_period"`

	ApplicationDeadline        *time.Time `json:"application_deadline"`
	InterviewRounds            string     `json:"interview_rounds"`
	ApplicationProcessDuration string     `json:"application_process_duration"`

	Status      string     `gorm:"not null;default:'draft'" json:"status"`
	PublishedAt *time.Time `json:"published_at"`

	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// The composite unique index makes duplicate applies fail at the data
	// layer, which keeps concurrent duplicate submissions race-safe.
	JobPostingID       uint        `gorm:"not null;uniqueIndex:idx_application_job_seeker" json:"job_posting_id"`
	JobPosting         *JobPosting `json:"job_posting,omitempty"`
	JobSeekerProfileID uint        `gorm:"not null;uniqueIndex:idx_application_job_seeker" json:"job_seeker_profile_id"`
	JobSeekerProfile   *JobSeekerProfile `json:"job_seeker_profile,omitempty"`

	Status string `gorm:"not null;default:'submitted'" json:"status"`
}
