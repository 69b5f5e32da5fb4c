package services_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/joblinkhq/joblink/internal/appstatus"
	"github.com/joblinkhq/joblink/internal/database"
	"github.com/joblinkhq/joblink/internal/models"
)

// newTestDB creates a temporary sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test db")
	require.NoError(t, database.Migrate(db), "failed to migrate test db")
	return db
}

var seedCounter int

func nextEmail(prefix string) string {
	seedCounter++
	return fmt.Sprintf("%s%d@example.com", prefix, seedCounter)
}

// seedCompany creates a company user with its profile loaded, validated or
// not.
func seedCompany(t *testing.T, db *gorm.DB, name string, validated bool) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        nextEmail("company"),
		PasswordHash: "x",
		Role:         models.RoleCompany,
	}
	require.NoError(t, db.Create(user).Error)

	seedCounter++
	profile := &models.CompanyProfile{
		UserID:             user.ID,
		CompanyName:        name,
		RegistrationNumber: fmt.Sprintf("REG-%d", seedCounter),
		IsValidated:        validated,
	}
	require.NoError(t, db.Create(profile).Error)

	user.CompanyProfile = profile
	return user
}

// seedSeeker creates a job seeker user, optionally with a profile.
func seedSeeker(t *testing.T, db *gorm.DB, name string, withProfile bool) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        nextEmail("seeker"),
		PasswordHash: "x",
		Role:         models.RoleJobSeeker,
	}
	require.NoError(t, db.Create(user).Error)

	if withProfile {
		profile := &models.JobSeekerProfile{UserID: user.ID}
		require.NoError(t, db.Create(profile).Error)
		user.JobSeekerProfile = profile
	}
	return user
}

type jobSpec struct {
	title    string
	salary   int
	status   appstatus.JobStatus
	workType string
}

// seedJob creates a posting for the company; published postings get a
// PublishedAt slightly in the past, monotonically increasing per call.
func seedJob(t *testing.T, db *gorm.DB, company *models.User, spec jobSpec) *models.JobPosting {
	t.Helper()

	if spec.workType == "" {
		spec.workType = models.WorkTypeOnSite
	}
	job := &models.JobPosting{
		CompanyProfileID: company.CompanyProfile.ID,
		Title:            spec.title,
		Description:      spec.title + " description",
		Type:             spec.workType,
		EmploymentType:   models.EmploymentFullTime,
		SalaryMin:        spec.salary,
		SalaryCurrency:   "EUR",
		SalaryPeriod:     models.SalaryPeriodYearly,
		Status:           string(spec.status),
	}
	if spec.status == appstatus.JobStatusPublished {
		seedCounter++
		at := time.Now().Add(-time.Hour + time.Duration(seedCounter)*time.Second)
		job.PublishedAt = &at
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// seedApplication applies a seeker to a job directly at the data layer.
func seedApplication(t *testing.T, db *gorm.DB, seeker *models.User, job *models.JobPosting, status appstatus.Status) *models.Application {
	t.Helper()

	app := &models.Application{
		JobPostingID:       job.ID,
		JobSeekerProfileID: seeker.JobSeekerProfile.ID,
		Status:             string(status),
	}
	require.NoError(t, db.Create(app).Error)
	return app
}
