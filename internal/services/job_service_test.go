package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/appstatus"
	"github.com/joblinkhq/joblink/internal/dtos"
	"github.com/joblinkhq/joblink/internal/models"
	"github.com/joblinkhq/joblink/internal/services"
)

func jobRequest(title string, salary int) *dtos.JobPostingRequest {
	return &dtos.JobPostingRequest{
		Title:          title,
		Description:    title + " description",
		Type:           models.WorkTypeRemote,
		EmploymentType: models.EmploymentFullTime,
		SalaryMin:      &salary,
		SalaryCurrency: "EUR",
		SalaryPeriod:   models.SalaryPeriodYearly,
	}
}

func TestJobCreate_StartsAsDraft(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	// Validation never gates creation, only public visibility.
	company := seedCompany(t, db, "Acme", false)

	job, err := svc.Create(context.Background(), company, jobRequest("Backend Engineer", 60000))
	require.NoError(t, err)
	assert.Equal(t, string(appstatus.JobStatusDraft), job.Status)
	assert.Nil(t, job.PublishedAt)
	assert.Equal(t, company.CompanyProfile.ID, job.CompanyProfileID)
}

func TestJobCreate_SeekerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	seeker := seedSeeker(t, db, "Seeker", true)
	_, err := svc.Create(context.Background(), seeker, jobRequest("Nope", 1))
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestJobPublish_SetsStatusAndTimestamp(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	// An unvalidated company can publish; the posting just stays publicly
	// invisible until the admin validates.
	company := seedCompany(t, db, "Acme", false)
	job := seedJob(t, db, company, jobSpec{title: "Role", salary: 1, status: appstatus.JobStatusDraft})

	published, err := svc.Publish(context.Background(), company, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(appstatus.JobStatusPublished), published.Status)
	require.NotNil(t, published.PublishedAt)
}

func TestJobUpdate_OwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	owner := seedCompany(t, db, "Acme", true)
	intruder := seedCompany(t, db, "Globex", true)
	job := seedJob(t, db, owner, jobSpec{title: "Old Title", salary: 1, status: appstatus.JobStatusDraft})

	_, err := svc.Update(context.Background(), intruder, job.ID, jobRequest("Hijacked", 1))
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := svc.Update(context.Background(), owner, job.ID, jobRequest("New Title", 70000))
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 70000, updated.SalaryMin)
}

func TestJobDelete_CascadesApplications(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	company := seedCompany(t, db, "Acme", true)
	job := seedJob(t, db, company, jobSpec{title: "Role", salary: 1, status: appstatus.JobStatusPublished})
	seeker := seedSeeker(t, db, "Seeker", true)
	seedApplication(t, db, seeker, job, appstatus.StatusSubmitted)

	require.NoError(t, svc.Delete(context.Background(), company, job.ID))

	var jobs, apps int64
	db.Model(&models.JobPosting{}).Where("id = ?", job.ID).Count(&jobs)
	db.Model(&models.Application{}).Where("job_posting_id = ?", job.ID).Count(&apps)
	assert.Zero(t, jobs)
	assert.Zero(t, apps)
}

func TestJobDelete_NonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	owner := seedCompany(t, db, "Acme", true)
	intruder := seedCompany(t, db, "Globex", true)
	job := seedJob(t, db, owner, jobSpec{title: "Role", salary: 1, status: appstatus.JobStatusDraft})

	assert.ErrorIs(t, svc.Delete(context.Background(), intruder, job.ID), apperr.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), owner, 99999), apperr.ErrNotFound)
}

func TestJobList_OwnPostingsWithCounts(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	company := seedCompany(t, db, "Acme", true)
	other := seedCompany(t, db, "Globex", true)
	job := seedJob(t, db, company, jobSpec{title: "Popular Role", salary: 1, status: appstatus.JobStatusPublished})
	seedJob(t, db, other, jobSpec{title: "Foreign Role", salary: 1, status: appstatus.JobStatusPublished})

	for i := 0; i < 2; i++ {
		seeker := seedSeeker(t, db, "Applicant", true)
		seedApplication(t, db, seeker, job, appstatus.StatusSubmitted)
	}

	rows, err := svc.List(context.Background(), company)
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the company's own postings appear")
	assert.Equal(t, job.ID, rows[0].ID)
	assert.EqualValues(t, 2, rows[0].ApplicationCount)
}

func TestListApplicants(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	company := seedCompany(t, db, "Acme", true)
	intruder := seedCompany(t, db, "Globex", true)
	job := seedJob(t, db, company, jobSpec{title: "Role", salary: 1, status: appstatus.JobStatusPublished})
	seeker := seedSeeker(t, db, "Seeker", true)
	seedApplication(t, db, seeker, job, appstatus.StatusSubmitted)

	_, apps, err := svc.ListApplicants(context.Background(), company, job.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].JobSeekerProfile)
	assert.Equal(t, seeker.JobSeekerProfile.ID, apps[0].JobSeekerProfile.ID)

	_, _, err = svc.ListApplicants(context.Background(), intruder, job.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
