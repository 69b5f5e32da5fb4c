package policy_test

import (
	"testing"

	"github.com/joblinkhq/joblink/internal/models"
	"github.com/joblinkhq/joblink/internal/policy"
)

func companyUser(profileID uint) *models.User {
	return &models.User{
		ID:             1,
		Role:           models.RoleCompany,
		CompanyProfile: &models.CompanyProfile{ID: profileID},
	}
}

func applicationFor(companyProfileID uint) *models.Application {
	return &models.Application{
		ID:         7,
		JobPosting: &models.JobPosting{ID: 3, CompanyProfileID: companyProfileID},
	}
}

func TestCanViewApplication_OwningCompany(t *testing.T) {
	if !policy.CanViewApplication(companyUser(42), applicationFor(42)) {
		t.Error("owning company should be allowed to view its application")
	}
}

func TestCanViewApplication_OtherCompany(t *testing.T) {
	if policy.CanViewApplication(companyUser(42), applicationFor(99)) {
		t.Error("a company must not view another company's applications")
	}
}

func TestCanViewApplication_JobSeeker(t *testing.T) {
	seeker := &models.User{ID: 2, Role: models.RoleJobSeeker}
	if policy.CanViewApplication(seeker, applicationFor(42)) {
		t.Error("job seekers must not pass the company application policy")
	}
}

func TestCanViewApplication_MissingData(t *testing.T) {
	if policy.CanViewApplication(nil, applicationFor(1)) {
		t.Error("nil user must be denied")
	}
	if policy.CanViewApplication(companyUser(1), nil) {
		t.Error("nil application must be denied")
	}
	if policy.CanViewApplication(companyUser(1), &models.Application{}) {
		t.Error("application without a loaded posting must be denied")
	}
	noProfile := &models.User{ID: 1, Role: models.RoleCompany}
	if policy.CanViewApplication(noProfile, applicationFor(1)) {
		t.Error("company without a profile must be denied")
	}
}

func TestCanUpdateApplication_MatchesView(t *testing.T) {
	if !policy.CanUpdateApplication(companyUser(5), applicationFor(5)) {
		t.Error("owning company should be allowed to update")
	}
	if policy.CanUpdateApplication(companyUser(5), applicationFor(6)) {
		t.Error("non-owning company must not update")
	}
}

func TestCanManageJobPosting(t *testing.T) {
	job := &models.JobPosting{ID: 1, CompanyProfileID: 10}
	if !policy.CanManageJobPosting(companyUser(10), job) {
		t.Error("owner should manage its posting")
	}
	if policy.CanManageJobPosting(companyUser(11), job) {
		t.Error("non-owner must not manage the posting")
	}
	seeker := &models.User{Role: models.RoleJobSeeker}
	if policy.CanManageJobPosting(seeker, job) {
		t.Error("job seekers must not manage postings")
	}
}

func TestIsAdmin(t *testing.T) {
	if !policy.IsAdmin(&models.User{IsAdmin: true}) {
		t.Error("admin flag should grant admin access")
	}
	if policy.IsAdmin(&models.User{Role: models.RoleCompany}) {
		t.Error("non-admin must be denied")
	}
	if policy.IsAdmin(nil) {
		t.Error("nil user must be denied")
	}
}
