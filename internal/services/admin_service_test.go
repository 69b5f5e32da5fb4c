package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/internal/apperr"
	"github.com/joblinkhq/joblink/internal/services"
)

func TestValidateCompany_OneWayAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAdminService(db)

	company := seedCompany(t, db, "Acme", false)

	validated, err := svc.ValidateCompany(context.Background(), company.CompanyProfile.ID)
	require.NoError(t, err)
	assert.True(t, validated.IsValidated)

	// Second call: no error, still validated.
	validated, err = svc.ValidateCompany(context.Background(), company.CompanyProfile.ID)
	require.NoError(t, err)
	assert.True(t, validated.IsValidated)
}

func TestValidateCompany_UnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAdminService(db)

	_, err := svc.ValidateCompany(context.Background(), 4242)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListCompanies_UnvalidatedFirst(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAdminService(db)

	seedCompany(t, db, "Validated Co", true)
	pending := seedCompany(t, db, "Pending Co", false)

	companies, err := svc.ListCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, pending.CompanyProfile.ID, companies[0].ID,
		"companies awaiting validation sort to the top")
}
