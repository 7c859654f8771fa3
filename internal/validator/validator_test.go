package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/services/dto"
)

func TestValidateBidRequest(t *testing.T) {
	v := New()

	// An empty request must fail on gig_id and amount.
	err := v.Validate(&dto.PlaceBidRequest{})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "gig_id")
	assert.Contains(t, vErr.Errors, "amount")

	err = v.Validate(&dto.PlaceBidRequest{
		GigID:  "not-a-uuid",
		Amount: 100,
	})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Equal(t, "Must be a valid UUID", vErr.Errors["gig_id"])

	assert.NoError(t, v.Validate(&dto.PlaceBidRequest{
		GigID:  "66e7a4b2-9e6b-4f30-b2a5-3c7f1d5c2f31",
		Amount: 100,
	}))
}

func TestValidateGigStatusRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.UpdateGigStatusRequest{Status: "bogus"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")

	// "assigned" is a real status but not one this setter accepts.
	assert.Error(t, v.Validate(&dto.UpdateGigStatusRequest{Status: models.GigStatusAssigned}))

	assert.NoError(t, v.Validate(&dto.UpdateGigStatusRequest{Status: models.GigStatusClosed}))
	assert.Error(t, v.Validate(&dto.UpdateGigStatusRequest{}))
}

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "name")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Contains(t, vErr.Errors, "password")

	assert.NoError(t, v.Validate(&dto.RegisterRequest{
		Name:     "Olga",
		Email:    "olga@example.com",
		Password: "supersecret",
	}))
}
