package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

func TestCreateGigDefaultsToOpen(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")

	gig, err := env.services.GigService.CreateGig(owner.ID, &dto.CreateGigRequest{
		Title:       "Translate a website",
		Description: "EN to DE, ~20 pages",
		Budget:      250,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusOpen, gig.Status)
	assert.Equal(t, owner.ID, gig.OwnerID)
	assert.Nil(t, gig.HiredBidID)
}

func TestListGigsFiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")

	env.createGig(t, owner.ID, "Open gig")
	closed := env.createGig(t, owner.ID, "Closed gig")
	_, err := env.services.GigService.UpdateStatus(owner.ID, closed.ID, &dto.UpdateGigStatusRequest{
		Status: models.GigStatusClosed,
	})
	require.NoError(t, err)

	list, err := env.services.GigService.ListGigs(repositories.GigCriteria{
		Status:   string(models.GigStatusOpen),
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Gigs, 1)
	assert.Equal(t, "Open gig", list.Gigs[0].Title)

	all, err := env.services.GigService.ListGigs(repositories.GigCriteria{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}

func TestListGigsSearchAndBudgetFilters(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")

	cheap, err := env.services.GigService.CreateGig(owner.ID, &dto.CreateGigRequest{
		Title:  "Translate a website",
		Budget: 100,
	})
	require.NoError(t, err)
	_, err = env.services.GigService.CreateGig(owner.ID, &dto.CreateGigRequest{
		Title:  "Build a website",
		Budget: 900,
	})
	require.NoError(t, err)
	_, err = env.services.GigService.CreateGig(owner.ID, &dto.CreateGigRequest{
		Title:  "Design a logo",
		Budget: 300,
	})
	require.NoError(t, err)

	// Case-insensitive title match.
	list, err := env.services.GigService.ListGigs(repositories.GigCriteria{
		Search:   "WEBSITE",
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)

	list, err = env.services.GigService.ListGigs(repositories.GigCriteria{
		Search:    "website",
		MinBudget: 500,
		Page:      1,
		PageSize:  20,
	})
	require.NoError(t, err)
	require.Len(t, list.Gigs, 1)
	assert.Equal(t, "Build a website", list.Gigs[0].Title)
	assert.NotEqual(t, cheap.ID, list.Gigs[0].ID)
}

func TestUpdateGigOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")
	other := env.createUser(t, "Ivan", "ivan@example.com")
	gig := env.createGig(t, owner.ID, "Initial title")

	newTitle := "Updated title"
	updated, err := env.services.GigService.UpdateGig(owner.ID, gig.ID, &dto.UpdateGigRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, gig.Budget, updated.Budget)

	_, err = env.services.GigService.UpdateGig(other.ID, gig.ID, &dto.UpdateGigRequest{
		Title: &newTitle,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotGigOwner)
}

func TestUpdateGigFrozenOnceAssigned(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gig := env.createGig(t, owner.ID, "Build an API")
	bid := env.placeBid(t, freelancer.ID, gig.ID, 400)

	_, err := env.services.BidService.Hire(owner.ID, bid.ID)
	require.NoError(t, err)

	newTitle := "Too late"
	_, err = env.services.GigService.UpdateGig(owner.ID, gig.ID, &dto.UpdateGigRequest{
		Title: &newTitle,
	})
	assert.ErrorIs(t, err, apperrors.ErrGigAlreadyAssigned)
}

func TestUpdateStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")
	gig := env.createGig(t, owner.ID, "Build an API")

	// open -> closed -> open is a legal round trip.
	updated, err := env.services.GigService.UpdateStatus(owner.ID, gig.ID, &dto.UpdateGigStatusRequest{
		Status: models.GigStatusClosed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusClosed, updated.Status)

	updated, err = env.services.GigService.UpdateStatus(owner.ID, gig.ID, &dto.UpdateGigStatusRequest{
		Status: models.GigStatusOpen,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusOpen, updated.Status)

	// Setting the current status again is a no-op, not an error.
	updated, err = env.services.GigService.UpdateStatus(owner.ID, gig.ID, &dto.UpdateGigStatusRequest{
		Status: models.GigStatusOpen,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusOpen, updated.Status)
}

func TestUpdateStatusRejectedAfterHire(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gig := env.createGig(t, owner.ID, "Build an API")
	bid := env.placeBid(t, freelancer.ID, gig.ID, 400)

	_, err := env.services.BidService.Hire(owner.ID, bid.ID)
	require.NoError(t, err)

	_, err = env.services.GigService.UpdateStatus(owner.ID, gig.ID, &dto.UpdateGigStatusRequest{
		Status: models.GigStatusClosed,
	})
	assert.ErrorIs(t, err, apperrors.ErrGigStatusTransition)
}

func TestDeleteGig(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")
	other := env.createUser(t, "Ivan", "ivan@example.com")
	gig := env.createGig(t, owner.ID, "Build an API")

	err := env.services.GigService.DeleteGig(other.ID, gig.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotGigOwner)

	require.NoError(t, env.services.GigService.DeleteGig(owner.ID, gig.ID))

	_, err = env.services.GigService.GetGig(gig.ID)
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

func TestDeleteGigBlockedWhenAssigned(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gig := env.createGig(t, owner.ID, "Build an API")
	bid := env.placeBid(t, freelancer.ID, gig.ID, 400)

	_, err := env.services.BidService.Hire(owner.ID, bid.ID)
	require.NoError(t, err)

	err = env.services.GigService.DeleteGig(owner.ID, gig.ID)
	assert.ErrorIs(t, err, apperrors.ErrGigAlreadyAssigned)
}

func TestGetMyGigs(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olga", "olga@example.com")
	other := env.createUser(t, "Ivan", "ivan@example.com")
	env.createGig(t, owner.ID, "Mine 1")
	env.createGig(t, owner.ID, "Mine 2")
	env.createGig(t, other.ID, "Not mine")

	gigs, err := env.services.GigService.GetMyGigs(owner.ID)
	require.NoError(t, err)
	assert.Len(t, gigs, 2)
}
