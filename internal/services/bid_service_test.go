package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

func TestPlaceBid(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gig := env.createGig(t, owner.ID, "Build a landing page")

	bid, err := env.services.BidService.PlaceBid(freelancer.ID, &dto.PlaceBidRequest{
		GigID:   gig.ID,
		Amount:  300,
		Message: "I can do this in a week",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusPending, bid.Status)
	assert.Equal(t, freelancer.ID, bid.FreelancerID)

	// The owner gets a persisted new_bid notification.
	list, err := env.services.NotificationService.GetUserNotifications(owner.ID, notificationCriteria(1, 20))
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, models.NotificationTypeNewBid, list.Notifications[0].Type)
	assert.Equal(t, gig.ID, list.Notifications[0].Data["gig_id"])

	env.drain()

	// Push and email are best-effort follow-ups.
	events := env.publisher.EventsFor(owner.ID)
	require.Len(t, events, 1)
	assert.Equal(t, EventNotification, events[0].Type)
	assert.Equal(t, []string{"new_bid"}, env.email.Sent())
}

func TestPlaceBidRejectsOwnGig(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	gig := env.createGig(t, owner.ID, "Logo design")

	_, err := env.services.BidService.PlaceBid(owner.ID, &dto.PlaceBidRequest{
		GigID:  gig.ID,
		Amount: 100,
	})
	assert.ErrorIs(t, err, apperrors.ErrOwnGigBid)
}

func TestPlaceBidRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gig := env.createGig(t, owner.ID, "Logo design")

	env.placeBid(t, freelancer.ID, gig.ID, 100)

	_, err := env.services.BidService.PlaceBid(freelancer.ID, &dto.PlaceBidRequest{
		GigID:  gig.ID,
		Amount: 120,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateBid)
}

func TestPlaceBidRequiresOpenGig(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gig := env.createGig(t, owner.ID, "Logo design")

	_, err := env.services.GigService.UpdateStatus(owner.ID, gig.ID, &dto.UpdateGigStatusRequest{
		Status: models.GigStatusClosed,
	})
	require.NoError(t, err)

	_, err = env.services.BidService.PlaceBid(freelancer.ID, &dto.PlaceBidRequest{
		GigID:  gig.ID,
		Amount: 100,
	})
	assert.ErrorIs(t, err, apperrors.ErrGigNotOpen)
}

func TestHire(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	winner := env.createUser(t, "Fred", "fred@example.com")
	loserA := env.createUser(t, "Lena", "lena@example.com")
	loserB := env.createUser(t, "Max", "max@example.com")

	gig := env.createGig(t, owner.ID, "Build an API")
	winningBid := env.placeBid(t, winner.ID, gig.ID, 400)
	env.placeBid(t, loserA.ID, gig.ID, 350)
	env.placeBid(t, loserB.ID, gig.ID, 450)

	response, err := env.services.BidService.Hire(owner.ID, winningBid.ID)
	require.NoError(t, err)

	assert.Equal(t, models.GigStatusAssigned, response.Gig.Status)
	require.NotNil(t, response.Gig.HiredBidID)
	assert.Equal(t, winningBid.ID, *response.Gig.HiredBidID)
	assert.Equal(t, models.BidStatusHired, response.HiredBid.Status)
	assert.Equal(t, int64(2), response.RejectedBids)

	// Every competing bid is rejected in the same transaction.
	var statuses []models.Bid
	require.NoError(t, env.db.Where("gig_id = ?", gig.ID).Find(&statuses).Error)
	for _, b := range statuses {
		if b.ID == winningBid.ID {
			assert.Equal(t, models.BidStatusHired, b.Status)
		} else {
			assert.Equal(t, models.BidStatusRejected, b.Status)
		}
	}

	// The hired notification committed with the transition.
	list, err := env.services.NotificationService.GetUserNotifications(winner.ID, notificationCriteria(1, 20))
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, models.NotificationTypeBidAccepted, list.Notifications[0].Type)
	assert.Equal(t, owner.ID, list.Notifications[0].SenderID)
	assert.Equal(t, winningBid.ID, list.Notifications[0].Data["bid_id"])

	env.drain()

	events := env.publisher.EventsFor(winner.ID)
	require.Len(t, events, 1)
	assert.Equal(t, EventNotification, events[0].Type)
	assert.Contains(t, env.email.Sent(), "bid_accepted")
}

func TestHireOnlyByOwner(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	intruder := env.createUser(t, "Ivan", "ivan@example.com")

	gig := env.createGig(t, owner.ID, "Build an API")
	bid := env.placeBid(t, freelancer.ID, gig.ID, 400)

	_, err := env.services.BidService.Hire(intruder.ID, bid.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotGigOwner)
}

func TestHireTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	first := env.createUser(t, "Fred", "fred@example.com")
	second := env.createUser(t, "Lena", "lena@example.com")

	gig := env.createGig(t, owner.ID, "Build an API")
	firstBid := env.placeBid(t, first.ID, gig.ID, 400)
	secondBid := env.placeBid(t, second.ID, gig.ID, 350)

	_, err := env.services.BidService.Hire(owner.ID, firstBid.ID)
	require.NoError(t, err)

	_, err = env.services.BidService.Hire(owner.ID, secondBid.ID)
	assert.ErrorIs(t, err, apperrors.ErrGigAlreadyAssigned)

	// The losing hire must not move the second bid out of rejected.
	var bid models.Bid
	require.NoError(t, env.db.First(&bid, "id = ?", secondBid.ID).Error)
	assert.Equal(t, models.BidStatusRejected, bid.Status)
}

func TestHireMissingBidIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	intruder := env.createUser(t, "Ivan", "ivan@example.com")

	gig := env.createGig(t, owner.ID, "Build an API")
	bid := env.placeBid(t, freelancer.ID, gig.ID, 400)

	const missingBid = "00000000-0000-0000-0000-000000000000"

	// The bid lookup comes first, so an unknown bid is NotFound for
	// everyone, never Forbidden.
	_, err := env.services.BidService.Hire(intruder.ID, missingBid)
	assert.ErrorIs(t, err, apperrors.ErrBidNotFound)

	_, err = env.services.BidService.Hire(owner.ID, bid.ID)
	require.NoError(t, err)

	// Still NotFound after the gig is assigned, never Conflict.
	_, err = env.services.BidService.Hire(owner.ID, missingBid)
	assert.ErrorIs(t, err, apperrors.ErrBidNotFound)
}

func TestHireSurvivesEmailFailure(t *testing.T) {
	env := newTestEnv(t)
	env.email.fail = true

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")

	gig := env.createGig(t, owner.ID, "Build an API")
	bid := env.placeBid(t, freelancer.ID, gig.ID, 400)

	response, err := env.services.BidService.Hire(owner.ID, bid.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusAssigned, response.Gig.Status)

	env.drain()

	// The state change and the persisted notification survive even
	// though every email errored.
	list, err := env.services.NotificationService.GetUserNotifications(freelancer.ID, notificationCriteria(1, 20))
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 1)
}

func TestHireSurvivesMissingOwnerRecord(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gig := env.createGig(t, owner.ID, "Build an API")
	bid := env.placeBid(t, freelancer.ID, gig.ID, 400)

	// The owner account disappears between bid and hire. The email needs
	// the owner's name, so it is skipped; the hire itself must not care.
	require.NoError(t, env.db.Delete(&models.User{}, "id = ?", owner.ID).Error)

	response, err := env.services.BidService.Hire(owner.ID, bid.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusAssigned, response.Gig.Status)

	env.drain()

	// The push still reaches the freelancer; only the mail is dropped.
	assert.Len(t, env.publisher.EventsFor(freelancer.ID), 1)
	assert.NotContains(t, env.email.Sent(), "bid_accepted")
}

func TestGetGigBidsVisibility(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	fred := env.createUser(t, "Fred", "fred@example.com")
	lena := env.createUser(t, "Lena", "lena@example.com")
	stranger := env.createUser(t, "Ivan", "ivan@example.com")
	gig := env.createGig(t, owner.ID, "Build an API")
	env.placeBid(t, fred.ID, gig.ID, 400)
	env.placeBid(t, lena.ID, gig.ID, 350)

	// The owner sees every bid.
	bids, err := env.services.BidService.GetGigBids(owner.ID, gig.ID)
	require.NoError(t, err)
	assert.Len(t, bids, 2)

	// A bidder sees only their own.
	bids, err = env.services.BidService.GetGigBids(fred.ID, gig.ID)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	assert.Equal(t, "Fred", bids[0].FreelancerName)

	// Everyone else sees nothing.
	bids, err = env.services.BidService.GetGigBids(stranger.ID, gig.ID)
	require.NoError(t, err)
	assert.Empty(t, bids)
}

func TestGetMyBids(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "Olga", "olga@example.com")
	freelancer := env.createUser(t, "Fred", "fred@example.com")
	gigA := env.createGig(t, owner.ID, "Gig A")
	gigB := env.createGig(t, owner.ID, "Gig B")
	env.placeBid(t, freelancer.ID, gigA.ID, 100)
	env.placeBid(t, freelancer.ID, gigB.ID, 200)

	bids, err := env.services.BidService.GetMyBids(freelancer.ID)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	for _, b := range bids {
		require.NotNil(t, b.Gig)
	}
}
