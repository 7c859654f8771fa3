package models

type GigStatus string
type BidStatus string
type NotificationType string

const (
	GigStatusOpen     GigStatus = "open"
	GigStatusAssigned GigStatus = "assigned"
	GigStatusClosed   GigStatus = "closed"

	BidStatusPending  BidStatus = "pending"
	BidStatusHired    BidStatus = "hired"
	BidStatusRejected BidStatus = "rejected"

	NotificationTypeNewBid      NotificationType = "new_bid"
	NotificationTypeBidAccepted NotificationType = "bid_accepted"
	NotificationTypeNewGig      NotificationType = "new_gig"
)

// gigTransitions lists the allowed status changes for the generic status
// setter. "assigned" is reachable only through hiring, which runs its own
// conditional update, so no transition here targets it.
var gigTransitions = map[GigStatus][]GigStatus{
	GigStatusOpen:     {GigStatusClosed},
	GigStatusClosed:   {GigStatusOpen},
	GigStatusAssigned: {},
}

// CanTransition reports whether a gig may move from one status to another
// via the generic setter.
func (s GigStatus) CanTransition(to GigStatus) bool {
	for _, allowed := range gigTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Valid reports whether the value is a known gig status.
func (s GigStatus) Valid() bool {
	switch s {
	case GigStatusOpen, GigStatusAssigned, GigStatusClosed:
		return true
	}
	return false
}

// Valid reports whether the value is a known bid status.
func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusPending, BidStatusHired, BidStatusRejected:
		return true
	}
	return false
}

// Valid reports whether the value is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeNewBid, NotificationTypeBidAccepted, NotificationTypeNewGig:
		return true
	}
	return false
}
