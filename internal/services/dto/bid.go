package dto

import (
	"time"

	"gigflow_backend/internal/models"
)

// ---------------- Requests ----------------

type PlaceBidRequest struct {
	GigID   string  `json:"gig_id" binding:"required,uuid" validate:"required,uuid"`
	Amount  float64 `json:"amount" binding:"required,gt=0" validate:"required,gt=0"`
	Message string  `json:"message" binding:"omitempty,max=2000" validate:"omitempty,max=2000"`
}

// ---------------- Responses ----------------

type BidResponse struct {
	ID             string           `json:"id"`
	GigID          string           `json:"gig_id"`
	FreelancerID   string           `json:"freelancer_id"`
	FreelancerName string           `json:"freelancer_name,omitempty"`
	Amount         float64          `json:"amount"`
	Message        string           `json:"message"`
	Status         models.BidStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`

	// Gig is populated on the freelancer's own-bids listing.
	Gig *GigResponse `json:"gig,omitempty"`
}

// HireResponse reports the outcome of hiring a freelancer: the updated
// gig, the winning bid and how many competing bids were rejected.
type HireResponse struct {
	Gig          *GigResponse `json:"gig"`
	HiredBid     *BidResponse `json:"hired_bid"`
	RejectedBids int64        `json:"rejected_bids"`
}
