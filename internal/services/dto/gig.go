package dto

import (
	"time"

	"gigflow_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateGigRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200" validate:"required,min=3,max=200"`
	Description string  `json:"description" binding:"omitempty,max=5000" validate:"omitempty,max=5000"`
	Budget      float64 `json:"budget" binding:"required,gt=0" validate:"required,gt=0"`
}

type UpdateGigRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=3,max=200" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=5000" validate:"omitempty,max=5000"`
	Budget      *float64 `json:"budget,omitempty" binding:"omitempty,gt=0" validate:"omitempty,gt=0"`
}

// UpdateGigStatusRequest covers the generic status setter. Hiring is a
// separate endpoint; "assigned" is rejected here.
type UpdateGigStatusRequest struct {
	Status models.GigStatus `json:"status" binding:"required,oneof=open closed" validate:"required,is-gig-status,oneof=open closed"`
}

// ---------------- Responses ----------------

type GigResponse struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Budget      float64          `json:"budget"`
	Status      models.GigStatus `json:"status"`
	HiredBidID  *string          `json:"hired_bid_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type GigListResponse struct {
	Gigs       []*GigResponse `json:"gigs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
