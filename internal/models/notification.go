package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is append-only except for the read flag. Records are
// created by domain events (bid placed, bid accepted), never directly
// by the end user.
type Notification struct {
	BaseModel
	UserID    string           `gorm:"type:uuid;not null;index" json:"user_id"`
	SenderID  string           `gorm:"type:uuid" json:"sender_id,omitempty"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `json:"message"`
	RelatedID string           `gorm:"type:uuid" json:"related_id,omitempty"`
	Data      datatypes.JSON   `gorm:"type:jsonb" json:"data,omitempty"` // {"gig_id": "...", "bid_id": "..."}
	IsRead    bool             `gorm:"default:false" json:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
}
