package dto

import (
	"time"

	"gigflow_backend/internal/models"
)

// ---------------- Responses ----------------

type NotificationResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	SenderID  string                  `json:"sender_id,omitempty"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	RelatedID string                  `json:"related_id,omitempty"`
	Data      map[string]interface{}  `json:"data,omitempty"`
	IsRead    bool                    `json:"is_read"`
	ReadAt    *time.Time              `json:"read_at,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int64                   `json:"total"`
	UnreadCount   int64                   `json:"unread_count"`
	Page          int                     `json:"page"`
	PageSize      int                     `json:"page_size"`
	TotalPages    int                     `json:"total_pages"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
