package services

import "gigflow_backend/ws"

// RealtimePublisher pushes events to a user's live connections.
// Implemented by ws.WebSocketManager; delivery is best effort.
type RealtimePublisher interface {
	PublishToUser(userID string, event ws.Event)
}

// Realtime event types.
const (
	EventNotification = "notification"
)
