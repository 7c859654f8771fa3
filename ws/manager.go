package ws

import (
	"sync"

	"gigflow_backend/internal/logger"
)

// Event is the envelope pushed to connected clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// WebSocketManager tracks connected clients keyed by user ID. A user may
// hold several sessions (tabs, devices) at the same time.
type WebSocketManager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			if manager.clients[client.UserID] == nil {
				manager.clients[client.UserID] = make(map[*Client]struct{})
			}
			manager.clients[client.UserID][client] = struct{}{}
			manager.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID)

		case client := <-manager.unregister:
			manager.mu.Lock()
			if sessions, ok := manager.clients[client.UserID]; ok {
				if _, ok := sessions[client]; ok {
					close(client.Send)
					delete(sessions, client)
					if len(sessions) == 0 {
						delete(manager.clients, client.UserID)
					}
				}
			}
			manager.mu.Unlock()
			logger.Debug("ws client unregistered", "user_id", client.UserID)
		}
	}
}

// PublishToUser delivers the event to every session of the user. Users
// without a connection are skipped silently; delivery is best effort.
func (manager *WebSocketManager) PublishToUser(userID string, event Event) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	for client := range manager.clients[userID] {
		select {
		case client.Send <- event:
		default:
			// Send buffer full, drop the session.
			go func(c *Client) {
				manager.unregister <- c
			}(client)
			logger.Warn("ws client dropped, send buffer full", "user_id", userID)
		}
	}
}

// IsUserConnected reports whether the user has at least one session.
func (manager *WebSocketManager) IsUserConnected(userID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	sessions, ok := manager.clients[userID]
	return ok && len(sessions) > 0
}

// GetClientCount returns the number of open sessions.
func (manager *WebSocketManager) GetClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	count := 0
	for _, sessions := range manager.clients {
		count += len(sessions)
	}
	return count
}
