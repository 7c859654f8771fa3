package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(manager *WebSocketManager, userID string) *Client {
	return &Client{
		UserID:  userID,
		Send:    make(chan any, 4),
		Manager: manager,
	}
}

func TestPublishToUserReachesEverySession(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	tab := newTestClient(manager, "user-1")
	phone := newTestClient(manager, "user-1")
	manager.register <- tab
	manager.register <- phone

	require.Eventually(t, func() bool {
		return manager.GetClientCount() == 2
	}, time.Second, 10*time.Millisecond)
	assert.True(t, manager.IsUserConnected("user-1"))

	event := Event{Type: "notification", Payload: map[string]string{"id": "n-1"}}
	manager.PublishToUser("user-1", event)

	for _, client := range []*Client{tab, phone} {
		select {
		case got := <-client.Send:
			assert.Equal(t, event, got)
		case <-time.After(time.Second):
			t.Fatal("session did not receive the event")
		}
	}
}

func TestPublishToUserSkipsDisconnected(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	assert.NotPanics(t, func() {
		manager.PublishToUser("nobody", Event{Type: "notification"})
	})
	assert.False(t, manager.IsUserConnected("nobody"))
}

func TestUnregisterClosesSendAndForgetsUser(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	client := newTestClient(manager, "user-1")
	manager.register <- client
	require.Eventually(t, func() bool {
		return manager.IsUserConnected("user-1")
	}, time.Second, 10*time.Millisecond)

	manager.unregister <- client
	require.Eventually(t, func() bool {
		return !manager.IsUserConnected("user-1")
	}, time.Second, 10*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
	assert.Equal(t, 0, manager.GetClientCount())
}

func TestPublishDropsSessionWithFullBuffer(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	client := &Client{
		UserID:  "user-1",
		Send:    make(chan any, 1),
		Manager: manager,
	}
	manager.register <- client
	require.Eventually(t, func() bool {
		return manager.IsUserConnected("user-1")
	}, time.Second, 10*time.Millisecond)

	manager.PublishToUser("user-1", Event{Type: "notification"})
	manager.PublishToUser("user-1", Event{Type: "notification"}) // buffer full

	require.Eventually(t, func() bool {
		return !manager.IsUserConnected("user-1")
	}, time.Second, 10*time.Millisecond)
}
