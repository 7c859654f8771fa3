package ws

import (
	"github.com/gorilla/websocket"

	"gigflow_backend/internal/logger"
)

type Client struct {
	UserID  string
	Conn    *websocket.Conn
	Send    chan any
	Manager *WebSocketManager
}

// readPump drains the connection so pings and close frames are handled.
// The notification stream is one-way; incoming payloads are discarded.
func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("ws read error", "user_id", c.UserID, "error", err.Error())
			}
			break
		}
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Debug("ws write error", "user_id", c.UserID, "error", err.Error())
			break
		}
	}
	c.Conn.Close()
}
