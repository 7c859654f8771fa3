package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"gigflow_backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type WebSocketHandler struct {
	Manager *WebSocketManager
}

func NewWebSocketHandler(manager *WebSocketManager) *WebSocketHandler {
	return &WebSocketHandler{
		Manager: manager,
	}
}

// ServeWS upgrades the connection for an authenticated user. The auth
// middleware must have stored userID in the Gin context.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade error", "error", err.Error())
		return
	}

	client := &Client{
		UserID:  userID,
		Conn:    conn,
		Send:    make(chan any, 256),
		Manager: h.Manager,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()
}
