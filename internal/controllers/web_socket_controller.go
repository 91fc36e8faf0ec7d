package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	logrus "github.com/sirupsen/logrus"

	"fuelogistics/internal/middleware"
	"fuelogistics/internal/ws"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all for development (restrict in production!)
	},
}

// WebSocketController upgrades dashboard clients and ties their lifecycle to
// the hub. Clients never send application messages; the read loop exists only
// to detect the close.
type WebSocketController struct {
	hub *ws.Hub
}

func NewWebSocketController(hub *ws.Hub) *WebSocketController {
	return &WebSocketController{hub: hub}
}

// HandleConnection is the Gin handler for GET /ws. Browsers cannot set an
// Authorization header on the upgrade request, so the token rides in a query
// parameter.
func (wc *WebSocketController) HandleConnection(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		logrus.Warn("WebSocket connection attempt: missing token query parameter.")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	claims, err := middleware.ValidateToken(tokenString)
	if err != nil {
		logrus.WithError(err).Warn("WebSocket connection attempt with invalid token.")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection.")
		return
	}
	defer conn.Close()

	logrus.WithFields(logrus.Fields{
		"user_id":  claims.UserID,
		"username": claims.Username,
	}).Info("WebSocket connection established.")

	wc.hub.Register(conn)
	defer wc.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("user_id", claims.UserID).Info("WebSocket closed by client.")
			} else {
				logrus.WithError(err).WithField("user_id", claims.UserID).Warn("WebSocket read error.")
			}
			break
		}
		// Inbound messages are ignored; the channel is push-only.
	}
}
