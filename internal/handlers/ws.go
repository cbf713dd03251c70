package handlers

import (
	"time"

	"educator-site/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const feedWriteTimeout = 10 * time.Second

// deadlineConn bounds every write so a stalled peer frees its writer.
type deadlineConn struct {
	*websocket.Conn
	timeout time.Duration
}

func (c deadlineConn) WriteJSON(v interface{}) error {
	if err := c.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return err
	}
	return c.Conn.WriteJSON(v)
}

// GalleryFeedHandler streams gallery changes to the connected client.
func GalleryFeedHandler(hub *Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		connID := uuid.New().String()
		hub.Register(connID, deadlineConn{Conn: c, timeout: feedWriteTimeout})

		defer func() {
			hub.Unregister(connID)
			c.Close()
		}()

		if err := hub.Send(connID, models.GalleryEvent{
			Event:     "connected",
			Message:   "gallery feed",
			Timestamp: time.Now().UnixMilli(),
		}); err != nil {
			return
		}

		// Clients only listen; reading detects disconnects.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Debugf("ws: %v", err)
				}
				return
			}
		}
	})
}

// WSUpgradeMiddleware upgrades the connection to WebSocket
func WSUpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
