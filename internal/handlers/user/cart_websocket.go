package user

import (
	"log"
	"net/http"

	"campuseats_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; tighten in production.
		return true
	},
}

// Websocket handles live cart synchronisation: every mutation published by
// the store is pushed to connected clients of the same user.
func (h *CartHandler) Websocket(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Connection id distinguishes a user's tabs in the logs.
	connID := uuid.NewString()
	log.Printf("🔌 Cart websocket connected (conn %s)", connID)
	defer log.Printf("🔌 Cart websocket closed (conn %s)", connID)

	ctx := c.Request.Context()

	pubsub := database.Redis.Subscribe(ctx, h.Store.Channel(userID))
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Cart synchronisation enabled",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			userCart := h.Store.Load(ctx, userID)
			response := cartResponse(userCart)
			response["type"] = "cart_updated"

			if err := conn.WriteJSON(response); err != nil {
				log.Printf("⚠️ WebSocket write failed: %v", err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
