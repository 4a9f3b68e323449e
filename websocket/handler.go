package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebsocketHandler upgrades the connection and subscribes it to live game
// events. The wallet address is an optional query parameter used only to
// tag the connection; the feed itself is public, like the leaderboard.
func WebsocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		Conn:    conn,
		Address: c.Query("address"),
	}
	RegisterClient(client)
	defer UnregisterClient(client)

	welcome := map[string]interface{}{
		"type":    "connected",
		"message": "Connected to live game events",
	}
	client.SafeWriteJSON(welcome)

	// Keep the connection alive; clients only ping
	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Live events WebSocket error: %v", err)
			}
			break
		}
		if messageType == websocket.PingMessage {
			if err := conn.WriteMessage(websocket.PongMessage, nil); err != nil {
				log.Printf("Error writing pong: %v", err)
				break
			}
		}
	}
}
