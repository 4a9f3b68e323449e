package websocket

import (
	"log"
	"sync"

	"nexustap/models"

	"github.com/gorilla/websocket"
)

// Client is one connection subscribed to live game events
type Client struct {
	Conn    *websocket.Conn
	Address string
	writeMu sync.Mutex
}

// SafeWriteJSON serializes writes so concurrent broadcasts cannot interleave
// on the same connection
func (c *Client) SafeWriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

var (
	clients   = make(map[*Client]bool)
	clientsMu sync.RWMutex
)

// RegisterClient adds a connection to the broadcast set
func RegisterClient(client *Client) {
	clientsMu.Lock()
	defer clientsMu.Unlock()
	clients[client] = true
	log.Printf("Live events client registered. Total clients: %d", len(clients))
}

// UnregisterClient removes a connection and closes it
func UnregisterClient(client *Client) {
	clientsMu.Lock()
	defer clientsMu.Unlock()
	delete(clients, client)
	client.Conn.Close()
	log.Printf("Live events client unregistered. Total clients: %d", len(clients))
}

// Broadcast sends a live event to every connected client. Write failures are
// logged and drop the client; they never fail the triggering operation.
func Broadcast(event models.LiveEvent) {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	for client := range clients {
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting live event to client: %v", err)
			go UnregisterClient(client)
		}
	}
}

// ClientCount returns the number of connected clients
func ClientCount() int {
	clientsMu.RLock()
	defer clientsMu.RUnlock()
	return len(clients)
}
