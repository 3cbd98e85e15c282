package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var push = make(chan *models.Notification, 64)

// Push hands a stored notification to the hub for live delivery. Delivery
// is best effort: if the hub buffer is full or the hub is not running, the
// notification is still in the database and shows up on the next fetch.
func Push(n *models.Notification) {
	select {
	case push <- n:
	default:
		log.Printf("notification push buffer full, dropping live delivery for user %s", n.UserID)
	}
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case n := <-push:
			clientsMu.RLock()
			conn, ok := clients[n.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(n); err != nil {
				log.Printf("Error sending notification to client %s: %v", n.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, n.UserID)
				clientsMu.Unlock()
			}
		}
	}
}
