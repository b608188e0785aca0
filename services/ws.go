package services

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pingInterval = 10 * time.Second
	pongTimeout  = 15 * time.Second
	writeWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the request and binds the connection to the hub.
// The client identifies itself with the userId query parameter; an empty or
// missing value means the connection is anonymous and not tracked in presence.
func HandleWebSocket(hub *Hub) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}

		client := NewClient(uuid.New().String(), ctx.Query("userId"), conn)
		hub.Bind(client)

		go readMessages(hub, client)
		go writeMessages(client)
		go heartbeat(hub, client)
	}
}

func readMessages(hub *Hub, client *Client) {
	defer func() {
		hub.Unbind(client)
		client.conn.Close()
	}()
	for {
		_, msg, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
		if string(msg) == "pong" {
			client.touchPong()
		}
		// Clients do not send chat traffic over the socket; messages go
		// through the HTTP send endpoint. Anything else is ignored.
	}
}

func writeMessages(client *Client) {
	for msg := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("Write failed for connection %s: %v", client.ConnectionID, err)
			return
		}
	}
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func heartbeat(hub *Hub, client *Client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !client.TrySend([]byte("ping")) {
			return
		}
		if client.sincePong() > pongTimeout {
			log.Printf("Client timeout, closing connection %s", client.ConnectionID)
			hub.Unbind(client)
			client.conn.Close()
			return
		}
	}
}
