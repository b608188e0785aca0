package services

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one live socket connection. UserID is empty for anonymous
// connections.
type Client struct {
	ConnectionID string
	UserID       string

	conn      *websocket.Conn
	send      chan []byte
	lastPong  time.Time
	mu        sync.Mutex
	closeOnce sync.Once
}

func NewClient(connectionID, userID string, conn *websocket.Conn) *Client {
	return &Client{
		ConnectionID: connectionID,
		UserID:       userID,
		conn:         conn,
		send:         make(chan []byte, 256),
		lastPong:     time.Now(),
	}
}

// TrySend queues a payload without blocking. Returns false when the send
// buffer is full or already closed.
func (c *Client) TrySend(payload []byte) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// CloseSend closes the outbound queue exactly once, stopping the write pump.
func (c *Client) CloseSend() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

func (c *Client) touchPong() {
	c.mu.Lock()
	c.lastPong = time.Now()
	c.mu.Unlock()
}

func (c *Client) sincePong() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.lastPong)
}
