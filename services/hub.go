package services

import (
	"encoding/json"
	"log"
	"sync"
)

// Event names pushed over the socket.
const (
	EventOnlineUsers = "getOnlineUsers"
	EventNewMessage  = "newMessage"
)

// Event is the wire envelope for every push.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub owns the live connections and the presence registry, and implements the
// delivery bus: targeted pushes to one connection and broadcasts to all.
type Hub struct {
	presence    *Presence
	mu          sync.RWMutex
	connections map[string]*Client // connectionID -> client
}

func NewHub() *Hub {
	return &Hub{
		presence:    NewPresence(),
		connections: make(map[string]*Client),
	}
}

func (h *Hub) Presence() *Presence {
	return h.presence
}

// Bind adds a new connection. Authenticated connections are registered in the
// presence map; anonymous ones stay connected but undiscoverable. The updated
// online set is broadcast either way.
func (h *Hub) Bind(client *Client) {
	h.mu.Lock()
	h.connections[client.ConnectionID] = client
	h.mu.Unlock()

	h.presence.Register(client.UserID, client.ConnectionID)
	log.Printf("Client connected: user=%q conn=%s", client.UserID, client.ConnectionID)

	h.Broadcast(EventOnlineUsers, h.presence.OnlineUsers())
}

// Unbind removes a connection and its presence entry, then broadcasts the
// updated online set.
func (h *Hub) Unbind(client *Client) {
	h.mu.Lock()
	_, ok := h.connections[client.ConnectionID]
	if ok {
		delete(h.connections, client.ConnectionID)
	}
	h.mu.Unlock()
	if !ok {
		return
	}

	h.presence.Unregister(client.UserID)
	client.CloseSend()
	log.Printf("Client disconnected: user=%q conn=%s", client.UserID, client.ConnectionID)

	h.Broadcast(EventOnlineUsers, h.presence.OnlineUsers())
}

// SendTo pushes an event to a single connection. If the connection is no
// longer live the push is dropped silently; delivery is best effort.
func (h *Hub) SendTo(connectionID, event string, payload interface{}) error {
	raw, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		return err
	}

	h.mu.RLock()
	client, ok := h.connections[connectionID]
	h.mu.RUnlock()
	if !ok {
		return nil
	}

	if !client.TrySend(raw) {
		log.Printf("Dropping event %s for slow connection %s", event, connectionID)
	}
	return nil
}

// Broadcast pushes an event to every live connection.
func (h *Hub) Broadcast(event string, payload interface{}) error {
	raw, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.connections {
		if !client.TrySend(raw) {
			log.Printf("Dropping event %s for slow connection %s", event, client.ConnectionID)
		}
	}
	return nil
}
