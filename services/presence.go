package services

import "sync"

// Presence tracks which users currently hold a live connection. One entry per
// user id; a second connection for the same user overwrites the first.
type Presence struct {
	mu     sync.RWMutex
	online map[string]string // userID -> connectionID
}

func NewPresence() *Presence {
	return &Presence{online: make(map[string]string)}
}

// Register maps userID to connectionID, replacing any existing mapping.
// An empty userID is ignored: the connection stays open but anonymous.
func (p *Presence) Register(userID, connectionID string) {
	if userID == "" {
		return
	}
	p.mu.Lock()
	p.online[userID] = connectionID
	p.mu.Unlock()
}

// Unregister removes the mapping for userID. Absent entries are a no-op.
func (p *Presence) Unregister(userID string) {
	p.mu.Lock()
	delete(p.online, userID)
	p.mu.Unlock()
}

// Lookup returns the connection id for userID, or false if the user is
// offline or unknown.
func (p *Presence) Lookup(userID string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	connID, ok := p.online[userID]
	return connID, ok
}

// OnlineUsers returns a snapshot of the currently registered user ids.
func (p *Presence) OnlineUsers() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	users := make([]string, 0, len(p.online))
	for userID := range p.online {
		users = append(users, userID)
	}
	return users
}
