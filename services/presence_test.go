package services

import "testing"

// TestPresenceRegisterLookup verifies the basic register/lookup cycle.
func TestPresenceRegisterLookup(t *testing.T) {
	p := NewPresence()

	p.Register("u1", "conn-1")
	connID, ok := p.Lookup("u1")
	if !ok {
		t.Fatal("expected u1 to be online")
	}
	if connID != "conn-1" {
		t.Errorf("Lookup(u1) = %q, want conn-1", connID)
	}
}

// TestPresenceLastWriterWins verifies that a second registration for the same
// user replaces the first connection id.
func TestPresenceLastWriterWins(t *testing.T) {
	p := NewPresence()

	p.Register("u1", "conn-1")
	p.Register("u1", "conn-2")

	connID, ok := p.Lookup("u1")
	if !ok || connID != "conn-2" {
		t.Errorf("Lookup(u1) = %q, %v, want conn-2, true", connID, ok)
	}

	p.Unregister("u1")
	if _, ok := p.Lookup("u1"); ok {
		t.Error("expected u1 to be offline after Unregister")
	}
}

// TestPresenceEmptyUserIgnored verifies that anonymous identities are never
// tracked.
func TestPresenceEmptyUserIgnored(t *testing.T) {
	p := NewPresence()

	p.Register("", "conn-1")
	if _, ok := p.Lookup(""); ok {
		t.Error("empty user id must not be registered")
	}
	if got := len(p.OnlineUsers()); got != 0 {
		t.Errorf("OnlineUsers() has %d entries, want 0", got)
	}
}

// TestPresenceUnregisterAbsent verifies that removing an unknown user is a
// no-op.
func TestPresenceUnregisterAbsent(t *testing.T) {
	p := NewPresence()
	p.Unregister("ghost")

	if _, ok := p.Lookup("ghost"); ok {
		t.Error("ghost should not be online")
	}
}

// TestPresenceOnlineUsersSnapshot verifies that OnlineUsers reflects exactly
// the currently registered set.
func TestPresenceOnlineUsersSnapshot(t *testing.T) {
	p := NewPresence()
	p.Register("u1", "c1")
	p.Register("u2", "c2")

	users := p.OnlineUsers()
	if len(users) != 2 {
		t.Fatalf("OnlineUsers() has %d entries, want 2", len(users))
	}
	seen := map[string]bool{}
	for _, u := range users {
		seen[u] = true
	}
	if !seen["u1"] || !seen["u2"] {
		t.Errorf("OnlineUsers() = %v, want u1 and u2", users)
	}

	p.Unregister("u2")
	users = p.OnlineUsers()
	if len(users) != 1 || users[0] != "u1" {
		t.Errorf("OnlineUsers() = %v after unregister, want [u1]", users)
	}
}
