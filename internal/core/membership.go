package core

import "sync"

// Membership tracks which usernames are currently present in each room.
// Member lists keep insertion order for display; semantically they are
// sets, a username appears at most once per room.
type Membership struct {
	mu      sync.Mutex
	members map[string][]string
}

// NewMembership creates an empty membership tracker.
func NewMembership() *Membership {
	return &Membership{members: make(map[string][]string)}
}

// Join adds username to the room's member set and reports whether it was
// already present. Unknown rooms get an empty set on first join, so joining
// ahead of directory visibility is tolerated rather than rejected.
func (t *Membership) Join(roomID, username string) (alreadyPresent bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, u := range t.members[roomID] {
		if u == username {
			return true
		}
	}
	t.members[roomID] = append(t.members[roomID], username)
	return false
}

// Leave removes username from the room's member set and reports whether it
// was present. An unknown room or absent username is a no-op.
func (t *Membership) Leave(roomID, username string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := t.members[roomID]
	for i, u := range list {
		if u == username {
			t.members[roomID] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Members returns a snapshot of the room's member list in join order.
func (t *Membership) Members(roomID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.members[roomID]...)
}
