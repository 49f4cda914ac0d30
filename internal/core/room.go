package core

import (
	"sync"
	"time"
)

// DefaultRoomName is used when a create request carries no display name.
const DefaultRoomName = "Unnamed Room"

// Room is a named chat channel with its own append-only message log. The
// log is guarded by the room's own mutex, so operations on one room never
// block another.
type Room struct {
	ID        string
	Name      string
	Creator   string
	CreatedAt time.Time

	mu       sync.Mutex
	messages []*Message
}

func newRoom(id, name, creator string) *Room {
	if name == "" {
		name = DefaultRoomName
	}
	return &Room{
		ID:        id,
		Name:      name,
		Creator:   creator,
		CreatedAt: time.Now(),
	}
}

// Append adds msg to the end of the room's log. If publish is non-nil it
// runs with the lock still held, so callers can fan out appends in log
// order: no observer sees two messages in a different order than the log.
func (r *Room) Append(msg *Message, publish func(Message)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	if publish != nil {
		publish(snapshot(msg))
	}
}

// Find returns a snapshot of the message with the given id, reflecting all
// mutations applied so far.
func (r *Room) Find(messageID string) (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == messageID {
			return snapshot(m), true
		}
	}
	return Message{}, false
}

// Mutate applies fn to the message with the given id under the room lock
// and returns a snapshot of the result. A missing id is a silent no-op.
func (r *Room) Mutate(messageID string, fn func(*Message)) (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == messageID {
			fn(m)
			return snapshot(m), true
		}
	}
	return Message{}, false
}

// History returns a copy of the room's message log in append order.
func (r *Room) History() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, snapshot(m))
	}
	return out
}

// MessageCount returns the current length of the room's log.
func (r *Room) MessageCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// snapshot copies a message so callers can read it outside the room lock.
func snapshot(m *Message) Message {
	cp := *m
	cp.SeenBy = append([]string(nil), m.SeenBy...)
	return cp
}
