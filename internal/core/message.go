package core

import "time"

// MessageKind distinguishes plain text from GIF messages.
type MessageKind string

const (
	MessageText MessageKind = "text"
	MessageGIF  MessageKind = "gif"
)

// MaxBodyLen bounds message bodies at creation, counted in runes after
// sanitization. Edits are not re-checked against this bound.
const MaxBodyLen = 2000

// Message is the domain model for a chat message. ID, Username, Kind and
// Timestamp never change after creation. Body changes only through an edit
// by the original author. SeenBy only ever grows.
type Message struct {
	ID        string
	Username  string
	Body      string
	Kind      MessageKind
	Timestamp time.Time
	Edited    bool
	EditedAt  time.Time
	SeenBy    []string
}

// HasSeen reports whether username is already in the seen-by set.
func (m *Message) HasSeen(username string) bool {
	for _, u := range m.SeenBy {
		if u == username {
			return true
		}
	}
	return false
}

// MarkSeen adds username to the seen-by set. Adding an existing entry is a
// no-op, so the set never holds duplicates and never shrinks.
func (m *Message) MarkSeen(username string) {
	if !m.HasSeen(username) {
		m.SeenBy = append(m.SeenBy, username)
	}
}
