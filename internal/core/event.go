package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventStatus carries a human-readable join/leave/disconnect line.
	EventStatus EventKind = iota
	// EventMembersUpdate carries the full current member list of a room.
	EventMembersUpdate
	// EventMessage notifies room members about a new chat message.
	EventMessage
	// EventMessageEdited notifies room members that a message body changed.
	EventMessageEdited
	// EventMessageSeenUpdate carries the full seen-by set of a message.
	EventMessageSeenUpdate
	// EventUserTyping relays a typing indicator to everyone but the sender.
	EventUserTyping
	// EventError notifies the originating client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in a room.
type Event struct {
	Kind     EventKind
	Room     string
	Username string
	Text     string // status line for EventStatus
	Members  []string
	Message  *Message // snapshot for message events
	IsTyping bool
	Error    *CoreError
}
