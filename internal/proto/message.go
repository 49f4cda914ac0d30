package proto

import "encoding/json"

// Inbound is the envelope for intents coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoin    = "join"
	InboundTypeLeave   = "leave"
	InboundTypeTyping  = "typing"
	InboundTypeMessage = "message"
	InboundTypeEdit    = "edit_message"
	InboundTypeSeen    = "message_seen"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"
)

// JoinData subscribes a user to a room. Leave uses the same shape.
type JoinData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// TypingData relays a typing indicator.
type TypingData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
	IsTyping bool   `json:"isTyping"`
}

// MessageData is a chat message from the client. Type is "text" or "gif".
type MessageData struct {
	Room     string `json:"room"`
	Username string `json:"username"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

// EditData replaces the body of an existing message.
type EditData struct {
	Room      string `json:"room"`
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
	Username  string `json:"username"`
}

// SeenData records that a user has observed a message.
type SeenData struct {
	Room      string `json:"room"`
	MessageID string `json:"message_id"`
	Username  string `json:"username"`
}

// Outbound is the envelope for events sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Outbound event names.
const (
	EventNameStatus        = "status"
	EventNameMembersUpdate = "members_update"
	EventNameMessage       = "message"
	EventNameMessageEdited = "message_edited"
	EventNameSeenUpdate    = "message_seen_update"
	EventNameUserTyping    = "user_typing"
)

// EventStatus is a human-readable room notification.
type EventStatus struct {
	Msg      string `json:"msg"`
	Username string `json:"username"`
}

// EventMembersUpdate carries the full member list of a room.
type EventMembersUpdate struct {
	Members []string `json:"members"`
}

// EventMessage is a chat message delivered to room members.
type EventMessage struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Message   string   `json:"message"`
	Type      string   `json:"type"`
	Timestamp int64    `json:"timestamp"`
	Edited    bool     `json:"edited"`
	SeenBy    []string `json:"seenBy"`
}

// EventMessageEdited notifies that a message body changed.
type EventMessageEdited struct {
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
	Edited    bool   `json:"edited"`
}

// EventMessageSeenUpdate carries the full seen-by set of a message.
type EventMessageSeenUpdate struct {
	MessageID string   `json:"messageId"`
	SeenBy    []string `json:"seenBy"`
}

// EventUserTyping is relayed to everyone in the room except the sender.
type EventUserTyping struct {
	Username string `json:"username"`
	IsTyping bool   `json:"isTyping"`
}

// Error describes a user-actionable failure.
type Error struct {
	Code string `json:"code,omitempty"`
	Msg  string `json:"msg"`
}
