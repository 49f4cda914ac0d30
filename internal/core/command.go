package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin subscribes the client to a room.
	CommandJoin CommandKind = iota
	// CommandLeave unsubscribes the client from a room.
	CommandLeave
	// CommandTyping relays a typing indicator to other room members.
	CommandTyping
	// CommandSendMessage delivers a chat message to room participants.
	CommandSendMessage
	// CommandEditMessage replaces the body of a previously sent message.
	CommandEditMessage
	// CommandMarkSeen records that a user has observed a message.
	CommandMarkSeen
)

// Command represents an intent requested by a client.
type Command struct {
	Kind        CommandKind
	Room        string
	Username    string
	Body        string
	MessageKind MessageKind
	MessageID   string
	IsTyping    bool
}
