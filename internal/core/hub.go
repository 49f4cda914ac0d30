package core

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/roomrelay/roomrelay/internal/utils"
)

// Hub routes client intents to the room directory and membership tracker
// and fans resulting events out to every connection scoped to the room.
// Room state is guarded by per-room locks inside Directory; the hub itself
// only locks its connection registry.
type Hub struct {
	directory  *Directory
	membership *Membership
	sanitizer  *Sanitizer
	log        *zerolog.Logger

	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

// NewHub constructs a hub over the given directory and membership tracker.
func NewHub(directory *Directory, membership *Membership, logger *zerolog.Logger) *Hub {
	return &Hub{
		directory:  directory,
		membership: membership,
		sanitizer:  NewSanitizer(),
		log:        logger,
		rooms:      make(map[string]map[*Client]struct{}),
	}
}

// Register makes the hub aware of a new connection.
func (h *Hub) Register(client *Client) {
	h.log.Debug().Str("client_id", client.ID).Msg("client registered")
}

// Unregister drops the connection from all room scopes and emits the
// disconnect notifications. Unlike leave, disconnect requires both a known
// username and room before anything is emitted.
func (h *Hub) Unregister(client *Client) {
	h.unsubscribeAll(client)

	if client.Username == "" || client.Room == "" {
		h.log.Debug().Str("client_id", client.ID).Msg("client unregistered before joining")
		return
	}

	h.membership.Leave(client.Room, client.Username)
	h.broadcast(client.Room, &Event{
		Kind:     EventStatus,
		Room:     client.Room,
		Username: client.Username,
		Text:     client.Username + " has disconnected.",
	})
	h.broadcastMembers(client.Room)
	h.log.Info().Str("room", client.Room).Str("username", client.Username).Msg("client disconnected")
}

// Dispatch validates and executes a single client intent. Handlers contain
// their own failures: each terminates by broadcasting, emitting an error
// event to the originating client, or doing nothing.
func (h *Hub) Dispatch(client *Client, cmd *Command) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Any("panic", r).Str("client_id", client.ID).Msg("intent handler panicked")
			h.sendError(client, coreError(ErrCodeInternal, "internal error"))
		}
	}()

	switch cmd.Kind {
	case CommandJoin:
		h.handleJoin(client, cmd)
	case CommandLeave:
		h.handleLeave(client, cmd)
	case CommandTyping:
		h.handleTyping(client, cmd)
	case CommandSendMessage:
		h.handleSend(client, cmd)
	case CommandEditMessage:
		h.handleEdit(client, cmd)
	case CommandMarkSeen:
		h.handleSeen(client, cmd)
	default:
		h.log.Warn().Int("kind", int(cmd.Kind)).Msg("unknown command kind")
	}
}

func (h *Hub) handleJoin(client *Client, cmd *Command) {
	username := h.sanitizer.Clean(cmd.Username)
	if username == "" || cmd.Room == "" {
		h.log.Debug().Str("client_id", client.ID).Msg("join dropped: missing username or room")
		return
	}

	// Membership auto-initializes unknown rooms, so a join racing room
	// creation is tolerated. The set itself stays duplicate-free.
	already := h.membership.Join(cmd.Room, username)

	client.Username = username
	client.Room = cmd.Room
	h.subscribe(cmd.Room, client)

	// Status and members_update go out even on a redundant join.
	h.broadcast(cmd.Room, &Event{
		Kind:     EventStatus,
		Room:     cmd.Room,
		Username: username,
		Text:     username + " has joined the room.",
	})
	h.broadcastMembers(cmd.Room)
	h.log.Info().Str("room", cmd.Room).Str("username", username).Bool("already_present", already).Msg("user joined")
}

func (h *Hub) handleLeave(client *Client, cmd *Command) {
	username := h.sanitizer.Clean(cmd.Username)
	if username == "" || cmd.Room == "" {
		h.log.Debug().Str("client_id", client.ID).Msg("leave dropped: missing username or room")
		return
	}

	// Removal is skipped when the username is absent, but the broadcasts
	// still go out.
	h.membership.Leave(cmd.Room, username)
	h.unsubscribe(cmd.Room, client)

	h.broadcast(cmd.Room, &Event{
		Kind:     EventStatus,
		Room:     cmd.Room,
		Username: username,
		Text:     username + " has left the room.",
	})
	h.broadcastMembers(cmd.Room)
	h.log.Info().Str("room", cmd.Room).Str("username", username).Msg("user left")
}

func (h *Hub) handleTyping(client *Client, cmd *Command) {
	username := h.sanitizer.Clean(cmd.Username)
	if username == "" || cmd.Room == "" {
		h.log.Debug().Str("client_id", client.ID).Msg("typing dropped: missing username or room")
		return
	}

	// Stateless pass-through; the sender already knows they are typing.
	h.broadcastExcept(cmd.Room, client, &Event{
		Kind:     EventUserTyping,
		Room:     cmd.Room,
		Username: username,
		IsTyping: cmd.IsTyping,
	})
}

func (h *Hub) handleSend(client *Client, cmd *Command) {
	username := h.sanitizer.Clean(cmd.Username)
	body := h.sanitizer.Clean(cmd.Body)
	if cmd.Room == "" || username == "" || body == "" {
		h.log.Debug().Str("client_id", client.ID).Msg("message dropped: missing room, username or body")
		return
	}

	if _, ok := h.directory.Room(cmd.Room); !ok {
		h.sendError(client, coreError(ErrCodeRoomNotFound, "Room not found."))
		return
	}
	if utf8.RuneCountInString(body) > MaxBodyLen {
		h.sendError(client, coreError(ErrCodeMessageTooLong, "Message is too long (max 2000 characters)."))
		return
	}

	kind := cmd.MessageKind
	if kind != MessageGIF {
		kind = MessageText
	}

	msg := &Message{
		ID:        utils.NewID(),
		Username:  username,
		Body:      body,
		Kind:      kind,
		Timestamp: time.Now(),
		SeenBy:    []string{username},
	}

	// Publish runs under the room lock so every observer sees messages in
	// exactly the order they land in the log.
	err := h.directory.AppendMessage(cmd.Room, msg, func(snap Message) {
		h.broadcast(cmd.Room, &Event{
			Kind:    EventMessage,
			Room:    cmd.Room,
			Message: &snap,
		})
	})
	if err != nil {
		h.sendError(client, coreError(ErrCodeRoomNotFound, "Room not found."))
		return
	}
	h.log.Debug().Str("room", cmd.Room).Str("username", username).Str("message_id", msg.ID).Msg("message stored")
}

func (h *Hub) handleEdit(client *Client, cmd *Command) {
	username := h.sanitizer.Clean(cmd.Username)
	body := h.sanitizer.Clean(cmd.Body)
	if cmd.Room == "" || cmd.MessageID == "" || username == "" || body == "" {
		h.log.Debug().Str("client_id", client.ID).Msg("edit dropped: missing fields")
		return
	}

	if _, ok := h.directory.Room(cmd.Room); !ok {
		h.sendError(client, coreError(ErrCodeRoomNotFound, "Room not found."))
		return
	}

	// Only the original author may edit; anything else is a silent no-op,
	// matching the tolerant matching behavior clients rely on. The length
	// bound is deliberately not re-checked here.
	edited := false
	snap, ok := h.directory.MutateMessage(cmd.Room, cmd.MessageID, func(m *Message) {
		if m.Username != username {
			return
		}
		m.Body = body
		m.Edited = true
		m.EditedAt = time.Now()
		edited = true
	})
	if !ok || !edited {
		return
	}

	h.broadcast(cmd.Room, &Event{
		Kind:    EventMessageEdited,
		Room:    cmd.Room,
		Message: &snap,
	})
	h.log.Debug().Str("room", cmd.Room).Str("message_id", cmd.MessageID).Msg("message edited")
}

func (h *Hub) handleSeen(client *Client, cmd *Command) {
	username := h.sanitizer.Clean(cmd.Username)
	if cmd.Room == "" || cmd.MessageID == "" || username == "" {
		h.log.Debug().Str("client_id", client.ID).Msg("seen dropped: missing fields")
		return
	}

	if _, ok := h.directory.Room(cmd.Room); !ok {
		h.sendError(client, coreError(ErrCodeRoomNotFound, "Room not found."))
		return
	}

	// No authorship check here. The update goes out with the full set even
	// when the set did not change.
	snap, ok := h.directory.MutateMessage(cmd.Room, cmd.MessageID, func(m *Message) {
		m.MarkSeen(username)
	})
	if !ok {
		return
	}

	h.broadcast(cmd.Room, &Event{
		Kind:    EventMessageSeenUpdate,
		Room:    cmd.Room,
		Message: &snap,
	})
}

// subscribe adds the connection to a room's broadcast scope.
func (h *Hub) subscribe(roomID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]struct{})
	}
	h.rooms[roomID][client] = struct{}{}
}

func (h *Hub) unsubscribe(roomID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.rooms[roomID]; ok {
		delete(set, client)
	}
}

func (h *Hub) unsubscribeAll(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.rooms {
		delete(set, client)
	}
}

// broadcast delivers an event to every connection currently scoped to the
// room. Slow consumers are dropped rather than blocking the relay.
func (h *Hub) broadcast(roomID string, event *Event) {
	h.broadcastExcept(roomID, nil, event)
}

func (h *Hub) broadcastExcept(roomID string, skip *Client, event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[roomID] {
		if client == skip {
			continue
		}
		select {
		case client.Events <- event:
		default:
			h.log.Warn().Str("client_id", client.ID).Str("room", roomID).Msg("dropping event for slow consumer")
		}
	}
}

func (h *Hub) broadcastMembers(roomID string) {
	h.broadcast(roomID, &Event{
		Kind:    EventMembersUpdate,
		Room:    roomID,
		Members: h.membership.Members(roomID),
	})
}

// sendError emits an error event to the originating client only.
func (h *Hub) sendError(client *Client, cerr *CoreError) {
	select {
	case client.Events <- &Event{Kind: EventError, Error: cerr}:
	default:
		h.log.Warn().Str("client_id", client.ID).Str("code", cerr.Code).Msg("dropping error event for slow consumer")
	}
}
