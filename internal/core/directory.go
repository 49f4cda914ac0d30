package core

import (
	"sync"

	"github.com/roomrelay/roomrelay/internal/utils"
)

// Directory owns the process-wide set of rooms. Rooms are created on demand
// and retained for the process lifetime; there is no eviction.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewDirectory creates an empty room directory.
func NewDirectory() *Directory {
	return &Directory{rooms: make(map[string]*Room)}
}

// CreateRoom allocates a fresh id and stores an empty room. The room is
// visible to lookups as soon as this returns. It never fails.
func (d *Directory) CreateRoom(name, creator string) *Room {
	room := newRoom(utils.NewRoomID(), name, creator)
	d.mu.Lock()
	d.rooms[room.ID] = room
	d.mu.Unlock()
	return room
}

// Room looks up a room by id.
func (d *Directory) Room(id string) (*Room, bool) {
	d.mu.RLock()
	room, ok := d.rooms[id]
	d.mu.RUnlock()
	return room, ok
}

// Rooms returns a snapshot of all rooms.
func (d *Directory) Rooms() []*Room {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Room, 0, len(d.rooms))
	for _, room := range d.rooms {
		out = append(out, room)
	}
	return out
}

// AppendMessage appends msg to the room's log, invoking publish under the
// room lock so broadcast order matches log order. Returns ErrRoomNotFound
// if the room does not exist.
func (d *Directory) AppendMessage(roomID string, msg *Message, publish func(Message)) error {
	room, ok := d.Room(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	room.Append(msg, publish)
	return nil
}

// FindMessage looks up a message by id within a room. Message volume per
// room is small, so a linear scan is fine.
func (d *Directory) FindMessage(roomID, messageID string) (Message, bool) {
	room, ok := d.Room(roomID)
	if !ok {
		return Message{}, false
	}
	return room.Find(messageID)
}

// MutateMessage applies fn to exactly one matching message in the room and
// returns the mutated snapshot. A missing room or message id is a silent
// no-op, reported through the bool only.
func (d *Directory) MutateMessage(roomID, messageID string, fn func(*Message)) (Message, bool) {
	room, ok := d.Room(roomID)
	if !ok {
		return Message{}, false
	}
	return room.Mutate(messageID, fn)
}
