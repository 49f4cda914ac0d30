package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHub() (*Hub, *Directory, *Membership) {
	directory := NewDirectory()
	membership := NewMembership()
	logger := zerolog.Nop()
	return NewHub(directory, membership, &logger), directory, membership
}

// joinRoom registers a fresh client and joins it to the room, draining the
// join broadcasts so tests start from a quiet channel.
func joinRoom(t *testing.T, hub *Hub, roomID, username string) *Client {
	t.Helper()

	client := NewClient(username + "-conn")
	hub.Register(client)
	hub.Dispatch(client, &Command{Kind: CommandJoin, Room: roomID, Username: username})

	mustEvent(t, client.Events, EventStatus)
	mustEvent(t, client.Events, EventMembersUpdate)
	return client
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()

	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
