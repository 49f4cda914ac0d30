package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/roomrelay/roomrelay/internal/proto"
)

type outboundFrame struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
	Error *proto.Error    `json:"error"`
}

// readEvent reads frames until one with the wanted event name arrives.
func readEvent(ctx context.Context, t *testing.T, conn *websocket.Conn, event string) outboundFrame {
	t.Helper()
	for {
		var frame outboundFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read outbound while waiting for %q: %v", event, err)
		}
		if frame.Event == event {
			return frame
		}
	}
}

func sendIntent(ctx context.Context, t *testing.T, conn *websocket.Conn, typ string, data any) {
	t.Helper()
	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", typ, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
		t.Fatalf("write %s intent: %v", typ, err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, "")
	srv := httptest.NewServer(ts.server.Handler)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestWebSocketJoinAndMessage(t *testing.T) {
	ts := newTestServer(t, "")
	room := ts.directory.CreateRoom("Demo", "alice")

	srv := httptest.NewServer(ts.server.Handler)
	defer srv.Close()
	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial A: %v", err)
	}
	defer connA.Close(websocket.StatusNormalClosure, "done")

	connB, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial B: %v", err)
	}
	defer connB.Close(websocket.StatusNormalClosure, "done")

	sendIntent(ctx, t, connA, proto.InboundTypeJoin, proto.JoinData{Username: "alice", Room: room.ID})
	readEvent(ctx, t, connA, proto.EventNameStatus)
	readEvent(ctx, t, connA, proto.EventNameMembersUpdate)

	sendIntent(ctx, t, connB, proto.InboundTypeJoin, proto.JoinData{Username: "bob", Room: room.ID})

	// Seeing bob in the member list means his subscription is live, so the
	// message below cannot race his join.
	frame := readEvent(ctx, t, connA, proto.EventNameMembersUpdate)
	var members proto.EventMembersUpdate
	if err := json.Unmarshal(frame.Data, &members); err != nil {
		t.Fatalf("unmarshal members: %v", err)
	}
	if len(members.Members) != 2 {
		t.Fatalf("unexpected members: %v", members.Members)
	}

	sendIntent(ctx, t, connA, proto.InboundTypeMessage, proto.MessageData{
		Room:     room.ID,
		Username: "alice",
		Message:  "hi there",
		Type:     "text",
	})

	frame = readEvent(ctx, t, connB, proto.EventNameMessage)
	var event proto.EventMessage
	if err := json.Unmarshal(frame.Data, &event); err != nil {
		t.Fatalf("unmarshal event data: %v", err)
	}
	if event.Username != "alice" || event.Message != "hi there" || event.Type != "text" {
		t.Fatalf("unexpected event payload: %+v", event)
	}
	if len(event.SeenBy) != 1 || event.SeenBy[0] != "alice" {
		t.Fatalf("unexpected seenBy: %v", event.SeenBy)
	}
}

func TestWebSocketUnknownRoomError(t *testing.T) {
	ts := newTestServer(t, "")
	srv := httptest.NewServer(ts.server.Handler)
	defer srv.Close()
	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	sendIntent(ctx, t, conn, proto.InboundTypeMessage, proto.MessageData{
		Room:     "ghost",
		Username: "alice",
		Message:  "hi",
		Type:     "text",
	})

	var frame outboundFrame
	if err := wsjson.Read(ctx, conn, &frame); err != nil {
		t.Fatalf("read outbound: %v", err)
	}
	if frame.Type != proto.OutboundTypeError || frame.Error == nil || frame.Error.Code != "room_not_found" {
		t.Fatalf("unexpected frame: %+v", frame)
	}
}
