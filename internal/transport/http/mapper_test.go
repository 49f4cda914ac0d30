package http

import (
	"encoding/json"
	"testing"

	"github.com/roomrelay/roomrelay/internal/core"
	"github.com/roomrelay/roomrelay/internal/proto"
)

func inbound(t *testing.T, typ string, data any) proto.Inbound {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal inbound data: %v", err)
	}
	return proto.Inbound{Type: typ, Data: raw}
}

func TestInboundToCommandMessage(t *testing.T) {
	cmd, err := inboundToCommand(inbound(t, proto.InboundTypeMessage, proto.MessageData{
		Room:     "r1",
		Username: "alice",
		Message:  "hi",
		Type:     "gif",
	}))
	if err != nil {
		t.Fatalf("map message: %v", err)
	}
	if cmd.Kind != core.CommandSendMessage || cmd.Room != "r1" || cmd.Username != "alice" ||
		cmd.Body != "hi" || cmd.MessageKind != core.MessageGIF {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandJoinLeave(t *testing.T) {
	join, err := inboundToCommand(inbound(t, proto.InboundTypeJoin, proto.JoinData{Username: "alice", Room: "r1"}))
	if err != nil || join.Kind != core.CommandJoin {
		t.Fatalf("unexpected join mapping: %+v, %v", join, err)
	}

	leave, err := inboundToCommand(inbound(t, proto.InboundTypeLeave, proto.JoinData{Username: "alice", Room: "r1"}))
	if err != nil || leave.Kind != core.CommandLeave {
		t.Fatalf("unexpected leave mapping: %+v, %v", leave, err)
	}
}

func TestInboundToCommandSeenAndEdit(t *testing.T) {
	seen, err := inboundToCommand(inbound(t, proto.InboundTypeSeen, proto.SeenData{
		Room: "r1", MessageID: "m1", Username: "bob",
	}))
	if err != nil || seen.Kind != core.CommandMarkSeen || seen.MessageID != "m1" {
		t.Fatalf("unexpected seen mapping: %+v, %v", seen, err)
	}

	edit, err := inboundToCommand(inbound(t, proto.InboundTypeEdit, proto.EditData{
		Room: "r1", MessageID: "m1", Message: "new", Username: "alice",
	}))
	if err != nil || edit.Kind != core.CommandEditMessage || edit.Body != "new" {
		t.Fatalf("unexpected edit mapping: %+v, %v", edit, err)
	}
}

func TestInboundToCommandRejectsUnknownAndMalformed(t *testing.T) {
	if _, err := inboundToCommand(proto.Inbound{Type: "shrug"}); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if _, err := inboundToCommand(proto.Inbound{Type: proto.InboundTypeMessage, Data: []byte("{broken")}); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestOutboundFromMessageEvent(t *testing.T) {
	msg := &core.Message{
		ID:       "m1",
		Username: "alice",
		Body:     "hi",
		Kind:     core.MessageText,
		SeenBy:   []string{"alice"},
	}

	out := outboundFromEvent(&core.Event{Kind: core.EventMessage, Room: "r1", Message: msg})
	if out.Type != proto.OutboundTypeEvent || out.Event != proto.EventNameMessage {
		t.Fatalf("unexpected envelope: %+v", out)
	}
	payload, ok := out.Data.(proto.EventMessage)
	if !ok {
		t.Fatalf("unexpected payload type %T", out.Data)
	}
	if payload.ID != "m1" || payload.Username != "alice" || payload.Type != "text" || len(payload.SeenBy) != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestOutboundFromSeenUpdate(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind:    core.EventMessageSeenUpdate,
		Message: &core.Message{ID: "m1", SeenBy: []string{"alice", "bob"}},
	})
	payload, ok := out.Data.(proto.EventMessageSeenUpdate)
	if !ok || payload.MessageID != "m1" || len(payload.SeenBy) != 2 {
		t.Fatalf("unexpected payload: %+v", out.Data)
	}
}

func TestOutboundFromErrorEvent(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind:  core.EventError,
		Error: &core.CoreError{Code: core.ErrCodeRoomNotFound, Message: "Room not found."},
	})
	if out.Type != proto.OutboundTypeError || out.Error == nil || out.Error.Code != core.ErrCodeRoomNotFound {
		t.Fatalf("unexpected error envelope: %+v", out)
	}
}
