package http

import (
	"encoding/json"
	"fmt"

	"github.com/roomrelay/roomrelay/internal/core"
	"github.com/roomrelay/roomrelay/internal/proto"
)

// inboundToCommand maps a wire intent onto a core command. Unmarshal
// failures and unknown types come back as errors; required-field checks
// belong to the hub.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin, proto.InboundTypeLeave:
		var data proto.JoinData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		kind := core.CommandJoin
		if inbound.Type == proto.InboundTypeLeave {
			kind = core.CommandLeave
		}
		return &core.Command{
			Kind:     kind,
			Room:     data.Room,
			Username: data.Username,
		}, nil
	case proto.InboundTypeTyping:
		var data proto.TypingData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandTyping,
			Room:     data.Room,
			Username: data.Username,
			IsTyping: data.IsTyping,
		}, nil
	case proto.InboundTypeMessage:
		var data proto.MessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:        core.CommandSendMessage,
			Room:        data.Room,
			Username:    data.Username,
			Body:        data.Message,
			MessageKind: core.MessageKind(data.Type),
		}, nil
	case proto.InboundTypeEdit:
		var data proto.EditData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:      core.CommandEditMessage,
			Room:      data.Room,
			Username:  data.Username,
			Body:      data.Message,
			MessageID: data.MessageID,
		}, nil
	case proto.InboundTypeSeen:
		var data proto.SeenData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:      core.CommandMarkSeen,
			Room:      data.Room,
			Username:  data.Username,
			MessageID: data.MessageID,
		}, nil
	default:
		return nil, fmt.Errorf("unknown inbound type %q", inbound.Type)
	}
}

// outboundFromEvent maps a core event onto the wire envelope.
func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventStatus:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameStatus,
			Data: proto.EventStatus{
				Msg:      event.Text,
				Username: event.Username,
			},
		}
	case core.EventMembersUpdate:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMembersUpdate,
			Data: proto.EventMembersUpdate{
				Members: event.Members,
			},
		}
	case core.EventMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMessage,
			Data:  messagePayload(event.Message),
		}
	case core.EventMessageEdited:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMessageEdited,
			Data: proto.EventMessageEdited{
				MessageID: event.Message.ID,
				Message:   event.Message.Body,
				Edited:    event.Message.Edited,
			},
		}
	case core.EventMessageSeenUpdate:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameSeenUpdate,
			Data: proto.EventMessageSeenUpdate{
				MessageID: event.Message.ID,
				SeenBy:    event.Message.SeenBy,
			},
		}
	case core.EventUserTyping:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameUserTyping,
			Data: proto.EventUserTyping{
				Username: event.Username,
				IsTyping: event.IsTyping,
			},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func messagePayload(msg *core.Message) proto.EventMessage {
	return proto.EventMessage{
		ID:        msg.ID,
		Username:  msg.Username,
		Message:   msg.Body,
		Type:      string(msg.Kind),
		Timestamp: msg.Timestamp.Unix(),
		Edited:    msg.Edited,
		SeenBy:    msg.SeenBy,
	}
}
