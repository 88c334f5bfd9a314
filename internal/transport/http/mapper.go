package http

import (
	"encoding/json"
	"time"

	"github.com/vovakirdan/driftroom-server/internal/core"
	"github.com/vovakirdan/driftroom-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinRoom:
		var join proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		if join.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		return &core.Command{
			Kind:     core.CommandJoinRoom,
			Room:     join.RoomID,
			Username: join.Username,
		}, nil, nil
	case proto.InboundTypeSendMessage:
		var msg proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:     core.CommandSendMessage,
			Body:     msg.Message,
			Reaction: msg.Emoji,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func messageData(m core.Message) proto.MessageData {
	return proto.MessageData{
		ID:        m.ID,
		Username:  m.Author,
		Message:   m.Body,
		Emoji:     m.Reaction,
		Timestamp: m.SentAt.Format(time.RFC3339),
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomJoined,
			Data: proto.RoomJoinedData{
				RoomID:    event.Room,
				UserCount: event.Count,
			},
		}
	case core.EventHistory:
		messages := make([]proto.MessageData, 0, len(event.Messages))
		for _, msg := range event.Messages {
			messages = append(messages, messageData(msg))
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPreviousMessages,
			Data:  messages,
		}
	case core.EventNewMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNewMessage,
			Data:  messageData(event.Message),
		}
	case core.EventUserJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventUserJoined,
			Data: proto.UserJoinedData{
				Username:  event.User,
				UserCount: event.Count,
			},
		}
	case core.EventUserLeft:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventUserLeft,
			Data: proto.UserLeftData{
				Username:  event.User,
				UserCount: event.Count,
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
