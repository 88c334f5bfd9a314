package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoinRoom    = "join-room"
	InboundTypeSendMessage = "send-message"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventRoomJoined       = "room-joined"
	EventPreviousMessages = "previous-messages"
	EventNewMessage       = "new-message"
	EventUserJoined       = "user-joined"
	EventUserLeft         = "user-left"
)

// JoinRoomData requests to join a room under a display name.
type JoinRoomData struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

// SendMessageData is a chat message from the client. Emoji is optional.
type SendMessageData struct {
	Message string `json:"message"`
	Emoji   string `json:"emoji,omitempty"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// MessageData is a chat message as delivered to clients, live or in replay.
type MessageData struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Emoji     string `json:"emoji"`
	Timestamp string `json:"timestamp"`
}

// RoomJoinedData acknowledges a join to the joining client only.
type RoomJoinedData struct {
	RoomID    string `json:"roomId"`
	UserCount int    `json:"userCount"`
}

// UserJoinedData notifies existing members that a user joined.
type UserJoinedData struct {
	Username  string `json:"username"`
	UserCount int    `json:"userCount"`
}

// UserLeftData notifies remaining members that a user left.
type UserLeftData struct {
	Username  string `json:"username"`
	UserCount int    `json:"userCount"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
