package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomJoined acknowledges a successful join to the joiner only.
	EventRoomJoined EventKind = iota
	// EventHistory delivers message history to a client upon joining a room.
	EventHistory
	// EventNewMessage notifies room members about a chat message.
	EventNewMessage
	// EventUserJoined notifies existing members that a user joined.
	EventUserJoined
	// EventUserLeft notifies remaining members that a user left.
	EventUserLeft
	// EventError notifies a single client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind     EventKind
	Room     string
	User     string // display name for join/left notices
	Count    int    // member count after the change
	Message  Message
	Messages []Message // for EventHistory
	Error    *CoreError
}
