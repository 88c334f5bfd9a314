package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinRoom associates the client with a room under a display name.
	CommandJoinRoom CommandKind = iota
	// CommandSendMessage delivers a chat message to the client's room.
	CommandSendMessage
)

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Room     string
	Username string
	Body     string
	Reaction string
}
