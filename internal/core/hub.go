package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/driftroom-server/internal/utils"
)

// session ties a connected client to its room and display name.
// Sessions live only as long as the connection.
type session struct {
	room string
	name string
}

// envelope pairs a command with the client that issued it.
type envelope struct {
	client *Client
	cmd    *Command
}

// Hub runs the join/send/disconnect protocol for all connections. A single
// goroutine owns the session map and applies every room mutation, so
// membership changes, history appends and broadcasts are serialized.
type Hub struct {
	registry   *Registry
	inbox      chan envelope
	register   chan *Client
	unregister chan *Client
	log        *zerolog.Logger
}

// NewHub creates a hub working against the given registry.
func NewHub(registry *Registry, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry:   registry,
		inbox:      make(chan envelope, 64),
		register:   make(chan *Client, 8),
		unregister: make(chan *Client, 8),
		log:        logger,
	}
}

// RegisterClient announces a new connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient runs the disconnect path for a connection. Safe to call
// for clients that never joined a room.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Run processes registrations and client commands until ctx is canceled.
func (h *Hub) Run(ctx context.Context) {
	sessions := make(map[*Client]*session)

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			sessions[c] = &session{}
			go h.pump(ctx, c)
			h.log.Debug().Str("client_id", c.ID).Msg("client registered")
		case c := <-h.unregister:
			h.handleDisconnect(sessions, c)
		case env := <-h.inbox:
			sess, ok := sessions[env.client]
			if !ok {
				continue // already disconnected
			}
			switch env.cmd.Kind {
			case CommandJoinRoom:
				h.handleJoin(sess, env.client, env.cmd)
			case CommandSendMessage:
				h.handleSend(sess, env.cmd)
			}
		}
	}
}

// pump forwards one client's commands into the hub inbox.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for {
		select {
		case cmd, ok := <-c.Commands:
			if !ok {
				return
			}
			select {
			case h.inbox <- envelope{client: c, cmd: cmd}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleJoin(sess *session, c *Client, cmd *Command) {
	if sess.room != "" {
		h.sendEvent(c, &Event{
			Kind:  EventError,
			Error: coreError(ErrCodeAlreadyJoined, "already in a room"),
		})
		return
	}

	snapshot, count, err := h.registry.Join(cmd.Room, c)
	if err != nil {
		h.sendEvent(c, &Event{
			Kind:  EventError,
			Error: coreError(ErrCodeRoomNotFound, "Room not found"),
		})
		return
	}

	sess.room = cmd.Room
	sess.name = cmd.Username

	h.sendEvent(c, &Event{Kind: EventRoomJoined, Room: cmd.Room, Count: count})
	h.sendEvent(c, &Event{Kind: EventHistory, Room: cmd.Room, Messages: snapshot})

	h.registry.Broadcast(cmd.Room, &Event{
		Kind:  EventUserJoined,
		Room:  cmd.Room,
		User:  sess.name,
		Count: count,
	}, c)

	h.log.Info().Str("room_id", cmd.Room).Str("username", sess.name).Int("user_count", count).Msg("user joined room")
}

func (h *Hub) handleSend(sess *session, cmd *Command) {
	if sess.room == "" {
		// Stale or never-joined client; drop silently.
		h.log.Debug().Msg("message without active room dropped")
		return
	}

	body := ClampBody(cmd.Body)
	if body == "" {
		return
	}

	msg := Message{
		ID:       utils.NewMessageID(),
		Author:   sess.name,
		Body:     body,
		Reaction: NormalizeReaction(cmd.Reaction),
		SentAt:   time.Now().UTC(),
	}

	if !h.registry.Append(sess.room, msg) {
		return
	}
	h.registry.Broadcast(sess.room, &Event{
		Kind:    EventNewMessage,
		Room:    sess.room,
		Message: msg,
	}, nil)
}

func (h *Hub) handleDisconnect(sessions map[*Client]*session, c *Client) {
	sess, ok := sessions[c]
	if !ok {
		return
	}
	delete(sessions, c)

	if sess.room == "" {
		return
	}

	count, removed := h.registry.Leave(sess.room, c)
	if !removed {
		return
	}
	h.registry.Broadcast(sess.room, &Event{
		Kind:  EventUserLeft,
		Room:  sess.room,
		User:  sess.name,
		Count: count,
	}, nil)

	h.log.Info().Str("room_id", sess.room).Str("username", sess.name).Int("user_count", count).Msg("user left room")
}

// sendEvent delivers an event to a single client, dropping if its buffer is full.
func (h *Hub) sendEvent(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
	}
}
