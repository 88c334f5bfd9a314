package core

import "time"

// Room groups the live participants of one ephemeral chat session.
type Room struct {
	ID        string
	CreatedAt time.Time

	clients map[*Client]struct{}
	history *History
}

// NewRoom constructs an empty room with a bounded history.
func NewRoom(id string, historyLimit int, now time.Time) *Room {
	return &Room{
		ID:        id,
		CreatedAt: now,
		clients:   make(map[*Client]struct{}),
		history:   NewHistory(historyLimit),
	}
}

// AddClient inserts a client into the room. Returns true if newly added.
func (r *Room) AddClient(c *Client) bool {
	if _, exists := r.clients[c]; exists {
		return false
	}
	r.clients[c] = struct{}{}
	return true
}

// RemoveClient deletes a client from the room. Returns true if removed.
func (r *Room) RemoveClient(c *Client) bool {
	if _, exists := r.clients[c]; !exists {
		return false
	}
	delete(r.clients, c)
	return true
}

// Broadcast sends an event to all clients in the room, skipping the given
// client if skip is non-nil.
func (r *Room) Broadcast(event *Event, skip *Client) {
	for client := range r.clients {
		if client == skip {
			continue
		}
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// MemberCount returns the number of clients currently in the room.
func (r *Room) MemberCount() int {
	return len(r.clients)
}

// Empty returns true if no clients are in the room.
func (r *Room) Empty() bool {
	return len(r.clients) == 0
}
