package core

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// RoomStats is a read-only projection of room state for the admin API.
type RoomStats struct {
	UserCount    int
	MessageCount int
}

// Registry owns every live room in the process. Rooms are created by the
// admin API, mutated through the hub, and deleted by the idle reaper after
// staying empty for the configured TTL.
//
// All room mutations happen under the registry mutex, so concurrent sessions
// never observe a partially updated room.
type Registry struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	timers map[string]*time.Timer

	ttl          time.Duration
	historyLimit int
	newRoomID    func() string
	log          *zerolog.Logger
}

// NewRegistry constructs an empty registry. Rooms that stay empty for ttl
// are deleted; each room keeps at most historyLimit messages.
func NewRegistry(ttl time.Duration, historyLimit int, newRoomID func() string, logger *zerolog.Logger) *Registry {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Registry{
		rooms:        make(map[string]*Room),
		timers:       make(map[string]*time.Timer),
		ttl:          ttl,
		historyLimit: historyLimit,
		newRoomID:    newRoomID,
		log:          logger,
	}
}

// CreateRoom inserts a fresh empty room and returns its identifier.
func (reg *Registry) CreateRoom() string {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	id := reg.newRoomID()
	for _, exists := reg.rooms[id]; exists; _, exists = reg.rooms[id] {
		id = reg.newRoomID()
	}
	reg.rooms[id] = NewRoom(id, reg.historyLimit, time.Now())

	reg.log.Debug().Str("room_id", id).Msg("room created")
	return id
}

// Stats returns a read-only projection of a room, or false if absent.
func (reg *Registry) Stats(id string) (RoomStats, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[id]
	if !ok {
		return RoomStats{}, false
	}
	return RoomStats{
		UserCount:    room.MemberCount(),
		MessageCount: room.history.Len(),
	}, true
}

// Join adds a client to a room, disarms any pending reap timer and returns
// the history snapshot plus the member count after the join.
func (reg *Registry) Join(id string, c *Client) ([]Message, int, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[id]
	if !ok {
		return nil, 0, ErrRoomNotFound
	}

	room.AddClient(c)
	reg.disarmReap(id)
	return room.history.Snapshot(), room.MemberCount(), nil
}

// Leave removes a client from a room and returns the member count after the
// removal. When the room becomes empty the reap timer is armed. Leaving an
// unknown room (already reaped) is a no-op.
func (reg *Registry) Leave(id string, c *Client) (int, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[id]
	if !ok {
		return 0, false
	}
	if !room.RemoveClient(c) {
		return room.MemberCount(), false
	}
	if room.Empty() {
		reg.armReap(id)
	}
	return room.MemberCount(), true
}

// Append adds a message to a room's history. Returns false if the room is gone.
func (reg *Registry) Append(id string, m Message) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[id]
	if !ok {
		return false
	}
	room.history.Append(m)
	return true
}

// Broadcast delivers an event to the current members of a room, skipping the
// given client if non-nil. The member set is read at delivery time.
func (reg *Registry) Broadcast(id string, event *Event, skip *Client) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if room, ok := reg.rooms[id]; ok {
		room.Broadcast(event, skip)
	}
}

// DeleteRoom removes a room unconditionally. Idempotent.
func (reg *Registry) DeleteRoom(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.disarmReap(id)
	delete(reg.rooms, id)
}

// Len returns the number of live rooms.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.rooms)
}

// armReap schedules deletion of a room after the TTL. An existing timer is
// replaced, never stacked. Caller must hold the mutex.
func (reg *Registry) armReap(id string) {
	if t, ok := reg.timers[id]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(reg.ttl, func() {
		reg.reap(id, timer)
	})
	reg.timers[id] = timer
}

// disarmReap cancels a pending reap timer, if any. Caller must hold the mutex.
func (reg *Registry) disarmReap(id string) {
	if t, ok := reg.timers[id]; ok {
		t.Stop()
		delete(reg.timers, id)
	}
}

// reap deletes a room whose timer fired. State is re-checked at fire time:
// the timer must still be the outstanding one for the room and the room must
// still be empty, so a cancel or replace racing the firing never double-applies.
func (reg *Registry) reap(id string, timer *time.Timer) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	current, ok := reg.timers[id]
	if !ok || current != timer {
		return
	}
	delete(reg.timers, id)

	room, ok := reg.rooms[id]
	if !ok || !room.Empty() {
		return
	}
	delete(reg.rooms, id)

	reg.log.Info().Str("room_id", id).Msg("room reaped after inactivity")
}
