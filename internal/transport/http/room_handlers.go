package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/driftroom-server/internal/core"
)

// RoomHandlers provides HTTP handlers for room creation and status queries.
type RoomHandlers struct {
	registry *core.Registry
	log      *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(registry *core.Registry, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		registry: registry,
		log:      logger,
	}
}

// CreateRoomResponse carries the identifier of a freshly created room.
type CreateRoomResponse struct {
	RoomID string `json:"roomId"`
}

// RoomInfoResponse is a read-only projection of room state.
type RoomInfoResponse struct {
	Exists       bool `json:"exists"`
	UserCount    int  `json:"userCount"`
	MessageCount int  `json:"messageCount"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateRoom handles room creation.
// POST /api/create-room
func (h *RoomHandlers) CreateRoom(c *gin.Context) {
	id := h.registry.CreateRoom()

	h.log.Info().Str("room_id", id).Msg("room created")
	c.JSON(http.StatusOK, CreateRoomResponse{RoomID: id})
}

// GetRoom handles room existence/status queries.
// GET /api/room/:roomId
func (h *RoomHandlers) GetRoom(c *gin.Context) {
	id := c.Param("roomId")

	stats, ok := h.registry.Stats(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Room not found"})
		return
	}

	c.JSON(http.StatusOK, RoomInfoResponse{
		Exists:       true,
		UserCount:    stats.UserCount,
		MessageCount: stats.MessageCount,
	})
}
