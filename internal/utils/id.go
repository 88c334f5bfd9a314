package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// roomIDLength is the number of UUID hex characters kept for a room id.
// Short enough to share by hand, large enough that collisions are negligible.
const roomIDLength = 8

// NewConnID returns a best-effort unique identifier for a connection.
func NewConnID() string {
	const size = 12

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}

	// Fallback to timestamp if crypto/rand is unavailable.
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// NewRoomID returns a short opaque room identifier.
func NewRoomID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:roomIDLength]
}

// NewMessageID returns a unique identifier for a chat message.
func NewMessageID() string {
	return uuid.NewString()
}
