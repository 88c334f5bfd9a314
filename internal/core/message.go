package core

import (
	"strings"
	"time"
)

// DefaultReaction is attached to messages that arrive without an emoji.
const DefaultReaction = "💬"

// MaxBodyRunes bounds the length of a message body in code points.
const MaxBodyRunes = 500

// reactions is the fixed set of emoji a sender may attach to a message.
var reactions = map[string]struct{}{
	"💬": {}, "😀": {}, "😂": {}, "❤️": {}, "👍": {},
	"🎉": {}, "🔥": {}, "💯": {}, "🚀": {}, "⭐": {},
	"🌟": {}, "💡": {}, "🎯": {}, "🎨": {}, "🎵": {},
}

// Message is the domain model for a chat message kept in room history.
type Message struct {
	ID       string
	Author   string
	Body     string
	Reaction string
	SentAt   time.Time
}

// NormalizeReaction maps unknown or empty reactions to the default glyph.
func NormalizeReaction(r string) string {
	if _, ok := reactions[r]; ok {
		return r
	}
	return DefaultReaction
}

// ClampBody trims surrounding whitespace and truncates the body to
// MaxBodyRunes code points. An empty result means the message should be dropped.
func ClampBody(body string) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) > MaxBodyRunes {
		return string(runes[:MaxBodyRunes])
	}
	return body
}
