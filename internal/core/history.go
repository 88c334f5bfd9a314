package core

// History is a bounded, ordered log of chat messages, newest last.
// It is not safe for concurrent use; callers synchronize through the Registry.
type History struct {
	limit int
	msgs  []Message
}

// NewHistory constructs an empty history holding at most limit messages.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{limit: limit}
}

// Append adds a message at the tail, evicting from the head past the limit.
func (h *History) Append(m Message) {
	h.msgs = append(h.msgs, m)
	if len(h.msgs) > h.limit {
		// Sliding window: keep the newest limit entries in order.
		h.msgs = append(h.msgs[:0], h.msgs[len(h.msgs)-h.limit:]...)
	}
}

// Snapshot returns a copy of the current contents for replay.
func (h *History) Snapshot() []Message {
	out := make([]Message, len(h.msgs))
	copy(out, h.msgs)
	return out
}

// Len returns the number of stored messages.
func (h *History) Len() int {
	return len(h.msgs)
}
