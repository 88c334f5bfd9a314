package core

import (
	"strconv"
	"testing"
)

func TestHistoryAppendAndSnapshot(t *testing.T) {
	h := NewHistory(100)

	h.Append(Message{ID: "1", Body: "first"})
	h.Append(Message{ID: "2", Body: "second"})

	snap := h.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(snap))
	}
	if snap[0].ID != "1" || snap[1].ID != "2" {
		t.Fatalf("unexpected order: %+v", snap)
	}
}

func TestHistoryEvictsOldestPastLimit(t *testing.T) {
	h := NewHistory(100)

	for i := 0; i < 150; i++ {
		h.Append(Message{ID: strconv.Itoa(i)})
	}

	if h.Len() != 100 {
		t.Fatalf("expected length 100, got %d", h.Len())
	}

	snap := h.Snapshot()
	for i, msg := range snap {
		want := strconv.Itoa(i + 50)
		if msg.ID != want {
			t.Fatalf("at index %d: expected id %s, got %s", i, want, msg.ID)
		}
	}
}

func TestHistorySnapshotIsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Append(Message{ID: "a", Body: "original"})

	snap := h.Snapshot()
	snap[0].Body = "mutated"

	if got := h.Snapshot()[0].Body; got != "original" {
		t.Fatalf("snapshot mutation leaked into history: %q", got)
	}
}
