package core

import (
	"strings"
	"testing"
)

func TestNormalizeReaction(t *testing.T) {
	if got := NormalizeReaction(""); got != DefaultReaction {
		t.Fatalf("empty reaction: got %q", got)
	}
	if got := NormalizeReaction("🔥"); got != "🔥" {
		t.Fatalf("known reaction rewritten: got %q", got)
	}
	if got := NormalizeReaction("<script>"); got != DefaultReaction {
		t.Fatalf("unknown reaction not defaulted: got %q", got)
	}
}

func TestClampBody(t *testing.T) {
	if got := ClampBody("  hi  "); got != "hi" {
		t.Fatalf("expected trimmed body, got %q", got)
	}
	if got := ClampBody("   "); got != "" {
		t.Fatalf("expected blank body to clamp to empty, got %q", got)
	}

	long := strings.Repeat("é", MaxBodyRunes+10)
	clamped := ClampBody(long)
	if n := len([]rune(clamped)); n != MaxBodyRunes {
		t.Fatalf("expected %d runes, got %d", MaxBodyRunes, n)
	}
}
