package slots

import (
	"strings"
	"testing"

	"github.com/hama/hamaclock/internal/config"
)

func TestMoveCursorWraps(t *testing.T) {
	m := New()
	m.SetConfig(config.Default())

	if got := m.Cursor(); got != 0 {
		t.Fatalf("initial cursor = %d, want 0", got)
	}

	m.MoveCursor(-1)
	if got := m.Cursor(); got != 2 {
		t.Errorf("cursor after wrapping left = %d, want 2", got)
	}

	m.MoveCursor(1)
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor after wrapping right = %d, want 0", got)
	}
}

func TestMoveCursorEmptyIsNoop(t *testing.T) {
	m := New()
	m.MoveCursor(1)
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor on empty bar = %d, want 0", got)
	}
}

func TestSetConfigClampsCursor(t *testing.T) {
	m := New()
	m.SetConfig(config.Default())
	m.MoveCursor(2)

	smaller := config.Default()
	smaller.Slots = smaller.Slots[:1]
	m.SetConfig(smaller)

	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor after shrink = %d, want 0", got)
	}
}

func TestViewShowsEverySlot(t *testing.T) {
	m := New()
	cfg := config.Default()
	cfg.ActiveSlot = 1
	m.SetConfig(cfg)

	view := m.View()
	for _, code := range []string{"TYO", "LON", "NYC"} {
		if !strings.Contains(view, code) {
			t.Errorf("view missing slot code %q", code)
		}
	}
	if !strings.Contains(view, "●") {
		t.Error("view missing active slot marker")
	}
}
