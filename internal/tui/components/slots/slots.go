// Package slots renders the row of city buttons under the clock, one
// per configured slot. The active slot drives the face; the cursor is
// where edit and enter act.
package slots

import (
	"fmt"

	"github.com/hama/hamaclock/internal/config"
	"github.com/hama/hamaclock/internal/tui/components/core"
	"github.com/hama/hamaclock/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Model is the slot button bar.
type Model struct {
	core.SizeableBase

	slots  []config.Slot
	active int
	cursor int
}

// New creates an empty slot bar; SetConfig fills it.
func New() *Model {
	return &Model{}
}

// SetConfig syncs the bar to a configuration snapshot. The cursor is
// clamped in case the slot list shrank.
func (s *Model) SetConfig(cfg config.Config) {
	s.slots = cfg.Slots
	s.active = cfg.ActiveSlot
	if s.cursor >= len(s.slots) {
		s.cursor = 0
	}
}

// Cursor returns the index the cursor is on.
func (s *Model) Cursor() int {
	return s.cursor
}

// MoveCursor shifts the cursor left or right, wrapping at the ends.
func (s *Model) MoveCursor(delta int) {
	if len(s.slots) == 0 {
		return
	}
	s.cursor = (s.cursor + delta + len(s.slots)) % len(s.slots)
}

// Init implements the Component interface.
func (s *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface.
func (s *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, nil
}

// View renders one button per slot: slot number, city code, and a dot
// on the active slot. The cursor slot gets the focused style.
func (s *Model) View() string {
	if len(s.slots) == 0 {
		return ""
	}
	theme := styles.CurrentTheme()

	buttons := make([]string, 0, len(s.slots))
	for i, slot := range s.slots {
		text := fmt.Sprintf("%d %s", i+1, slot.Code)
		if i == s.active {
			text = "● " + text
		}

		style := theme.S().Button
		if i == s.cursor {
			style = theme.S().ButtonFocused
		}
		buttons = append(buttons, style.Render(text))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(buttons)...)
	if s.Width > lipgloss.Width(bar) {
		bar = lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, bar)
	}
	return bar
}

func joinWithGap(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
