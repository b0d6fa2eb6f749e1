package dialog

import (
	"github.com/hama/hamaclock/internal/tui/components/core"
	"github.com/hama/hamaclock/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// BaseDialog provides common dialog functionality: open/close state,
// a result slot, and centered overlay rendering.
type BaseDialog struct {
	core.FocusableBase
	core.SizeableBase

	title     string
	isOpen    bool
	result    interface{}
	cancelled bool
}

// NewBaseDialog creates a new base dialog.
func NewBaseDialog(title string) *BaseDialog {
	return &BaseDialog{title: title}
}

// IsOpen returns whether the dialog is open.
func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// Open opens the dialog.
func (d *BaseDialog) Open() tea.Cmd {
	d.isOpen = true
	d.cancelled = false
	d.result = nil
	return d.Focus()
}

// Close closes the dialog.
func (d *BaseDialog) Close() tea.Cmd {
	d.isOpen = false
	return d.Blur()
}

// Cancel closes the dialog as cancelled.
func (d *BaseDialog) Cancel() tea.Cmd {
	d.cancelled = true
	return d.Close()
}

// GetResult returns the dialog result.
func (d *BaseDialog) GetResult() interface{} {
	return d.result
}

// IsCancelled returns whether the dialog was cancelled.
func (d *BaseDialog) IsCancelled() bool {
	return d.cancelled
}

// SetResult sets the dialog result.
func (d *BaseDialog) SetResult(result interface{}) {
	d.result = result
}

// RenderDialog renders content inside the dialog frame, centered on
// the full-screen overlay.
func (d *BaseDialog) RenderDialog(content string) string {
	if !d.isOpen {
		return ""
	}
	theme := styles.CurrentTheme()

	var body string
	if d.title != "" {
		title := styles.RenderThemeGradient(d.title, true)
		body = lipgloss.JoinVertical(lipgloss.Left, title, "", content)
	} else {
		body = content
	}

	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderFocus).
		Padding(1, 2).
		Render(body)

	return lipgloss.Place(
		d.Width,
		d.Height,
		lipgloss.Center,
		lipgloss.Center,
		frame,
	)
}

// HandleEscape handles the escape key.
func (d *BaseDialog) HandleEscape() tea.Cmd {
	if d.isOpen {
		return d.Cancel()
	}
	return nil
}
