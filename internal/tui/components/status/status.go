// Package status implements the one-line status bar: persistent left
// content plus transient right-aligned messages that clear themselves.
package status

import (
	"time"

	"github.com/hama/hamaclock/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// MessageType represents the type of status message.
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// message is a transient status bar message.
type message struct {
	content   string
	kind      MessageType
	timestamp time.Time
}

// Component implements the status bar.
type Component struct {
	msg         *message
	width       int
	leftContent string
	clearAfter  time.Duration
}

// New creates a status bar component.
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetMessage shows a message and schedules its removal.
func (c *Component) SetMessage(content string, kind MessageType) tea.Cmd {
	c.msg = &message{
		content:   content,
		kind:      kind,
		timestamp: time.Now(),
	}
	stamp := c.msg.timestamp
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message.
func (c *Component) ShowInfo(msg string) tea.Cmd {
	return c.SetMessage(msg, Info)
}

// ShowWarning shows a warning message.
func (c *Component) ShowWarning(msg string) tea.Cmd {
	return c.SetMessage(msg, Warning)
}

// ShowError shows an error message.
func (c *Component) ShowError(msg string) tea.Cmd {
	return c.SetMessage(msg, Error)
}

// ShowSuccess shows a success message.
func (c *Component) ShowSuccess(msg string) tea.Cmd {
	return c.SetMessage(msg, Success)
}

// SetLeftContent sets the persistent left side content.
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// SetSize implements the Sizeable interface.
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// clearMessageMsg is sent when a status message should be cleared.
type clearMessageMsg struct {
	timestamp time.Time
}

// Init implements the Component interface.
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if clear, ok := msg.(clearMessageMsg); ok {
		// Only clear if this is still the message that scheduled it.
		if c.msg != nil && clear.timestamp.Equal(c.msg.timestamp) {
			c.msg = nil
		}
	}
	return c, nil
}

// View implements the Component interface.
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}
	theme := styles.CurrentTheme()

	barStyle := lipgloss.NewStyle().
		Width(c.width).
		Height(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	left := c.leftContent
	right := ""
	if c.msg != nil {
		right = c.styledMessage(theme)
	}

	avail := c.width - 2
	gap := avail - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Message wins over the left content when space runs out.
		return barStyle.Render(right)
	}

	return barStyle.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

func (c *Component) styledMessage(theme *styles.Theme) string {
	switch c.msg.kind {
	case Success:
		return theme.S().Success.Render(c.msg.content)
	case Warning:
		return theme.S().Warning.Render(c.msg.content)
	case Error:
		return theme.S().Error.Render(c.msg.content)
	default:
		return theme.S().Info.Render(c.msg.content)
	}
}
