package dialog

import (
	"github.com/hama/hamaclock/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// QuitDialog asks for confirmation before quitting.
type QuitDialog struct {
	*BaseDialog

	selectedNo bool // default to "No" for safety
}

// NewQuitDialog creates a new quit confirmation dialog.
func NewQuitDialog() *QuitDialog {
	return &QuitDialog{
		BaseDialog: NewBaseDialog("Quit Hama Clock?"),
		selectedNo: true,
	}
}

// Init initializes the dialog.
func (d *QuitDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (d *QuitDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			// Second ctrl+c confirms the quit.
			return d, tea.Quit
		case "esc", "n", "N":
			return d, d.Close()
		case "y", "Y":
			return d, tea.Quit
		case "left", "right", "tab", "h", "l":
			d.selectedNo = !d.selectedNo
		case "enter", " ":
			if d.selectedNo {
				return d, d.Close()
			}
			return d, tea.Quit
		}
	}

	return d, nil
}

// View renders the dialog.
func (d *QuitDialog) View() string {
	if !d.isOpen {
		return ""
	}
	t := styles.CurrentTheme()
	s := t.S()

	question := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Render("Are you sure you want to quit?")

	yesStyle := s.Button
	noStyle := s.Button
	if d.selectedNo {
		noStyle = s.ButtonFocused
	} else {
		yesStyle = s.ButtonFocused
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Center,
		yesStyle.Render("Yes"),
		"  ",
		noStyle.Render("No"),
	)

	help := s.Subtle.Italic(true).
		Render("Ctrl+C again to quit • Esc to cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		question,
		"",
		buttons,
		"",
		help,
	)

	return d.RenderDialog(content)
}
