package dialog

import (
	_ "embed"
	"strings"

	"github.com/hama/hamaclock/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour/v2"
)

//go:embed help.md
var helpMarkdown string

// HelpDialog displays the key reference.
type HelpDialog struct {
	*BaseDialog

	rendered string
	width    int
}

// NewHelpDialog creates a new help dialog.
func NewHelpDialog() *HelpDialog {
	return &HelpDialog{
		BaseDialog: NewBaseDialog(""),
	}
}

// Init initializes the dialog.
func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (d *HelpDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q", "?", "enter":
			return d, d.Close()
		}
	}

	return d, nil
}

// SetSize sizes the dialog and re-renders the markdown at the new width.
func (d *HelpDialog) SetSize(width, height int) tea.Cmd {
	cmd := d.SizeableBase.SetSize(width, height)

	w := width - 14
	if w > 60 {
		w = 60
	}
	if w < 24 {
		w = 24
	}
	if w != d.width {
		d.width = w
		d.rendered = renderHelp(w)
	}
	return cmd
}

// View renders the dialog.
func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}
	if d.rendered == "" {
		d.rendered = renderHelp(60)
	}
	return d.RenderDialog(d.rendered)
}

func renderHelp(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.CurrentTheme().S().Markdown),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}

	rendered, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(rendered, "\n")
}
