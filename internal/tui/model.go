// Package tui assembles the terminal UI: the clock face, the slot bar,
// the status line and the modal dialogs, all driven by app events.
package tui

import (
	"time"

	"github.com/hama/hamaclock/internal/app"
	"github.com/hama/hamaclock/internal/clock"
	"github.com/hama/hamaclock/internal/tui/components/core"
	"github.com/hama/hamaclock/internal/tui/components/dialog"
	"github.com/hama/hamaclock/internal/tui/components/face"
	"github.com/hama/hamaclock/internal/tui/components/slots"
	"github.com/hama/hamaclock/internal/tui/components/status"
	"github.com/hama/hamaclock/internal/tui/events"
	"github.com/hama/hamaclock/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const redrawInterval = 500 * time.Millisecond

// Model is the root TUI model.
type Model struct {
	width  int
	height int

	// Components
	face          *face.Model
	slotBar       *slots.Model
	statusBar     *status.Component
	dialogManager *dialog.Manager

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// App holds all business logic
	app *app.App

	keys  KeyMap
	timer *core.Timer
}

// New creates the root TUI model from an app instance and event broker.
func New(appInstance *app.App, eventBroker *events.Broker) *Model {
	styles.SetDefaultManager(styles.NewManager("hama"))

	m := &Model{
		face:          face.New(),
		slotBar:       slots.New(),
		statusBar:     status.New(),
		dialogManager: dialog.NewManager(eventBroker),
		eventBroker:   eventBroker,
		app:           appInstance,
		keys:          DefaultKeyMap(),
		timer:         core.NewTimer("redraw", redrawInterval),
	}

	// Subscribe to all events
	m.eventSub = eventBroker.Subscribe()

	return m
}

// Init initializes all components, starts the redraw timer and kicks
// off the config load.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	cmds = append(cmds, m.face.Init())
	cmds = append(cmds, m.slotBar.Init())
	cmds = append(cmds, m.statusBar.Init())
	cmds = append(cmds, m.dialogManager.Init())

	cmds = append(cmds, m.listenForEvents())
	cmds = append(cmds, m.timer.Start())

	// Load config off the UI loop; the applied event syncs components.
	cmds = append(cmds, func() tea.Msg {
		m.app.Start()
		return nil
	})

	return tea.Batch(cmds...)
}

// Update handles all TUI updates and routes to components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Events from the broker arrive as messages.
	if event, ok := msg.(events.Event); ok {
		cmd := m.handleEvent(event)
		return m, tea.Batch(cmd, m.listenForEvents())
	}

	if tick, ok := msg.(core.TickMsg); ok {
		m.refreshTime()
		return m, m.timer.Update(tick)
	}

	// If a dialog is open it gets input first and keys stop there.
	if m.dialogManager.IsDialogOpen() {
		dialogModel, cmd := m.dialogManager.Update(msg)
		if dm, ok := dialogModel.(*dialog.Manager); ok {
			m.dialogManager = dm
		}
		cmds = append(cmds, cmd)

		if _, ok := msg.(tea.KeyPressMsg); ok {
			return m, tea.Batch(cmds...)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		const statusHeight = 1
		const slotBarHeight = 3

		faceHeight := m.height - statusHeight - slotBarHeight
		cmds = append(cmds, m.face.SetSize(m.width, faceHeight))
		cmds = append(cmds, m.slotBar.SetSize(m.width, slotBarHeight))
		cmds = append(cmds, m.statusBar.SetSize(m.width, statusHeight))
		cmds = append(cmds, m.dialogManager.SetSize(m.width, m.height))

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	var statusModel tea.Model
	statusModel, cmd = m.statusBar.Update(msg)
	if sbm, ok := statusModel.(*status.Component); ok {
		m.statusBar = sbm
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.dialogManager.OpenDialog(dialog.QuitDialogType)

	case key.Matches(msg, m.keys.Help):
		return m, m.dialogManager.OpenDialog(dialog.HelpDialogType)

	case key.Matches(msg, m.keys.Slot):
		i := int(msg.String()[0] - '1')
		m.app.SelectSlot(i)
		return m, nil

	case key.Matches(msg, m.keys.NextSlot):
		m.slotBar.MoveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevSlot):
		m.slotBar.MoveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.ChooseSlot):
		m.app.SelectSlot(m.slotBar.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.EditSlot):
		cursor := m.slotBar.Cursor()
		cfg := m.app.Current()
		code := ""
		if cursor >= 0 && cursor < len(cfg.Slots) {
			code = cfg.Slots[cursor].Code
		}
		m.dialogManager.SetPickTarget(cursor, code)
		return m, m.dialogManager.OpenDialog(dialog.CityPickerDialogType)
	}

	return m, nil
}

// refreshTime pushes the active slot's wall time into the face.
func (m *Model) refreshTime() {
	active := m.app.Current().Active()
	h, min, s := clock.InZone(m.app.Clock, active.TZ)
	m.face.SetTime(h, min, s)
}

// View renders the entire TUI.
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Starting…")
	}

	if m.dialogManager.IsDialogOpen() {
		if dialogView := m.dialogManager.View(); dialogView != "" {
			return tea.NewView(dialogView)
		}
	}

	theme := styles.CurrentTheme()

	const statusHeight = 1
	const slotBarHeight = 3

	faceView := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - statusHeight - slotBarHeight).
		Render(m.face.View())

	slotView := lipgloss.NewStyle().
		Width(m.width).
		Height(slotBarHeight).
		Render(m.slotBar.View())

	statusView := lipgloss.NewStyle().
		Width(m.width).
		Background(theme.BgBase).
		Foreground(theme.FgBase).
		Render(m.statusBar.View())

	return tea.NewView(lipgloss.JoinVertical(
		lipgloss.Left,
		faceView,
		slotView,
		statusView,
	))
}
