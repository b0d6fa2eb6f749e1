package dialog

import (
	"github.com/hama/hamaclock/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// DialogType identifies the type of dialog.
type DialogType string

const (
	CityPickerDialogType DialogType = "city_picker"
	HelpDialogType       DialogType = "help"
	QuitDialogType       DialogType = "quit"
)

// Manager manages all dialogs in the application.
type Manager struct {
	dialogs      map[DialogType]Dialog
	activeDialog DialogType
	eventBroker  *events.Broker
	width        int
	height       int
}

// NewManager creates a new dialog manager.
func NewManager(eventBroker *events.Broker) *Manager {
	m := &Manager{
		dialogs:     make(map[DialogType]Dialog),
		eventBroker: eventBroker,
	}

	m.dialogs[CityPickerDialogType] = NewCityPickerDialog()
	m.dialogs[HelpDialogType] = NewHelpDialog()
	m.dialogs[QuitDialogType] = NewQuitDialog()

	return m
}

// Init initializes all dialogs.
func (m *Manager) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.Init())
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the active dialog and publishes a close
// event (carrying the dialog's result) when it shuts.
func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		cmds = append(cmds, m.SetSize(wsm.Width, wsm.Height))
	}

	if m.activeDialog != "" {
		if d, ok := m.dialogs[m.activeDialog]; ok {
			closing := m.activeDialog
			model, cmd := d.Update(msg)
			if dd, ok := model.(Dialog); ok {
				m.dialogs[closing] = dd

				if !dd.IsOpen() {
					m.activeDialog = ""
					m.eventBroker.PublishAsync(events.Event{
						Type: events.DialogCloseEvent,
						Payload: events.DialogPayload{
							DialogID: string(closing),
							Data:     dd.GetResult(),
						},
					})
				}
			}
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the active dialog.
func (m *Manager) View() string {
	if m.activeDialog == "" {
		return ""
	}
	if d, ok := m.dialogs[m.activeDialog]; ok {
		return d.View()
	}
	return ""
}

// SetSize sets the size for all dialogs.
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// OpenDialog opens a specific dialog.
func (m *Manager) OpenDialog(dialogType DialogType) tea.Cmd {
	if d, ok := m.dialogs[dialogType]; ok {
		m.activeDialog = dialogType

		m.eventBroker.PublishAsync(events.Event{
			Type: events.DialogOpenEvent,
			Payload: events.DialogPayload{
				DialogID: string(dialogType),
			},
		})

		return d.Open()
	}
	return nil
}

// IsDialogOpen returns whether any dialog is open.
func (m *Manager) IsDialogOpen() bool {
	return m.activeDialog != ""
}

// GetActiveDialog returns the currently active dialog type.
func (m *Manager) GetActiveDialog() DialogType {
	return m.activeDialog
}

// SetPickTarget tells the city picker which slot it is editing.
func (m *Manager) SetPickTarget(slot int, currentCode string) {
	if d, ok := m.dialogs[CityPickerDialogType].(*CityPickerDialog); ok {
		d.SetTarget(slot, currentCode)
	}
}
