package tui

import (
	"github.com/hama/hamaclock/internal/tui/components/dialog"
	"github.com/hama/hamaclock/internal/tui/components/status"
	"github.com/hama/hamaclock/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// listenForEvents waits for the next broker event.
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.eventSub
	}
}

// handleEvent processes events from the event broker.
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.ConfigAppliedEvent:
		if payload, ok := event.Payload.(events.ConfigPayload); ok {
			m.face.SetConfig(payload.Config)
			m.slotBar.SetConfig(payload.Config)
			m.statusBar.SetLeftContent(m.app.Config.Path())
			m.refreshTime()
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.statusBar.SetMessage(payload.Message, messageKind(payload.Type))
		}

	case events.DialogCloseEvent:
		if payload, ok := event.Payload.(events.DialogPayload); ok {
			if payload.DialogID == string(dialog.CityPickerDialogType) {
				// Cancelled picks carry no result.
				if pick, ok := payload.Data.(dialog.PickResult); ok {
					m.app.AssignCity(pick.Slot, pick.Code)
				}
			}
		}
	}

	return nil
}

func messageKind(kind string) status.MessageType {
	switch kind {
	case "warning":
		return status.Warning
	case "error":
		return status.Error
	case "success":
		return status.Success
	default:
		return status.Info
	}
}
