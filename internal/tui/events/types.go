package events

import (
	"github.com/hama/hamaclock/internal/cities"
	"github.com/hama/hamaclock/internal/config"
)

// EventType identifies the type of event.
type EventType string

const (
	// Config events
	ConfigAppliedEvent EventType = "config.applied"

	// Slot events
	SlotSelectedEvent EventType = "slot.selected"
	SlotAssignedEvent EventType = "slot.assigned"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	DialogOpenEvent    EventType = "ui.dialog.open"
	DialogCloseEvent   EventType = "ui.dialog.close"
)

// Event represents an event in the system.
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

// ConfigPayload carries the configuration snapshot the UI should
// render from. Published after load and after every mutation.
type ConfigPayload struct {
	Config config.Config
}

// SlotPayload describes a slot mutation.
type SlotPayload struct {
	Index int
	Slot  config.Slot
	City  cities.City
}

type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}

type DialogPayload struct {
	DialogID string
	Data     interface{}
}
