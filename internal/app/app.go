// Package app holds the clock's business logic: the configuration
// lifecycle and the two slot mutations. The TUI renders whatever app
// publishes and never touches the store directly.
package app

import (
	"fmt"
	"sync"

	"github.com/hama/hamaclock/internal/cities"
	"github.com/hama/hamaclock/internal/clock"
	"github.com/hama/hamaclock/internal/config"
	"github.com/hama/hamaclock/internal/tui/events"
)

// App wires the config store, the time source and the event broker.
//
// Mutations are optimistic: the working configuration is updated and
// applied (published to the UI) synchronously, then the durable save is
// fired off without waiting. A save that ultimately fails leaves the
// store stale; the UI keeps showing the optimistic state. That is the
// never-block-the-clock-face policy.
type App struct {
	Config *config.Store
	Clock  clock.Source

	broker *events.Broker

	mu  sync.Mutex
	cfg config.Config // working copy; authoritative for the UI
}

// New creates the app around a home directory and an event broker.
func New(homeDir string, broker *events.Broker) *App {
	return &App{
		Config: config.NewStore(homeDir),
		Clock:  clock.SystemSource{},
		broker: broker,
		cfg:    config.Default(),
	}
}

// Start loads the configuration and applies it. Apply runs even when
// the load fell back to defaults so the UI never hangs unconfigured.
func (a *App) Start() {
	a.Config.Load()

	a.mu.Lock()
	a.cfg = a.Config.Current()
	a.mu.Unlock()

	a.apply()

	if a.Config.Loaded() {
		a.status("Loaded "+a.Config.Path(), "info")
	} else {
		a.status("Using default configuration", "info")
	}
}

// Current returns a snapshot of the working configuration.
func (a *App) Current() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Clone()
}

// SelectSlot makes slot i the active one. Out-of-range indexes are
// ignored.
func (a *App) SelectSlot(i int) {
	a.mu.Lock()
	if i < 0 || i >= len(a.cfg.Slots) {
		a.mu.Unlock()
		return
	}
	a.cfg.ActiveSlot = i
	slot := a.cfg.Slots[i]
	a.mu.Unlock()

	city, _ := cities.Lookup(slot.Code)
	a.broker.Publish(events.Event{
		Type:    events.SlotSelectedEvent,
		Payload: events.SlotPayload{Index: i, Slot: slot, City: city},
	})
	a.applyAndSave()
}

// AssignCity points slot i at the city with the given code, leaving
// the active slot untouched. Unknown codes and bad indexes are ignored.
func (a *App) AssignCity(i int, code string) {
	city, ok := cities.Lookup(code)
	if !ok {
		return
	}

	a.mu.Lock()
	if i < 0 || i >= len(a.cfg.Slots) {
		a.mu.Unlock()
		return
	}
	slot := config.Slot{Code: city.Code, TZ: city.TZ}
	a.cfg.Slots[i] = slot
	a.mu.Unlock()

	a.broker.Publish(events.Event{
		Type:    events.SlotAssignedEvent,
		Payload: events.SlotPayload{Index: i, Slot: slot, City: city},
	})
	a.status(fmt.Sprintf("Slot %d → %s", i+1, city.Label()), "success")
	a.applyAndSave()
}

// apply publishes the current configuration snapshot. It is idempotent
// and safe to call redundantly; subscribers re-derive all visible state
// from the snapshot plus the current time.
func (a *App) apply() {
	a.broker.Publish(events.Event{
		Type:    events.ConfigAppliedEvent,
		Payload: events.ConfigPayload{Config: a.Current()},
	})
}

// applyAndSave applies synchronously, then persists fire-and-forget.
func (a *App) applyAndSave() {
	a.apply()
	go a.Config.Save(a.Current())
}

func (a *App) status(msg, kind string) {
	a.broker.Publish(events.Event{
		Type:    events.StatusMessageEvent,
		Payload: events.StatusMessagePayload{Message: msg, Type: kind},
	})
}
