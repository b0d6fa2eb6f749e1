package app

import (
	"testing"
	"time"

	"github.com/hama/hamaclock/internal/config"
	"github.com/hama/hamaclock/internal/tui/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, <-chan events.Event) {
	t.Helper()
	broker := events.NewBroker()
	sub := broker.Subscribe()
	a := New(t.TempDir(), broker)
	a.Start()
	return a, sub
}

// drain collects events already delivered to sub.
func drain(sub <-chan events.Event) []events.Event {
	var out []events.Event
	for {
		select {
		case e := <-sub:
			out = append(out, e)
		default:
			return out
		}
	}
}

func eventsOfType(evs []events.Event, et events.EventType) []events.Event {
	var out []events.Event
	for _, e := range evs {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}

func TestStartAppliesEvenOnFreshHome(t *testing.T) {
	_, sub := newTestApp(t)

	applied := eventsOfType(drain(sub), events.ConfigAppliedEvent)
	require.Len(t, applied, 1, "start must apply once, defaults included")

	payload := applied[0].Payload.(events.ConfigPayload)
	assert.Equal(t, config.Default(), payload.Config)
}

func TestSelectSlot(t *testing.T) {
	a, sub := newTestApp(t)
	drain(sub)

	a.SelectSlot(2)

	assert.Equal(t, 2, a.Current().ActiveSlot)

	evs := drain(sub)
	require.Len(t, eventsOfType(evs, events.SlotSelectedEvent), 1)
	applied := eventsOfType(evs, events.ConfigAppliedEvent)
	require.Len(t, applied, 1, "every mutation re-applies")
	assert.Equal(t, 2, applied[0].Payload.(events.ConfigPayload).Config.ActiveSlot)

	// The durable save is fire-and-forget; wait for it to land.
	require.Eventually(t, func() bool {
		return a.Config.Current().ActiveSlot == 2
	}, 2*time.Second, 10*time.Millisecond, "save should eventually reach the store")
}

func TestSelectSlotOutOfRangeIgnored(t *testing.T) {
	a, sub := newTestApp(t)
	drain(sub)

	a.SelectSlot(99)
	a.SelectSlot(-1)

	assert.Equal(t, 0, a.Current().ActiveSlot)
	assert.Empty(t, drain(sub), "ignored mutations publish nothing")
}

func TestAssignCityLeavesActiveSlotAlone(t *testing.T) {
	a, sub := newTestApp(t)
	a.SelectSlot(1)
	drain(sub)

	a.AssignCity(1, "PAR")

	got := a.Current()
	assert.Equal(t, config.Slot{Code: "PAR", TZ: "Europe/Paris"}, got.Slots[1])
	assert.Equal(t, 1, got.ActiveSlot, "reassignment must not move the active slot")

	evs := drain(sub)
	assigned := eventsOfType(evs, events.SlotAssignedEvent)
	require.Len(t, assigned, 1)
	payload := assigned[0].Payload.(events.SlotPayload)
	assert.Equal(t, 1, payload.Index)
	assert.Equal(t, "Europe/Paris", payload.Slot.TZ)

	require.Eventually(t, func() bool {
		return a.Config.Current().Slots[1].Code == "PAR"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAssignCityUnknownCodeIgnored(t *testing.T) {
	a, sub := newTestApp(t)
	drain(sub)

	a.AssignCity(0, "XYZ")

	assert.Equal(t, config.Default().Slots[0], a.Current().Slots[0])
	assert.Empty(t, drain(sub))
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	broker := events.NewBroker()
	home := t.TempDir()
	a := New(home, broker)
	a.Start()

	// Saves are fire-and-forget and unordered between themselves, so
	// let each one land before the next mutation.
	a.AssignCity(0, "SYD")
	require.Eventually(t, func() bool {
		return a.Config.Current().Slots[0].Code == "SYD"
	}, 2*time.Second, 10*time.Millisecond)

	a.SelectSlot(2)
	require.Eventually(t, func() bool {
		return a.Config.Current().ActiveSlot == 2
	}, 2*time.Second, 10*time.Millisecond)

	restarted := New(home, events.NewBroker())
	restarted.Start()

	got := restarted.Current()
	assert.Equal(t, config.Slot{Code: "SYD", TZ: "Australia/Sydney"}, got.Slots[0])
	assert.Equal(t, 2, got.ActiveSlot)
}
