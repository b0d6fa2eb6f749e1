package events

import "sync"

// Broker fans events out to subscribers. Channels are buffered; a
// subscriber that falls behind loses events rather than blocking a
// publisher, which is acceptable for UI notifications.
type Broker struct {
	subscribers map[EventType][]chan Event
	mu          sync.RWMutex
	bufferSize  int
}

// NewBroker creates a new event broker.
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  16,
	}
}

// Subscribe creates a subscription to the given event types, or to all
// events when none are named.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	if len(eventTypes) == 0 {
		eventTypes = []EventType{"*"}
	}
	for _, et := range eventTypes {
		b.subscribers[et] = append(b.subscribers[et], ch)
	}
	return ch
}

// Publish sends an event to every matching subscriber.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.Type] {
		select {
		case ch <- event:
		default:
		}
	}
	for _, ch := range b.subscribers["*"] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishAsync sends an event without waiting for delivery.
func (b *Broker) PublishAsync(event Event) {
	go b.Publish(event)
}

// Unsubscribe removes a channel from the given event types, or from
// everything when none are named, and closes it.
func (b *Broker) Unsubscribe(ch <-chan Event, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		for et := range b.subscribers {
			b.remove(et, ch)
		}
		return
	}
	for _, et := range eventTypes {
		b.remove(et, ch)
	}
}

func (b *Broker) remove(eventType EventType, target <-chan Event) {
	subs := b.subscribers[eventType]
	for i, ch := range subs {
		if ch == target {
			b.subscribers[eventType] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
	if len(b.subscribers[eventType]) == 0 {
		delete(b.subscribers, eventType)
	}
}
