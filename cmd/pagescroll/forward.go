package main

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"pagescroll/internal/eventbus"
	"pagescroll/internal/ui"
)

// eventForwarder hands bus events to the UI program. Bus handlers may still
// run after shutdown starts, so sends after Close are dropped.
type eventForwarder struct {
	mu     sync.Mutex
	ch     chan eventbus.DomainEvent
	closed bool
}

func newEventForwarder(size int) *eventForwarder {
	return &eventForwarder{ch: make(chan eventbus.DomainEvent, size)}
}

// Forward is an eventbus.EventHandler
func (f *eventForwarder) Forward(e eventbus.DomainEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	select {
	case f.ch <- e:
	default:
		// Channel full, drop event
		log.WithField("event", e.Type()).Warn("Event channel full, dropping event")
	}
}

// Run delivers events through send until Close is called
func (f *eventForwarder) Run(send func(tea.Msg)) {
	for event := range f.ch {
		send(ui.EventMsg{Event: event})
	}
}

// Close stops forwarding; Run returns once queued events are delivered
func (f *eventForwarder) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.ch)
	}
}
