package ui

import (
	"time"

	"pagescroll/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg is sent on a timer while a slide animation is running
type frameMsg time.Time

// pagerClosedMsg is sent when the document pager returns control
type pagerClosedMsg struct {
	err error
}
