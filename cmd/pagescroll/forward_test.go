package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagescroll/internal/eventbus"
	"pagescroll/internal/ui"
)

func TestEventForwarderDeliversUntilClosed(t *testing.T) {
	f := newEventForwarder(4)

	var got []tea.Msg
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.Run(func(msg tea.Msg) { got = append(got, msg) })
	}()

	f.Forward(eventbus.ScanStartedEvent{Paths: []string{"/docs"}})
	f.Forward(eventbus.ScanCompletedEvent{DocumentsFound: 2})
	f.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Close")
	}

	require.Len(t, got, 2)
	assert.Equal(t, ui.EventMsg{Event: eventbus.ScanCompletedEvent{DocumentsFound: 2}}, got[1])

	// late bus handlers and a second shutdown are harmless
	assert.NotPanics(t, func() {
		f.Forward(eventbus.ErrorEvent{Message: "late"})
		f.Close()
	})
}

func TestEventForwarderDropsWhenFull(t *testing.T) {
	f := newEventForwarder(1)
	f.Forward(eventbus.ScanStartedEvent{})
	f.Forward(eventbus.ScanCompletedEvent{})
	f.Close()

	var n int
	f.Run(func(tea.Msg) { n++ })
	assert.Equal(t, 1, n)
}
