package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pagescroll/internal/scroll"
)

// touchFromMouse turns a terminal mouse event into a touch sample.
// Only the left button drags; y is made relative to the top of the page strip.
func touchFromMouse(msg tea.MouseMsg, stripTop int) (scroll.TouchEvent, bool) {
	ev := scroll.TouchEvent{X: float32(msg.X), Y: float32(msg.Y - stripTop)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Action = scroll.TouchDown
	case tea.MouseActionMotion:
		// Cell motion mode reports motion only while a button is held
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Action = scroll.TouchMove
	case tea.MouseActionRelease:
		// Terminals without SGR mouse mode report every release as button none
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return ev, false
		}
		ev.Action = scroll.TouchUp
	default:
		return ev, false
	}
	return ev, true
}
