package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagescroll/internal/domain"
	"pagescroll/internal/scroll"
)

func sizedCard(title string, x, w, h float32) *Card {
	c := NewCard(domain.NewDocument(title, "", ""))
	c.SetSize(w, h)
	c.SetPosition(x, 0)
	return c
}

func TestStageAttachDetach(t *testing.T) {
	s := NewStage()
	a := sizedCard("a", 0, 10, 5)

	s.Attach(a)
	s.Attach(a)
	assert.True(t, s.IsAttached(a))
	assert.Len(t, s.attached, 1)

	s.Detach(a)
	assert.False(t, s.IsAttached(a))
	s.Detach(a)
}

func TestStageHitTestFollowsTranslation(t *testing.T) {
	s := NewStage()
	a := sizedCard("a", 0, 10, 5)
	b := sizedCard("b", 10, 10, 5)
	s.RegisterTouchArea(a)
	s.RegisterTouchArea(b)

	assert.Equal(t, a, s.HitTest(3, 2))
	assert.Equal(t, b, s.HitTest(12, 2))
	assert.Nil(t, s.HitTest(25, 2))
	assert.Nil(t, s.HitTest(3, 5), "below the page")

	s.SetX(-10)
	assert.Equal(t, b, s.HitTest(3, 2))
	assert.Nil(t, s.HitTest(12, 2))

	s.UnregisterTouchArea(b)
	assert.Nil(t, s.HitTest(3, 2))
}

func TestTouchFromMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   scroll.TouchAction
		wantOK bool
	}{
		{"left press", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, scroll.TouchDown, true},
		{"right press", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"wheel", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
		{"drag", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, scroll.TouchMove, true},
		{"hover", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 0, false},
		{"release", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, scroll.TouchUp, true},
		{"left release", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, scroll.TouchUp, true},
		{"right release", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := touchFromMouse(tt.msg, 1)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, ev.Action)
			assert.Equal(t, float32(4), ev.X)
			assert.Equal(t, float32(2), ev.Y)
		})
	}
}
