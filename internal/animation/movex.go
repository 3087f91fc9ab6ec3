package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"pagescroll/internal/scroll"
)

// MoveX tweens a horizontal position. It stays registered after finishing
// so it can be reset and played again.
type MoveX struct {
	tween    *gween.Tween
	easing   ease.TweenFunc
	from, to float32
	setX     func(x float32)
	observer scroll.Observer

	started  bool
	finished bool
}

// Reset rewinds the move with new bounds and keeps the easing function
func (m *MoveX) Reset(duration, from, to float32) {
	m.tween = gween.New(from, to, duration, m.easing)
	m.from, m.to = from, to
	m.started = false
	m.finished = false
}

func (m *MoveX) SetObserver(o scroll.Observer) {
	m.observer = o
}

// Bounds returns the start and end positions
func (m *MoveX) Bounds() (from, to float32) {
	return m.from, m.to
}

func (m *MoveX) Finished() bool {
	return m.finished
}

func (m *MoveX) update(dt float32) {
	if m.finished {
		return
	}
	if !m.started {
		m.started = true
		if m.observer.OnStarted != nil {
			m.observer.OnStarted()
		}
	}

	x, done := m.tween.Update(dt)
	if m.setX != nil {
		m.setX(x)
	}
	if done {
		m.finished = true
		if m.observer.OnFinished != nil {
			m.observer.OnFinished()
		}
	}
}
