// Package animation runs tweened property animations on a frame tick.
package animation

import (
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"pagescroll/internal/scroll"
)

// Executor owns the registered animations and advances them on every frame.
// Like the container it drives, it is meant to be used from a single goroutine.
type Executor struct {
	setX       func(x float32)
	animations []*MoveX
	log        *logrus.Entry
}

// NewExecutor creates an executor whose MoveX animations write through setX
func NewExecutor(setX func(x float32)) *Executor {
	return &Executor{
		setX: setX,
		log:  logrus.WithField("component", "animation"),
	}
}

// NewMoveX creates an unregistered horizontal move
func (e *Executor) NewMoveX(duration, from, to float32, easing ease.TweenFunc) scroll.Animation {
	if easing == nil {
		easing = ease.Linear
	}
	return &MoveX{
		tween:  gween.New(from, to, duration, easing),
		easing: easing,
		from:   from,
		to:     to,
		setX:   e.setX,
	}
}

// Register schedules an animation. Registering twice has no effect.
func (e *Executor) Register(a scroll.Animation) {
	m, ok := a.(*MoveX)
	if !ok {
		e.log.Warnf("cannot register foreign animation %T", a)
		return
	}
	for _, existing := range e.animations {
		if existing == m {
			return
		}
	}
	e.animations = append(e.animations, m)
}

// Unregister removes an animation; it stops updating wherever it is
func (e *Executor) Unregister(a scroll.Animation) {
	m, ok := a.(*MoveX)
	if !ok {
		return
	}
	for i, existing := range e.animations {
		if existing == m {
			e.animations = append(e.animations[:i], e.animations[i+1:]...)
			return
		}
	}
}

// Update advances every registered animation by dt seconds
func (e *Executor) Update(dt float32) {
	// Callbacks may register or unregister, walk a copy
	current := make([]*MoveX, len(e.animations))
	copy(current, e.animations)
	for _, m := range current {
		m.update(dt)
	}
}

// Stop ends every running animation where it is. Stopped moves stay registered
// and report neither start nor finish until they are reset.
func (e *Executor) Stop() {
	for _, m := range e.animations {
		m.finished = true
	}
}

// Running reports whether any registered animation still has frames to play
func (e *Executor) Running() bool {
	for _, m := range e.animations {
		if !m.finished {
			return true
		}
	}
	return false
}

// Len returns the number of registered animations
func (e *Executor) Len() int {
	return len(e.animations)
}
