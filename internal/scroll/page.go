package scroll

import (
	"github.com/tanema/gween/ease"
)

// Positioner is anything with a 2D position
type Positioner interface {
	X() float32
	Y() float32
	SetPosition(x, y float32)
}

// Bounded is anything with a rectangular area
type Bounded interface {
	Width() float32
	Height() float32
}

// Page is a visual element managed by the container.
// Pages are compared by identity, so implementations should be pointers.
type Page interface {
	Positioner
	Bounded
}

// Host is the scene graph the container lives in
type Host interface {
	Attach(p Page)
	Detach(p Page)
	RegisterTouchArea(p Page)
	UnregisterTouchArea(p Page)

	// X and SetX access the container's own horizontal position
	X() float32
	SetX(x float32)
}

// Observer receives animation lifecycle notifications
type Observer struct {
	OnStarted  func()
	OnFinished func()
}

// Animation is a horizontal-position animation bound to the container
type Animation interface {
	// Reset re-arms the animation with new bounds, keeping its easing
	Reset(duration, from, to float32)
	// SetObserver replaces the lifecycle observer
	SetObserver(o Observer)
}

// Animator creates and schedules animations on the host's update tick
type Animator interface {
	NewMoveX(duration, from, to float32, easing ease.TweenFunc) Animation
	Register(a Animation)
	Unregister(a Animation)
}

// PageListener is notified when an animated page transition starts and finishes
type PageListener interface {
	OnMoveToPageStarted(page int)
	OnMoveToPageFinished(page int)
}

// PageListenerFuncs adapts a pair of functions to PageListener. Nil fields are skipped.
type PageListenerFuncs struct {
	Started  func(page int)
	Finished func(page int)
}

func (f PageListenerFuncs) OnMoveToPageStarted(page int) {
	if f.Started != nil {
		f.Started(page)
	}
}

func (f PageListenerFuncs) OnMoveToPageFinished(page int) {
	if f.Finished != nil {
		f.Finished(page)
	}
}
