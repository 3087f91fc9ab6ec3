package scroll

// ScrollState is the gesture state of a touch session
type ScrollState int

const (
	Idle ScrollState = iota
	Sliding
)

func (s ScrollState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// TouchAction is the phase of a touch sample
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
	TouchCancel
)

func (a TouchAction) String() string {
	switch a {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchEvent is a single pointer sample in container-parent coordinates
type TouchEvent struct {
	Action TouchAction
	X, Y   float32
}

// gestureSession lives from one Down to the following Up or Cancel
type gestureSession struct {
	originX float32 // touch x the drag is measured from
	baseX   float32 // container x when the touch went down
	state   ScrollState
}

// HandleTouch feeds one touch sample to the gesture state machine.
// It reports whether the event was consumed; unconsumed moves should reach children.
func (c *Container) HandleTouch(ev TouchEvent) bool {
	switch ev.Action {
	case TouchDown:
		c.gesture = gestureSession{
			originX: ev.X,
			baseX:   c.host.X(),
			state:   Idle,
		}
		return true

	case TouchMove:
		if c.gesture.state != Sliding && abs(ev.X-c.gesture.originX) >= c.cfg.SlideThreshold {
			c.gesture.state = Sliding
			// Measure from here so the page does not jump by the threshold
			c.gesture.originX = ev.X
			return true
		} else if c.gesture.state == Sliding {
			c.host.SetX(c.gesture.baseX + ev.X - c.gesture.originX)
			return true
		}
		return false

	case TouchUp, TouchCancel:
		if c.gesture.state == Sliding {
			c.settle(ev.X - c.gesture.originX)
		}
		return true

	default:
		return false
	}
}

// settle picks the page to land on after a slide of delta and moves there
func (c *Container) settle(delta float32) {
	target := c.currentPage
	if abs(delta) >= c.cfg.PageChangeThreshold {
		if delta < 0 && target < c.pages.len()-1 {
			target++
		} else if delta > 0 && target > 0 {
			target--
		}
	}

	if err := c.moveToPage(target); err != nil {
		c.log.WithError(err).Warn("slide could not settle")
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
