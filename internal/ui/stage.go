package ui

import (
	"pagescroll/internal/scroll"
)

// Stage is the scene the scroller lives on. It tracks which pages are attached
// and which accept taps, and holds the scroller's horizontal translation.
type Stage struct {
	x          float32
	attached   []scroll.Page
	touchAreas []scroll.Page
}

// NewStage creates an empty stage
func NewStage() *Stage {
	return &Stage{}
}

func (s *Stage) X() float32 { return s.x }

func (s *Stage) SetX(x float32) { s.x = x }

func (s *Stage) Attach(p scroll.Page) {
	if indexOf(s.attached, p) < 0 {
		s.attached = append(s.attached, p)
	}
}

func (s *Stage) Detach(p scroll.Page) {
	s.attached = without(s.attached, p)
}

func (s *Stage) RegisterTouchArea(p scroll.Page) {
	if indexOf(s.touchAreas, p) < 0 {
		s.touchAreas = append(s.touchAreas, p)
	}
}

func (s *Stage) UnregisterTouchArea(p scroll.Page) {
	s.touchAreas = without(s.touchAreas, p)
}

// IsAttached reports whether p is on the stage
func (s *Stage) IsAttached(p scroll.Page) bool {
	return indexOf(s.attached, p) >= 0
}

// HitTest returns the touch area under the point, in stage coordinates, or nil
func (s *Stage) HitTest(x, y float32) scroll.Page {
	for _, p := range s.touchAreas {
		left := s.x + p.X()
		if x >= left && x < left+p.Width() && y >= p.Y() && y < p.Y()+p.Height() {
			return p
		}
	}
	return nil
}

func indexOf(pages []scroll.Page, p scroll.Page) int {
	for i, item := range pages {
		if item == p {
			return i
		}
	}
	return -1
}

func without(pages []scroll.Page, p scroll.Page) []scroll.Page {
	i := indexOf(pages, p)
	if i < 0 {
		return pages
	}
	return append(pages[:i:i], pages[i+1:]...)
}
