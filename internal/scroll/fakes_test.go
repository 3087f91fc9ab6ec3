package scroll

import (
	"github.com/tanema/gween/ease"
)

type testPage struct {
	name string
	x, y float32
	w, h float32
}

func newTestPage(name string) *testPage {
	return &testPage{name: name, w: 100, h: 50}
}

func (p *testPage) X() float32               { return p.x }
func (p *testPage) Y() float32               { return p.y }
func (p *testPage) SetPosition(x, y float32) { p.x, p.y = x, y }
func (p *testPage) Width() float32           { return p.w }
func (p *testPage) Height() float32          { return p.h }

type fakeHost struct {
	x        float32
	attached []Page
	detached []Page
	touchOff []Page
}

func (h *fakeHost) Attach(p Page)              { h.attached = append(h.attached, p) }
func (h *fakeHost) Detach(p Page)              { h.detached = append(h.detached, p) }
func (h *fakeHost) RegisterTouchArea(p Page)   {}
func (h *fakeHost) UnregisterTouchArea(p Page) { h.touchOff = append(h.touchOff, p) }
func (h *fakeHost) X() float32                 { return h.x }
func (h *fakeHost) SetX(x float32)             { h.x = x }

type fakeAnimation struct {
	duration float32
	from, to float32
	easing   ease.TweenFunc
	observer Observer
	resets   int
}

func (a *fakeAnimation) Reset(duration, from, to float32) {
	a.duration, a.from, a.to = duration, from, to
	a.resets++
}

func (a *fakeAnimation) SetObserver(o Observer) { a.observer = o }

// finish jumps the animation to its end the way an executor would
func (a *fakeAnimation) finish(h *fakeHost) {
	if a.observer.OnStarted != nil {
		a.observer.OnStarted()
	}
	h.SetX(a.to)
	if a.observer.OnFinished != nil {
		a.observer.OnFinished()
	}
}

type fakeAnimator struct {
	created      []*fakeAnimation
	registered   []Animation
	unregistered []Animation
}

func (f *fakeAnimator) NewMoveX(duration, from, to float32, easing ease.TweenFunc) Animation {
	a := &fakeAnimation{duration: duration, from: from, to: to, easing: easing}
	f.created = append(f.created, a)
	return a
}

func (f *fakeAnimator) Register(a Animation)   { f.registered = append(f.registered, a) }
func (f *fakeAnimator) Unregister(a Animation) { f.unregistered = append(f.unregistered, a) }

// last returns the most recently created animation
func (f *fakeAnimator) last() *fakeAnimation {
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}

type recordingListener struct {
	started  []int
	finished []int
}

func (r *recordingListener) OnMoveToPageStarted(page int)  { r.started = append(r.started, page) }
func (r *recordingListener) OnMoveToPageFinished(page int) { r.finished = append(r.finished, page) }

// newTestContainer builds a container with n pages of width 100
func newTestContainer(n int) (*Container, *fakeHost, *fakeAnimator, []*testPage) {
	host := &fakeHost{}
	anim := &fakeAnimator{}
	c := New(host, anim, NewConfig(100, 50, DefaultSlideThreshold, DefaultPageChangeThreshold))
	pages := make([]*testPage, n)
	for i := range pages {
		pages[i] = newTestPage(string(rune('a' + i)))
		c.AddPage(pages[i])
	}
	return c, host, anim, pages
}
