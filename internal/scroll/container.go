// Package scroll implements a horizontally paged scroll container:
// pages laid out side by side, dragged with a single pointer and settled
// onto a page with an animated slide.
//
// A Container is not safe for concurrent use. Touch events, animation
// callbacks and page mutations must all arrive on the host's update thread.
package scroll

import (
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
)

// Container owns the page sequence and the scroll configuration.
// It drives its own position through the Host and its slides through the Animator.
type Container struct {
	host     Host
	animator Animator
	cfg      Config
	log      *logrus.Entry

	pages       pageList
	currentPage int
	gesture     gestureSession
	listener    PageListener

	slide       Animation
	slideTarget int
	easingDirty bool
}

// New creates a container bound to host, animating through animator
func New(host Host, animator Animator, cfg Config) *Container {
	if cfg.Easing == nil {
		cfg.Easing = ease.Linear
	}
	if cfg.SlideDuration <= 0 {
		cfg.SlideDuration = DefaultSlideDuration
	}
	return &Container{
		host:     host,
		animator: animator,
		cfg:      cfg,
		log:      logrus.WithField("component", "scroll"),
	}
}

// Config returns a copy of the current configuration
func (c *Container) Config() Config {
	return c.cfg
}

// SetPageListener registers the transition listener, replacing any previous one.
// Pass nil to stop notifications.
func (c *Container) SetPageListener(l PageListener) {
	c.listener = l
}

// SetEaseFunction changes the slide easing. The animation is rebuilt on the next slide.
func (c *Container) SetEaseFunction(fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	c.cfg.Easing = fn
	c.easingDirty = true
}

func (c *Container) SetPageWidth(w float32) {
	c.cfg.PageWidth = w
}

func (c *Container) SetPageHeight(h float32) {
	c.cfg.PageHeight = h
}

func (c *Container) SetOffset(offset float32) {
	c.cfg.Offset = offset
}

func (c *Container) SetSlideThreshold(v float32) {
	c.cfg.SlideThreshold = v
}

func (c *Container) SetPageChangeThreshold(v float32) {
	c.cfg.PageChangeThreshold = v
}

// SetSlideDuration sets the slide length in seconds. Non-positive values are ignored.
func (c *Container) SetSlideDuration(seconds float32) {
	if seconds > 0 {
		c.cfg.SlideDuration = seconds
	}
}

func (c *Container) PageWidth() float32 {
	return c.cfg.PageWidth
}

func (c *Container) PageHeight() float32 {
	return c.cfg.PageHeight
}

// PageCount returns the number of pages
func (c *Container) PageCount() int {
	return c.pages.len()
}

// Pages returns the pages in display order
func (c *Container) Pages() []Page {
	return c.pages.snapshot()
}

// PageAt returns the page at index, or nil when out of range
func (c *Container) PageAt(index int) Page {
	if index < 0 || index >= c.pages.len() {
		return nil
	}
	return c.pages.at(index)
}

// IndexOf returns the page's index, or -1 if it is not in the container
func (c *Container) IndexOf(p Page) int {
	return c.pages.indexOf(p)
}

// CurrentPageIndex returns the settled page index
func (c *Container) CurrentPageIndex() int {
	return c.currentPage
}

// CurrentPage returns the settled page, or nil when there are no pages
func (c *Container) CurrentPage() Page {
	return c.PageAt(c.currentPage)
}

func (c *Container) IsFirstPage(p Page) bool {
	return p != nil && c.pages.first() == p
}

func (c *Container) IsLastPage(p Page) bool {
	return p != nil && c.pages.last() == p
}

// State returns the gesture state of the current touch session
func (c *Container) State() ScrollState {
	return c.gesture.state
}
