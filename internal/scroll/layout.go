package scroll

import "github.com/sirupsen/logrus"

// UpdatePages lays every page out left to right.
// Call it after changing page width or offset, e.g. on a terminal resize.
func (c *Container) UpdatePages() {
	spacing := c.cfg.spacing()
	for i, p := range c.pages.items {
		p.SetPosition(float32(i)*spacing, 0)
	}
}

// AddPage appends a page to the right end. Adding a page twice is a no-op.
func (c *Container) AddPage(p Page) {
	if p == nil || c.pages.contains(p) {
		return
	}
	c.pages.add(p)
	c.host.Attach(p)
	c.UpdatePages()
	c.log.WithField("pages", c.pages.len()).Debug("page added")
}

// InsertPage puts a page at index. Indexes below zero insert first, past the end append.
// A page already in the container is moved to index.
func (c *Container) InsertPage(p Page, index int) {
	if p == nil {
		return
	}
	if c.pages.remove(p) {
		c.pages.insert(p, index)
	} else {
		c.pages.insert(p, index)
		c.host.Attach(p)
	}
	c.UpdatePages()
	c.log.WithFields(logrus.Fields{
		"index": c.pages.indexOf(p),
		"pages": c.pages.len(),
	}).Debug("page inserted")
}

// RemovePage detaches a page and settles on the nearest remaining page.
// It does nothing if the page is not in the container.
func (c *Container) RemovePage(p Page) {
	if p == nil || !c.pages.contains(p) {
		return
	}
	c.host.UnregisterTouchArea(p)
	c.host.Detach(p)
	c.pages.remove(p)

	c.UpdatePages()

	if c.currentPage > c.pages.len()-1 {
		c.currentPage = c.pages.len() - 1
	}
	if c.currentPage < 0 {
		c.currentPage = 0
	}
	c.log.WithField("pages", c.pages.len()).Debug("page removed")

	if c.pages.len() == 0 {
		return
	}
	// Always resettle, the x position may point at the removed page
	if err := c.moveToPage(c.currentPage); err != nil {
		c.log.WithError(err).Warn("failed to settle after removal")
	}
}

// RemovePageAt removes the page at index. Out of range indexes are ignored.
func (c *Container) RemovePageAt(index int) {
	if index < 0 || index >= c.pages.len() {
		return
	}
	c.RemovePage(c.pages.at(index))
}

// ClearPages detaches every page, last first.
// The current page index and the container position are left untouched.
func (c *Container) ClearPages() {
	for i := c.pages.len() - 1; i >= 0; i-- {
		p := c.pages.removeAt(i)
		c.host.Detach(p)
		c.host.UnregisterTouchArea(p)
	}
}
