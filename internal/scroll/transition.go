package scroll

// moveToPage slides to the page at index and makes it current right away.
// Listeners hear about the index the slide was last aimed at, even if
// CurrentPageIndex changed in between (e.g. through SelectPage).
func (c *Container) moveToPage(index int) error {
	if index < 0 || index >= c.pages.len() {
		return outOfRange("moveToPage", index, c.pages.len())
	}

	c.currentPage = index
	c.slideTarget = index
	toX := c.PositionForPage(index)

	if c.easingDirty {
		if c.slide != nil {
			c.slide.SetObserver(Observer{})
			c.animator.Unregister(c.slide)
			c.slide = nil
		}
		c.easingDirty = false
	}

	if c.slide == nil {
		c.slide = c.animator.NewMoveX(c.cfg.SlideDuration, c.host.X(), toX, c.cfg.Easing)
		c.slide.SetObserver(Observer{
			OnStarted:  c.slideStarted,
			OnFinished: c.slideFinished,
		})
		c.animator.Register(c.slide)
	} else {
		c.slide.Reset(c.cfg.SlideDuration, c.host.X(), toX)
	}

	c.log.WithField("page", index).Debug("moving to page")
	return nil
}

func (c *Container) slideStarted() {
	if c.listener != nil {
		c.listener.OnMoveToPageStarted(c.slideTarget)
	}
}

func (c *Container) slideFinished() {
	if c.listener != nil {
		c.listener.OnMoveToPageFinished(c.slideTarget)
	}
}

// SelectPage jumps to the page at index without animating
func (c *Container) SelectPage(index int) error {
	if index < 0 || index >= c.pages.len() {
		return outOfRange("selectPage", index, c.pages.len())
	}

	c.host.SetX(c.PositionForPage(index))
	c.currentPage = index
	return nil
}

// MoveToNextPage slides one page to the right. It does nothing on the last page.
func (c *Container) MoveToNextPage() {
	if c.currentPage+1 < c.pages.len() {
		if err := c.moveToPage(c.currentPage + 1); err != nil {
			c.log.WithError(err).Warn("move to next page failed")
		}
	}
}

// MoveToPreviousPage slides one page to the left. It does nothing on the first page.
func (c *Container) MoveToPreviousPage() {
	if c.currentPage > 0 {
		if err := c.moveToPage(c.currentPage - 1); err != nil {
			c.log.WithError(err).Warn("move to previous page failed")
		}
	}
}
