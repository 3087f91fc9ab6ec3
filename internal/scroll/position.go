package scroll

import "math"

// PositionForPage returns the container x that shows the given page
func (c *Container) PositionForPage(index int) float32 {
	return positionForPage(c.cfg, index)
}

// PageForPosition returns the page shown at container x, clamped to existing pages.
// Exact midpoints round toward the lower page.
func (c *Container) PageForPosition(x float32) int {
	return pageForPosition(c.cfg, x, c.pages.len())
}

func positionForPage(cfg Config, index int) float32 {
	return float32(index) * cfg.spacing() * -1
}

func pageForPosition(cfg Config, x float32, count int) int {
	spacing := cfg.spacing()
	if spacing == 0 || count == 0 {
		return 0
	}

	raw := -x / spacing
	page := int(math.Ceil(float64(raw)))
	if float32(page)-raw >= 0.5 {
		page--
	}

	if page > count-1 {
		page = count - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}
