package scroll

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// Default values for a new container
const (
	DefaultSlideDuration       float32 = 0.3
	DefaultSlideThreshold      float32 = 30
	DefaultPageChangeThreshold float32 = 100
)

// ErrPageOutOfRange is returned when a page index does not name a page
var ErrPageOutOfRange = errors.New("page index out of range")

func outOfRange(op string, index, count int) error {
	return fmt.Errorf("%s: %w: index %d, page count %d", op, ErrPageOutOfRange, index, count)
}

// Config holds the container geometry and gesture tuning
type Config struct {
	PageWidth  float32
	PageHeight float32
	// Offset is subtracted from PageWidth to get the spacing between pages
	Offset float32

	// SlideThreshold is the drag distance before a touch becomes a slide
	SlideThreshold float32
	// PageChangeThreshold is the drag distance at release that commits to a neighbour page
	PageChangeThreshold float32

	SlideDuration float32
	Easing        ease.TweenFunc
}

// DefaultConfig returns a zero-sized config with default thresholds
func DefaultConfig() Config {
	return NewConfig(0, 0, DefaultSlideThreshold, DefaultPageChangeThreshold)
}

// NewConfig creates a config with the given geometry and thresholds
func NewConfig(pageWidth, pageHeight, slideThreshold, pageChangeThreshold float32) Config {
	return Config{
		PageWidth:           pageWidth,
		PageHeight:          pageHeight,
		SlideThreshold:      slideThreshold,
		PageChangeThreshold: pageChangeThreshold,
		SlideDuration:       DefaultSlideDuration,
		Easing:              ease.Linear,
	}
}

// spacing is the distance between two neighbouring page origins
func (c Config) spacing() float32 {
	return c.PageWidth - c.Offset
}
