package ui

import (
	"pagescroll/internal/domain"
	"pagescroll/internal/ui/views"
)

// Card is a page showing one document
type Card struct {
	doc  domain.Document
	x, y float32
	w, h float32

	// rendered lines, valid for the size and focus they were drawn with
	cache        []string
	cacheW       int
	cacheH       int
	cacheCurrent bool
}

// NewCard creates a card for doc
func NewCard(doc domain.Document) *Card {
	return &Card{doc: doc}
}

func (c *Card) Document() domain.Document { return c.doc }

func (c *Card) X() float32 { return c.x }
func (c *Card) Y() float32 { return c.y }

func (c *Card) SetPosition(x, y float32) {
	c.x, c.y = x, y
}

func (c *Card) Width() float32  { return c.w }
func (c *Card) Height() float32 { return c.h }

// SetSize resizes the card; the next render redraws it
func (c *Card) SetSize(w, h float32) {
	c.w, c.h = w, h
}

// Lines returns the card drawn at its current size
func (c *Card) Lines(styles *views.Styles, current bool) []string {
	w, h := int(c.w), int(c.h)
	if c.cache != nil && c.cacheW == w && c.cacheH == h && c.cacheCurrent == current {
		return c.cache
	}
	c.cache = styles.RenderCard(views.CardContent{
		Title:  c.doc.Title,
		Body:   c.doc.Body,
		Source: c.doc.Source,
	}, w, h, current)
	c.cacheW, c.cacheH, c.cacheCurrent = w, h, current
	return c.cache
}
