package domain

import (
	"github.com/google/uuid"
)

// Document is the content shown on one page
type Document struct {
	ID     uuid.UUID
	Title  string
	Body   string
	Source string // file path, empty for generated pages
}

// NewDocument creates a document with a fresh ID
func NewDocument(title, body, source string) Document {
	return Document{
		ID:     uuid.New(),
		Title:  title,
		Body:   body,
		Source: source,
	}
}
