package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentDiscovered EventType = "DocumentDiscovered"
	EventScanStarted        EventType = "ScanStarted"
	EventScanCompleted      EventType = "ScanCompleted"
	EventScanRequested      EventType = "ScanRequested"
	EventPageAdded          EventType = "PageAdded"
	EventPageRemoved        EventType = "PageRemoved"
	EventPageMoveStarted    EventType = "PageMoveStarted"
	EventPageMoveFinished   EventType = "PageMoveFinished"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentDiscoveredEvent is emitted when a document that can become a page is found
type DocumentDiscoveredEvent struct {
	Document Document
}

func (e DocumentDiscoveredEvent) Type() EventType { return EventDocumentDiscovered }

// ScanStartedEvent is emitted when document scanning begins
type ScanStartedEvent struct {
	Paths []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when document scanning completes
type ScanCompletedEvent struct {
	DocumentsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new scan
type ScanRequestedEvent struct {
	Paths []string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// PageAddedEvent is emitted after a page joins the scroller
type PageAddedEvent struct {
	DocumentID string
	Title      string
	Index      int
}

func (e PageAddedEvent) Type() EventType { return EventPageAdded }

// PageRemovedEvent is emitted after a page leaves the scroller
type PageRemovedEvent struct {
	DocumentID string
	Title      string
}

func (e PageRemovedEvent) Type() EventType { return EventPageRemoved }

// PageMoveStartedEvent is emitted when a slide towards a page begins
type PageMoveStartedEvent struct {
	Index int
}

func (e PageMoveStartedEvent) Type() EventType { return EventPageMoveStarted }

// PageMoveFinishedEvent is emitted when a slide has settled on a page
type PageMoveFinishedEvent struct {
	Index      int
	DocumentID string
}

func (e PageMoveFinishedEvent) Type() EventType { return EventPageMoveFinished }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
