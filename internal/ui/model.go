package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"pagescroll/internal/animation"
	"pagescroll/internal/config"
	"pagescroll/internal/domain"
	"pagescroll/internal/eventbus"
	"pagescroll/internal/scroll"
	"pagescroll/internal/ui/views"
)

// header line above the page strip
const stripTop = 1

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	stage    *Stage
	executor *animation.Executor
	scroller *scroll.Container

	keys      keyMap
	help      help.Model
	paginator paginator.Model
	styles    *views.Styles
	pager     *Pager

	width  int
	height int

	animating bool
	lastFrame time.Time
	dragging  bool // left button held on the strip

	status      string
	statusError bool
	scanning    bool
	notes       int
	readyMarker bool
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	stage := NewStage()
	executor := animation.NewExecutor(stage.SetX)

	p := paginator.New()
	p.Type = paginator.Dots
	styles := views.NewStyles()
	p.ActiveDot = styles.IndicatorActive.Render("•")
	p.InactiveDot = styles.IndicatorInactive.Render("•")

	m := &Model{
		bus:       bus,
		config:    cfg,
		stage:     stage,
		executor:  executor,
		scroller:  scroll.New(stage, executor, cfg.ScrollConfig()),
		keys:      newKeyMap(),
		help:      help.New(),
		paginator: p,
		styles:    styles,
		pager:     NewPager(),
	}
	m.scroller.SetPageListener(m)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// SetReadyMarker makes the header print a marker end-to-end tests wait for
func (m *Model) SetReadyMarker(on bool) {
	m.readyMarker = on
}

// Scroller exposes the page container
func (m *Model) Scroller() *scroll.Container {
	return m.scroller
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frameMsg:
		return m, m.advance(time.Time(msg))

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerClosedMsg:
		if msg.err != nil {
			log.WithError(msg.err).Error("pager failed")
			m.setError(fmt.Sprintf("Pager failed: %v", msg.err))
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.scroller.MoveToPreviousPage()
	case key.Matches(msg, m.keys.Next):
		m.scroller.MoveToNextPage()
	case key.Matches(msg, m.keys.First):
		m.selectPage(0)
	case key.Matches(msg, m.keys.Last):
		m.selectPage(m.scroller.PageCount() - 1)
	case key.Matches(msg, m.keys.Jump):
		m.selectPage(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Open):
		return m.openCurrent()
	case key.Matches(msg, m.keys.Add):
		m.addNote()
	case key.Matches(msg, m.keys.Remove):
		m.removeCurrent()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	}
	return m.startAnimating()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelLeft:
		m.scroller.MoveToPreviousPage()
		return m.startAnimating()
	case tea.MouseButtonWheelRight:
		m.scroller.MoveToNextPage()
		return m.startAnimating()
	}

	ev, ok := touchFromMouse(msg, stripTop)
	if !ok {
		return nil
	}
	// The scroller stays Sliding after a drag; a stray release must not settle it again
	if ev.Action == scroll.TouchUp && !m.dragging {
		return nil
	}

	wasSliding := m.dragging && m.scroller.State() == scroll.Sliding
	m.scroller.HandleTouch(ev)
	m.dragging = ev.Action != scroll.TouchUp

	// A release that never became a slide is a tap
	if ev.Action == scroll.TouchUp && !wasSliding {
		m.tap(ev.X, ev.Y)
	}
	return m.startAnimating()
}

// tap on a neighbouring page slides to it
func (m *Model) tap(x, y float32) {
	hit := m.stage.HitTest(x, y)
	if hit == nil {
		return
	}
	switch m.scroller.IndexOf(hit) - m.scroller.CurrentPageIndex() {
	case 1:
		m.scroller.MoveToNextPage()
	case -1:
		m.scroller.MoveToPreviousPage()
	}
}

func (m *Model) handleEvent(e eventbus.DomainEvent) tea.Cmd {
	switch event := e.(type) {
	case eventbus.DocumentDiscoveredEvent:
		m.AddDocument(event.Document)
	case eventbus.ScanStartedEvent:
		m.scanning = true
		m.setStatus("Scanning for documents...")
	case eventbus.ScanCompletedEvent:
		m.scanning = false
		m.setStatus(fmt.Sprintf("Found %d documents", event.DocumentsFound))
	case eventbus.ErrorEvent:
		m.setError(event.Message)
	}
	return m.startAnimating()
}

// AddDocument adds a page for doc. Documents from files keep path order
// whatever order they arrive in.
func (m *Model) AddDocument(doc domain.Document) {
	card := NewCard(doc)
	m.sizeCard(card)

	index := m.scroller.PageCount()
	if doc.Source != "" {
		for i, p := range m.scroller.Pages() {
			src := p.(*Card).doc.Source
			if src != "" && src > doc.Source {
				index = i
				break
			}
		}
	}

	m.scroller.InsertPage(card, index)
	m.stage.RegisterTouchArea(card)
	m.syncPaginator()
	m.publish(eventbus.PageAddedEvent{
		DocumentID: doc.ID.String(),
		Title:      doc.Title,
		Index:      m.scroller.IndexOf(card),
	})
}

func (m *Model) addNote() {
	m.notes++
	doc := domain.NewDocument(fmt.Sprintf("Note %d", m.notes), "", "")
	card := NewCard(doc)
	m.sizeCard(card)

	m.scroller.InsertPage(card, m.scroller.CurrentPageIndex()+1)
	m.stage.RegisterTouchArea(card)
	m.syncPaginator()
	m.publish(eventbus.PageAddedEvent{
		DocumentID: doc.ID.String(),
		Title:      doc.Title,
		Index:      m.scroller.IndexOf(card),
	})
	if m.scroller.PageCount() > 1 {
		m.scroller.MoveToNextPage()
	}
}

func (m *Model) removeCurrent() {
	card, ok := m.scroller.CurrentPage().(*Card)
	if !ok {
		return
	}
	m.scroller.RemovePage(card)
	m.syncPaginator()
	m.setStatus(fmt.Sprintf("Removed %s", card.doc.Title))
	m.publish(eventbus.PageRemovedEvent{
		DocumentID: card.doc.ID.String(),
		Title:      card.doc.Title,
	})
}

// selectPage jumps to index. A running slide is stopped first so it cannot
// carry the strip away from the selected page.
func (m *Model) selectPage(index int) {
	if index < 0 || index >= m.scroller.PageCount() {
		log.WithField("page", index).Debug("select ignored")
		return
	}
	m.executor.Stop()
	if err := m.scroller.SelectPage(index); err != nil {
		log.WithError(err).Debug("select ignored")
		return
	}
	m.syncPaginator()
}

func (m *Model) openCurrent() tea.Cmd {
	card, ok := m.scroller.CurrentPage().(*Card)
	if !ok {
		return nil
	}
	doc := card.Document()
	return func() tea.Msg {
		return pagerClosedMsg{err: m.pager.Show(doc)}
	}
}

// OnMoveToPageStarted implements scroll.PageListener
func (m *Model) OnMoveToPageStarted(page int) {
	m.syncPaginator()
	m.publish(eventbus.PageMoveStartedEvent{Index: page})
}

// OnMoveToPageFinished implements scroll.PageListener
func (m *Model) OnMoveToPageFinished(page int) {
	event := eventbus.PageMoveFinishedEvent{Index: page}
	if card, ok := m.scroller.PageAt(page).(*Card); ok {
		event.DocumentID = card.doc.ID.String()
		m.setStatus(fmt.Sprintf("Settled on %s", card.doc.Title))
	}
	m.syncPaginator()
	m.publish(event)
}

// startAnimating begins the frame loop if a slide is pending and no loop runs yet
func (m *Model) startAnimating() tea.Cmd {
	if m.animating || !m.executor.Running() {
		return nil
	}
	m.animating = true
	m.lastFrame = time.Now()
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	fps := m.config.UISettings.FrameRate
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// advance plays the running slides up to now
func (m *Model) advance(now time.Time) tea.Cmd {
	dt := float32(now.Sub(m.lastFrame).Seconds())
	m.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	m.executor.Update(dt)

	if m.executor.Running() {
		return m.nextFrame()
	}
	m.animating = false
	return nil
}

// relayout sizes every page to the available area and re-aligns on the current page
func (m *Model) relayout() {
	w, h := m.pageSize()
	m.scroller.SetPageWidth(w)
	m.scroller.SetPageHeight(h)
	for _, p := range m.scroller.Pages() {
		m.sizeCard(p.(*Card))
	}
	m.scroller.UpdatePages()

	if !m.executor.Running() && !m.sliding() && m.scroller.PageCount() > 0 {
		m.selectPage(m.scroller.CurrentPageIndex())
	}
}

func (m *Model) sizeCard(c *Card) {
	w, h := m.pageSize()
	c.SetSize(w, h)
}

// pageSize is the configured page size, falling back to the strip area
func (m *Model) pageSize() (float32, float32) {
	w := m.config.Scroll.PageWidth
	if w <= 0 {
		w = float32(m.width)
	}
	h := m.config.Scroll.PageHeight
	if h <= 0 {
		h = float32(m.stripHeight())
	}
	return w, h
}

func (m *Model) stripHeight() int {
	h := m.height - stripTop - lipgloss.Height(m.footer())
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) syncPaginator() {
	m.paginator.SetTotalPages(m.scroller.PageCount())
	m.paginator.Page = m.liveIndex()
}

// liveIndex is the page under the viewport, following the finger while sliding
func (m *Model) liveIndex() int {
	if m.sliding() || m.executor.Running() {
		return m.scroller.PageForPosition(m.stage.X())
	}
	return m.scroller.CurrentPageIndex()
}

// sliding reports whether a drag is moving the strip right now.
// The scroller keeps its Sliding state after release until the next press.
func (m *Model) sliding() bool {
	return m.dragging && m.scroller.State() == scroll.Sliding
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusError = true
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// View renders the header, the visible part of the page strip and the footer
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	m.paginator.Page = m.liveIndex()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.strip(),
		m.footer(),
	)
}

func (m *Model) header() string {
	title := m.styles.Title.Render("pagescroll")
	if m.readyMarker {
		title += " __READY__"
	}

	parts := []string{title}
	if n := m.scroller.PageCount(); n > 0 {
		parts = append(parts, m.styles.Status.Render(fmt.Sprintf("page %d/%d", m.scroller.CurrentPageIndex()+1, n)))
	}
	if m.sliding() {
		parts = append(parts, m.styles.StatusSliding.Render(m.scroller.State().String()))
	}
	if m.status != "" {
		style := m.styles.Status
		if m.statusError {
			style = m.styles.StatusError
		}
		parts = append(parts, style.Render(m.status))
	}

	line := parts[0]
	for _, p := range parts[1:] {
		line += m.styles.Dim.Render("  ·  ") + p
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m *Model) strip() string {
	height := m.stripHeight()
	if m.scroller.PageCount() == 0 {
		msg := "No pages yet"
		if m.scanning {
			msg = "Scanning for documents..."
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, m.styles.Empty.Render(msg))
	}

	current := m.liveIndex()
	var placements []views.Placement
	for i, p := range m.scroller.Pages() {
		card := p.(*Card)
		if !m.stage.IsAttached(card) {
			continue
		}
		left := int(math.Round(float64(m.stage.X() + card.X())))
		if left >= m.width || left+int(card.Width()) <= 0 {
			continue
		}
		placements = append(placements, views.Placement{
			Left:  left,
			Lines: card.Lines(m.styles, i == current),
		})
	}
	return views.ComposeStrip(placements, m.width, height)
}

func (m *Model) footer() string {
	var lines []string
	if m.config.UISettings.ShowIndicator && m.scroller.PageCount() > 1 {
		lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.paginator.View()))
	}
	if m.config.UISettings.ShowHelp {
		lines = append(lines, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
