package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gmh5225/awesome-game-security-site/internal/browser"
	"github.com/gmh5225/awesome-game-security-site/internal/config"
	"github.com/gmh5225/awesome-game-security-site/internal/fetch"
	"github.com/gmh5225/awesome-game-security-site/internal/parser"
	"github.com/gmh5225/awesome-game-security-site/internal/search"
)

// ============================================================================
// Messages
// ============================================================================

// fetchResultMsg carries one completed fetch+parse cycle
type fetchResultMsg struct {
	doc   *parser.Document
	stale bool
	err   error
}

// refreshTickMsg fires on the periodic refresh schedule
type refreshTickMsg time.Time

// filterMsg triggers re-filtering after debounce
type filterMsg struct{}

// statusClearMsg clears the transient status line
type statusClearMsg struct{}

// debounceFilter returns a command that triggers filtering after a delay
func debounceFilter() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return filterMsg{}
	})
}

// ============================================================================
// Rows and navigation entries
// ============================================================================

// row pairs a displayed resource with its owning section header
type row struct {
	section  string
	resource *parser.Resource
}

// navEntry is one selectable line of the category panel.
// Parent is empty for top-level categories.
type navEntry struct {
	name   string
	parent string
}

// flattenNav turns the category tree into selectable panel lines
func flattenNav(cats []parser.Category) []navEntry {
	var entries []navEntry
	for _, cat := range cats {
		entries = append(entries, navEntry{name: cat.Name})
		for _, sub := range cat.SubCategories {
			entries = append(entries, navEntry{name: sub, parent: cat.Name})
		}
	}
	return entries
}

// flattenPage turns a grouped page into cursor-addressable rows
func flattenPage(p search.Page) []row {
	var rows []row
	for _, sec := range p.Sections {
		for _, r := range sec.Resources {
			rows = append(rows, row{section: sec.Name, resource: r})
		}
	}
	return rows
}

// ============================================================================
// Model
// ============================================================================

// Model is the Bubble Tea model for the whole browser: search input,
// grouped paginated results, category panel, and refresh scheduling.
type Model struct {
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	fetcher      *fetch.Fetcher
	parseOpts    parser.Options
	pageSize     int
	strategy     search.Strategy
	refreshEvery time.Duration

	// Last successful parse, replaced wholesale (last fetch wins)
	resources  []*parser.Resource
	categories []parser.Category

	query       search.Query
	typedMode   search.Mode // mode applied to typed input: free-text or tag
	hasSearched bool

	page        int
	pageData    search.Page
	rows        []row
	resultCount int
	cursor      int
	offset      int // viewport scroll offset, in rows

	navVisible bool
	navCursor  int
	navEntries []navEntry

	fetching  bool
	stale     bool
	lastErr   error
	lastFetch time.Time
	status    string
}

// NewModel builds a model from configuration and an initial query
func NewModel(fetcher *fetch.Fetcher, initial search.Query) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to search resources..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	ti.SetValue(initial.Text)

	typedMode := search.ModeFreeText
	if initial.Mode == search.ModeTag {
		typedMode = search.ModeTag
	}

	m := Model{
		textInput:    ti,
		fetcher:      fetcher,
		parseOpts:    parseOptions(),
		pageSize:     config.GetPageSize(),
		strategy:     search.Strategy(config.GetPageStrategy()),
		refreshEvery: config.GetRefreshInterval(),
		query:        initial,
		typedMode:    typedMode,
		hasSearched:  initial.Text != "",
		page:         1,
	}
	return m
}

func parseOptions() parser.Options {
	return parser.Options{
		KeyPolicy:      parser.KeyPolicy(config.GetDedupKey()),
		MergeLookahead: config.GetMergeLookahead(),
	}
}

// Init implements tea.Model: fetch immediately, then on the schedule
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startFetch(), m.scheduleRefresh())
}

// startFetch kicks off one fetch+parse cycle
func (m Model) startFetch() tea.Cmd {
	fetcher := m.fetcher
	opts := m.parseOpts
	return func() tea.Msg {
		text, stale, err := fetcher.Document(context.Background())
		if err != nil {
			return fetchResultMsg{err: err}
		}
		return fetchResultMsg{doc: parser.Parse(text, opts), stale: stale}
	}
}

// scheduleRefresh arms the next refresh tick
func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func clearStatusSoon() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = max(20, msg.Width-10)
		m.adjustOffset()
		return m, nil

	case refreshTickMsg:
		cmds := []tea.Cmd{m.scheduleRefresh()}
		// Single in-flight fetch per tick; overlapping fetches are a
		// latent bug, not a feature.
		if !m.fetching {
			m.fetching = true
			cmds = append(cmds, m.startFetch())
		}
		return m, tea.Batch(cmds...)

	case fetchResultMsg:
		return m.handleFetchResult(msg)

	case filterMsg:
		m.applyTypedQuery()
		return m, nil

	case statusClearMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	prevQuery := m.textInput.Value()
	var tiCmd tea.Cmd
	m.textInput, tiCmd = m.textInput.Update(msg)

	if m.textInput.Value() != prevQuery {
		return m, tea.Batch(tiCmd, debounceFilter())
	}
	return m, tiCmd
}

// handleFetchResult replaces the collection wholesale on success.
// Whichever fetch completes last wins; no merging across fetches.
func (m Model) handleFetchResult(msg fetchResultMsg) (tea.Model, tea.Cmd) {
	m.fetching = false

	if msg.err != nil {
		// Keep whatever we last parsed; the next tick retries.
		m.lastErr = msg.err
		m.status = "fetch failed"
		return m, clearStatusSoon()
	}

	m.lastErr = nil
	m.stale = msg.stale
	m.lastFetch = time.Now()
	m.resources = msg.doc.Resources
	m.categories = msg.doc.Categories
	m.navEntries = flattenNav(m.categories)
	m.navCursor = clamp(m.navCursor, 0, max(0, len(m.navEntries)-1))
	m.recompute()
	return m, nil
}

// handleKey returns (cmd, true) when the key was consumed
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return tea.Quit, true

	case "esc":
		switch {
		case m.navVisible:
			m.navVisible = false
		case m.textInput.Value() != "" || m.query.Text != "":
			m.textInput.SetValue("")
			m.query = search.Query{Mode: m.typedMode}
			m.hasSearched = false
			m.page = 1
			m.recompute()
		default:
			m.quitting = true
			return tea.Quit, true
		}
		return nil, true

	case "tab":
		m.navVisible = !m.navVisible
		return nil, true

	case "ctrl+t":
		if m.typedMode == search.ModeFreeText {
			m.typedMode = search.ModeTag
		} else {
			m.typedMode = search.ModeFreeText
		}
		m.applyTypedQuery()
		return nil, true

	case "ctrl+g":
		// Jump to a tag search on the selected resource's first tag.
		if r := m.selectedResource(); r != nil && len(r.Sections) > 0 {
			m.typedMode = search.ModeTag
			m.textInput.SetValue(r.Sections[0])
			m.applyTypedQuery()
		}
		return nil, true

	case "ctrl+r":
		if m.fetching {
			return nil, true
		}
		m.fetching = true
		return m.startFetch(), true

	case "enter":
		return m.handleEnter(), true

	case "ctrl+y":
		if r := m.selectedResource(); r != nil {
			if err := clipboard.WriteAll(r.URL); err != nil {
				m.status = "copy failed"
			} else {
				m.status = "copied " + r.URL
			}
			return clearStatusSoon(), true
		}
		return nil, true

	case "up", "ctrl+p":
		m.moveCursor(-1)
		return nil, true
	case "down", "ctrl+n":
		m.moveCursor(1)
		return nil, true
	case "pgup":
		m.moveCursor(-10)
		return nil, true
	case "pgdown":
		m.moveCursor(10)
		return nil, true

	case "left":
		if m.pageData.HasPrevious {
			m.page--
			m.cursor = 0
			m.offset = 0
			m.recompute()
		}
		return nil, true
	case "right":
		if m.pageData.HasMore {
			m.page++
			m.cursor = 0
			m.offset = 0
			m.recompute()
		}
		return nil, true
	}

	return nil, false
}

// handleEnter selects a category in the panel, or opens the selected
// resource in the system browser.
func (m *Model) handleEnter() tea.Cmd {
	if m.navVisible {
		if m.navCursor >= len(m.navEntries) {
			return nil
		}
		entry := m.navEntries[m.navCursor]
		m.query = search.Query{
			Text:           entry.name,
			Mode:           search.ModeNavigation,
			ParentCategory: entry.parent,
		}
		m.textInput.SetValue(entry.name)
		m.hasSearched = true
		m.navVisible = false
		m.page = 1
		m.cursor = 0
		m.offset = 0
		m.recompute()
		return nil
	}

	if r := m.selectedResource(); r != nil {
		if err := browser.Open(r.URL); err != nil {
			m.status = "open failed"
		} else {
			m.status = "opened " + r.URL
		}
		return clearStatusSoon()
	}
	return nil
}

// applyTypedQuery rebuilds the active query from the search box
func (m *Model) applyTypedQuery() {
	text := m.textInput.Value()
	m.query = search.Query{Text: text, Mode: m.typedMode}
	m.hasSearched = text != ""
	m.page = 1
	m.cursor = 0
	m.offset = 0
	m.recompute()
}

// recompute runs the filter → merge → paginate pipeline
func (m *Model) recompute() {
	filtered := search.Filter(m.resources, m.query)
	merged := parser.MergeByURL(filtered)
	m.resultCount = len(merged)
	m.pageData = search.Paginate(merged, m.page, m.pageSize, m.strategy)
	m.rows = flattenPage(m.pageData)
	m.cursor = clamp(m.cursor, 0, max(0, len(m.rows)-1))
	m.adjustOffset()
}

func (m *Model) selectedResource() *parser.Resource {
	if m.cursor < len(m.rows) {
		return m.rows[m.cursor].resource
	}
	return nil
}

// moveCursor moves the cursor by delta in the focused list
func (m *Model) moveCursor(delta int) {
	if m.navVisible {
		m.navCursor = clamp(m.navCursor+delta, 0, max(0, len(m.navEntries)-1))
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, max(0, len(m.rows)-1))
	m.adjustOffset()
}

// adjustOffset keeps the cursor inside the viewport window
func (m *Model) adjustOffset() {
	viewHeight := m.listHeight()
	if viewHeight <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+viewHeight {
		m.offset = m.cursor - viewHeight + 1
	}
	m.offset = clamp(m.offset, 0, max(0, len(m.rows)-viewHeight))
}

// listHeight estimates how many resource rows fit on screen.
// Each row renders as three lines plus occasional section headers.
func (m *Model) listHeight() int {
	if m.height == 0 {
		return 6
	}
	return max((m.height-8)/3, 1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
