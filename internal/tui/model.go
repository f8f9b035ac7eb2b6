package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/glabrego/cargonav/internal/app"
	"github.com/glabrego/cargonav/internal/navbar"
	"github.com/glabrego/cargonav/internal/tracking"
	"github.com/glabrego/cargonav/internal/tui/actions"
	"github.com/glabrego/cargonav/internal/tui/platform"
	"github.com/glabrego/cargonav/internal/tui/state"
	tuitheme "github.com/glabrego/cargonav/internal/tui/theme"
	tuiview "github.com/glabrego/cargonav/internal/tui/view"
)

const (
	revealInterval = 30 * time.Millisecond
	revealStep     = 3
	statusTTL      = 4 * time.Second
	footerLines    = 3
)

type Model struct {
	app    *app.App
	queue  *URLQueue
	keys   keyMap
	theme  tuitheme.Theme
	input  textinput.Model
	logger *zap.Logger

	width  int
	height int

	scroll       int
	recentCursor int
	drawerCursor int
	revealed     int

	status      string
	statusIsErr bool
	statusID    int

	openURLFn func(string) error
	copyURLFn func(string) error
}

// NewModel builds the TUI on top of a. The queue must be the URL opener a's
// search panel was built with.
func NewModel(a *app.App, queue *URLQueue) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter tracking number"
	ti.CharLimit = 64
	ti.Prompt = "› "

	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if queue == nil {
		queue = &URLQueue{}
	}
	return Model{
		app:          a,
		queue:        queue,
		keys:         defaultKeyMap(),
		theme:        tuitheme.Default(),
		input:        ti,
		logger:       logger.Named("tui"),
		recentCursor: -1,
		openURLFn:    platform.OpenURLInBrowser,
		copyURLFn:    platform.CopyURLToClipboard,
	}
}

// SetURLHandlers replaces how tracking pages are opened and copied.
func (m *Model) SetURLHandlers(openFn, copyFn func(string) error) {
	m.openURLFn = openFn
	m.copyURLFn = copyFn
}

func (m Model) Init() tea.Cmd {
	return actions.RevealTickCmd(m.app.Carousel.ReplayKey(), revealInterval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, min(40, msg.Width-10))
		m.setScroll(m.scroll)
		return m, nil
	case actions.RevealTickMsg:
		if msg.Key != m.app.Carousel.ReplayKey() {
			return m, nil
		}
		total := len([]rune(m.app.Carousel.Current().Desc))
		if m.revealed >= total {
			return m, nil
		}
		m.revealed = min(total, m.revealed+revealStep)
		if m.revealed >= total {
			return m, nil
		}
		return m, actions.RevealTickCmd(msg.Key, revealInterval)
	case actions.OpenURLSuccessMsg:
		if !msg.Opened {
			m.logger.Info("browser unavailable, tracking link copied", zap.String("url", msg.URL))
		}
		return m.setStatus(msg.Status, false)
	case actions.OpenURLErrorMsg:
		m.logger.Warn("tracking page not opened", zap.String("url", msg.URL), zap.Error(msg.Err))
		return m.setStatus(msg.Err.Error()+": "+msg.URL, true)
	case actions.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.app.Search.IsOpen():
			return m.updateSearch(msg)
		case m.app.Drawer.IsOpen():
			return m.updateDrawer(msg)
		default:
			return m.updatePage(msg)
		}
	}
	return m, nil
}

func (m Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.OpenSearch):
		return m.openSearch()
	case key.Matches(msg, m.keys.OpenDrawer):
		m.app.Drawer.Open()
		m.input.Blur()
		m.drawerCursor = m.activeItemIndex()
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.app.Coordinator.CloseAll()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.setScroll(m.scroll - 1)
	case key.Matches(msg, m.keys.Down):
		m.setScroll(m.scroll + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.setScroll(m.scroll - state.PageStep(m.height, m.chromeLines()))
	case key.Matches(msg, m.keys.PageDown):
		m.setScroll(m.scroll + state.PageStep(m.height, m.chromeLines()))
	case key.Matches(msg, m.keys.PrevSlide):
		if m.onHome() {
			m.app.Carousel.Prev()
			return m.restartReveal()
		}
	case key.Matches(msg, m.keys.NextSlide):
		if m.onHome() {
			m.app.Carousel.Next()
			return m.restartReveal()
		}
	case key.Matches(msg, m.keys.Enter):
		if m.onHome() && m.app.Carousel.Len() > 0 {
			slide := m.app.Carousel.Current()
			if slide.Path != "" {
				m.navigate(slide.Path)
			}
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recent := m.app.Search.Recent()
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.app.Search.Close()
		m.input.Reset()
		m.input.Blur()
		m.recentCursor = -1
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.app.Search.SetInput(m.input.Value())
		if _, err := m.app.Search.SubmitInput(); err != nil {
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.recentCursor = -1
		return m, m.openQueuedURLs()
	case key.Matches(msg, m.keys.HistoryUp):
		if len(recent) > 0 {
			m.recentCursor = state.ClampCursor(m.recentCursor-1, len(recent))
			m.input.SetValue(recent[m.recentCursor].String())
			m.input.CursorEnd()
			m.app.Search.SetInput(m.input.Value())
		}
		return m, nil
	case key.Matches(msg, m.keys.HistoryDown):
		if len(recent) > 0 {
			m.recentCursor = state.ClampCursor(m.recentCursor+1, len(recent))
			m.input.SetValue(recent[m.recentCursor].String())
			m.input.CursorEnd()
			m.app.Search.SetInput(m.input.Value())
		}
		return m, nil
	case key.Matches(msg, m.keys.DeleteEntry):
		if q, ok := m.selectedRecent(); ok {
			m.app.Search.DeleteHistoryEntry(q)
			m.recentCursor = state.ClampCursor(m.recentCursor, len(recent)-1)
			if len(recent) == 1 {
				m.recentCursor = -1
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.ClearAll):
		m.app.Search.ClearHistory()
		m.recentCursor = -1
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recentCursor = -1
	}
	m.app.Search.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.app.Drawer.Close()
	case key.Matches(msg, m.keys.OpenSearch):
		return m.openSearch()
	case key.Matches(msg, m.keys.Up):
		m.drawerCursor = state.ClampCursor(m.drawerCursor-1, len(navbar.Items))
	case key.Matches(msg, m.keys.Down):
		m.drawerCursor = state.ClampCursor(m.drawerCursor+1, len(navbar.Items))
	case key.Matches(msg, m.keys.Enter):
		item := navbar.Items[state.ClampCursor(m.drawerCursor, len(navbar.Items))]
		m.app.Drawer.SelectItem(item)
		m.resetScroll()
	}
	return m, nil
}

func (m Model) openSearch() (tea.Model, tea.Cmd) {
	m.app.Search.Open()
	m.recentCursor = -1
	m.input.SetValue(m.app.Search.Input())
	return m, m.input.Focus()
}

func (m Model) openQueuedURLs() tea.Cmd {
	urls := m.queue.Drain()
	switch len(urls) {
	case 0:
		return nil
	case 1:
		return actions.OpenURLCmd(urls[0], m.openURLFn, m.copyURLFn)
	}
	cmds := make([]tea.Cmd, 0, len(urls))
	for _, url := range urls {
		cmds = append(cmds, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn))
	}
	return tea.Batch(cmds...)
}

func (m Model) restartReveal() (tea.Model, tea.Cmd) {
	m.revealed = 0
	return m, actions.RevealTickCmd(m.app.Carousel.ReplayKey(), revealInterval)
}

func (m Model) setStatus(status string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = status
	m.statusIsErr = isErr
	return m, actions.ClearStatusCmd(m.statusID, statusTTL)
}

func (m *Model) navigate(path string) {
	m.app.Router.Navigate(path)
	m.logger.Debug("navigated", zap.String("path", path), zap.Int("visits", m.app.Router.Visits()))
	m.resetScroll()
}

func (m *Model) resetScroll() {
	m.scroll = 0
	m.app.Scroll.Sample(0)
}

// setScroll moves the page and reports the new offset to the header.
func (m *Model) setScroll(offset int) {
	m.scroll = state.ClampScroll(offset, len(m.pageLines()), m.bodyHeight())
	m.app.Scroll.Sample(m.scroll)
}

func (m Model) onHome() bool {
	return m.app.Router.Current() == "/"
}

func (m Model) activeItemIndex() int {
	for i, item := range navbar.Items {
		if m.app.Router.IsActive(item.Path) {
			return i
		}
	}
	return 0
}

func (m Model) chromeLines() int {
	header := 2
	if m.app.Scroll.IsPinned() {
		header = 1
	}
	return header + footerLines + 1
}

func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(1, m.height-m.chromeLines())
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(20, m.width-2)
}

func (m Model) pageLines() []string {
	site := m.app.Site
	width := m.contentWidth()
	switch path := m.app.Router.Current(); path {
	case "/":
		var lines []string
		if m.app.Carousel.Len() > 0 {
			slide := m.app.Carousel.Current()
			lines = tuiview.Hero(tuiview.HeroParams{
				Slide:    slide,
				Index:    m.app.Carousel.Index(),
				Count:    m.app.Carousel.Len(),
				Revealed: state.Reveal(slide.Desc, m.revealed),
				Width:    width,
			}, m.theme)
		}
		lines = append(lines, tuiview.About(site.About, width, m.theme)...)
		for _, item := range navbar.Items {
			if item.Path == "/" || item.Path == "/about" {
				continue
			}
			if body, ok := site.Page(item.Path); ok {
				lines = append(lines, tuiview.Section(body, width, m.theme)...)
			}
		}
		return lines
	case "/about":
		return tuiview.About(site.About, width, m.theme)
	default:
		body, _ := site.Page(path)
		return tuiview.StaticPage(path, body, width, m.theme)
	}
}

func (m Model) overlayName() string {
	switch {
	case m.app.Search.IsOpen():
		return "search"
	case m.app.Drawer.IsOpen():
		return "menu"
	}
	return ""
}

func (m Model) mode() tuiview.Mode {
	switch {
	case m.app.Search.IsOpen():
		return tuiview.ModeSearch
	case m.app.Drawer.IsOpen():
		return tuiview.ModeDrawer
	}
	return tuiview.ModePage
}

func (m Model) View() string {
	header := tuiview.Header(tuiview.HeaderParams{
		Brand:      m.app.Site.Brand,
		Tagline:    "Track Your Package",
		ActivePath: m.app.Router.Current(),
		Pinned:     m.app.Scroll.IsPinned(),
		Width:      m.width,
	}, m.theme)

	lines := m.pageLines()
	if h := m.bodyHeight(); h > 0 {
		start := state.ClampScroll(m.scroll, len(lines), h)
		end := min(len(lines), start+h)
		lines = lines[start:end]
	}
	if m.app.Coordinator.DimmerVisible() {
		lines = tuiview.Dim(lines, m.theme)
	}

	var overlay string
	switch {
	case m.app.Search.IsOpen():
		recent := m.app.Search.Recent()
		overlay = tuiview.SearchPanel(tuiview.SearchPanelParams{
			Brand:    m.app.Site.Brand,
			Input:    m.input.View(),
			Message:  m.app.Search.Message(),
			Recent:   recent,
			Selected: m.recentCursor,
			Width:    min(60, m.contentWidth()),
		}, m.theme)
	case m.app.Drawer.IsOpen():
		overlay = tuiview.Drawer(tuiview.DrawerParams{
			ActivePath: m.app.Router.Current(),
			Cursor:     m.drawerCursor,
			Width:      min(30, m.contentWidth()),
		}, m.theme)
	}

	page := m.app.Router.Current()
	if item, ok := navbar.ItemByPath(page); ok {
		page = item.Label
	}
	footer := tuiview.Footer(tuiview.FooterParams{
		Path:        page,
		Slide:       m.app.Carousel.Index(),
		Slides:      m.app.Carousel.Len(),
		Recent:      m.app.History.Len(),
		Pinned:      m.app.Scroll.IsPinned(),
		Overlay:     m.overlayName(),
		Status:      m.status,
		StatusIsErr: m.statusIsErr,
	}, m.theme)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	if overlay != "" {
		b.WriteString(overlay)
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(tuiview.Toolbar(m.mode())))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// selectedRecent returns the recent search under the cursor, if any.
func (m Model) selectedRecent() (tracking.Query, bool) {
	recent := m.app.Search.Recent()
	if m.recentCursor < 0 || m.recentCursor >= len(recent) {
		return "", false
	}
	return recent[m.recentCursor], true
}
