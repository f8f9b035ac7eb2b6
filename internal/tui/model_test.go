package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/glabrego/cargonav/internal/app"
	"github.com/glabrego/cargonav/internal/carrier"
	"github.com/glabrego/cargonav/internal/content"
	"github.com/glabrego/cargonav/internal/navbar"
	"github.com/glabrego/cargonav/internal/storage"
	"github.com/glabrego/cargonav/internal/tracking"
	"github.com/glabrego/cargonav/internal/tui/actions"
	tuiview "github.com/glabrego/cargonav/internal/tui/view"
)

const validID = "1Z999AA10123456784"

func newTestModel(t *testing.T) (Model, *app.App, *[]string) {
	t.Helper()
	site, err := content.Default()
	if err != nil {
		t.Fatalf("load site: %v", err)
	}
	queue := &URLQueue{}
	a := app.New(storage.NewMemoryStore(), site, carrier.UPS(), nil, queue)
	m := NewModel(a, queue)

	opened := &[]string{}
	m.SetURLHandlers(func(url string) error {
		*opened = append(*opened, url)
		return nil
	}, func(string) error { return errors.New("no clipboard") })

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), a, opened
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func TestModelUpdate_SubmitValidTrackingNumber(t *testing.T) {
	m, a, opened := newTestModel(t)

	m, _ = press(t, m, runes("/"), runes(validID))
	if !a.Search.IsOpen() {
		t.Fatal("expected search panel open")
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if a.Search.IsOpen() {
		t.Fatal("expected search panel closed after valid submit")
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input cleared, got %q", m.input.Value())
	}
	if got := a.History.Entries(); len(got) != 1 || got[0] != tracking.Query(validID) {
		t.Fatalf("unexpected history: %v", got)
	}
	if cmd == nil {
		t.Fatal("expected open URL command")
	}

	msg := cmd()
	success, ok := msg.(actions.OpenURLSuccessMsg)
	if !ok {
		t.Fatalf("expected success message, got %T", msg)
	}
	want := "https://www.ups.com/track?loc=en_US&tracknum=" + validID
	if success.URL != want || len(*opened) != 1 || (*opened)[0] != want {
		t.Fatalf("unexpected opened URL %q (%v)", success.URL, *opened)
	}

	updated, _ := m.Update(msg)
	m = updated.(Model)
	if m.status != "Opened tracking page in browser" || m.statusIsErr {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestModelUpdate_InvalidTrackingNumberKeepsPanelOpen(t *testing.T) {
	m, a, opened := newTestModel(t)

	m, cmd := press(t, m, runes("/"), runes("ABC"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for rejected input")
	}
	if !a.Search.IsOpen() {
		t.Fatal("expected search panel to stay open")
	}
	if m.input.Value() != "ABC" {
		t.Fatalf("expected input kept, got %q", m.input.Value())
	}
	if !strings.Contains(a.Search.Message(), "must start with '1Z'") {
		t.Fatalf("unexpected message %q", a.Search.Message())
	}
	if len(*opened) != 0 || a.History.Len() != 0 {
		t.Fatal("expected no side effects")
	}
	if view := tuiview.StripANSI(m.View()); !strings.Contains(view, "Invalid tracking number") {
		t.Fatalf("expected validation message in view, got: %s", view)
	}
}

func TestModelUpdate_TypingQDoesNotQuit(t *testing.T) {
	m, a, _ := newTestModel(t)

	m, _ = press(t, m, runes("/"), runes("q"))
	if !a.Search.IsOpen() {
		t.Fatal("expected search panel still open")
	}
	if m.input.Value() != "q" || a.Search.Input() != "q" {
		t.Fatalf("expected q typed into input, got %q", m.input.Value())
	}
}

func TestModelUpdate_QuitFromPage(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit message")
	}
}

func TestModelUpdate_OverlaysAreMutuallyExclusive(t *testing.T) {
	m, a, _ := newTestModel(t)

	m, _ = press(t, m, runes("m"))
	if !a.Drawer.IsOpen() || !a.Coordinator.DimmerVisible() {
		t.Fatal("expected drawer open with dimmer")
	}
	m, _ = press(t, m, runes("/"))
	if a.Drawer.IsOpen() || !a.Search.IsOpen() {
		t.Fatal("expected search to replace drawer")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if a.Search.IsOpen() || a.Coordinator.DimmerVisible() {
		t.Fatal("expected all overlays closed")
	}
	if m.input.Focused() {
		t.Fatal("expected input blurred")
	}
}

func TestModelUpdate_DrawerNavigates(t *testing.T) {
	m, a, _ := newTestModel(t)

	m, _ = press(t, m, runes("m"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if a.Router.Current() != "/services" {
		t.Fatalf("expected /services, got %s", a.Router.Current())
	}
	if a.Drawer.IsOpen() {
		t.Fatal("expected drawer closed after selection")
	}
	if view := tuiview.StripANSI(m.View()); !strings.Contains(view, "Air, road and sea freight") {
		t.Fatalf("expected services page, got: %s", view)
	}
}

func TestModelUpdate_HeroCTAFollowsCurrentSlide(t *testing.T) {
	m, a, _ := newTestModel(t)

	_, _ = press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	if a.Router.Current() != "/about" {
		t.Fatalf("expected /about, got %s", a.Router.Current())
	}
}

func TestModelUpdate_StaleRevealTickIgnored(t *testing.T) {
	m, a, _ := newTestModel(t)
	staleKey := a.Carousel.ReplayKey()

	m, cmd := press(t, m, runes("l"))
	if cmd == nil {
		t.Fatal("expected reveal to restart")
	}
	updated, next := m.Update(actions.RevealTickMsg{Key: staleKey})
	m = updated.(Model)
	if m.revealed != 0 || next != nil {
		t.Fatalf("expected stale tick ignored, revealed=%d", m.revealed)
	}

	updated, next = m.Update(actions.RevealTickMsg{Key: a.Carousel.ReplayKey()})
	m = updated.(Model)
	if m.revealed != revealStep || next == nil {
		t.Fatalf("expected reveal to advance, revealed=%d", m.revealed)
	}
}

func TestModelUpdate_ScrollFeedsHeader(t *testing.T) {
	m, a, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	m = updated.(Model)

	m, _ = press(t, m, runes("j"), runes("j"))
	if m.scroll != 2 || a.Scroll.IsPinned() {
		t.Fatalf("expected offset 2 unpinned, got scroll=%d pinned=%v", m.scroll, a.Scroll.IsPinned())
	}
	m, _ = press(t, m, runes("k"))
	if m.scroll != 1 {
		t.Fatalf("expected offset 1, got %d", m.scroll)
	}
}

func TestModelUpdate_HomePagePinsHeaderAtRealisticHeight(t *testing.T) {
	for _, height := range []int{24, 40, 50} {
		m, a, _ := newTestModel(t)
		updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: height})
		m = updated.(Model)

		for i := 0; i < 200 && !a.Scroll.IsPinned(); i++ {
			m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		}
		if !a.Scroll.IsPinned() || m.scroll <= navbar.PinThreshold {
			t.Fatalf("height=%d: expected pinned header, scroll=%d", height, m.scroll)
		}
		header := strings.SplitN(tuiview.StripANSI(m.View()), "\n", 2)[0]
		if !strings.Contains(header, "/ track") {
			t.Fatalf("height=%d: expected compact header, got %q", height, header)
		}

		for i := 0; i < 200 && a.Scroll.IsPinned(); i++ {
			m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
		}
		if a.Scroll.IsPinned() || m.scroll != navbar.PinThreshold {
			t.Fatalf("height=%d: expected unpinned at threshold, scroll=%d", height, m.scroll)
		}
	}
}

func TestModelView_HomeScrollsThroughSections(t *testing.T) {
	m, _, _ := newTestModel(t)

	lines := tuiview.StripANSI(strings.Join(m.pageLines(), "\n"))
	for _, want := range []string{"ABOUT US", "Services", "Quote", "Image Gallery", "Contact Us", "Cargo transportation services"} {
		if !strings.Contains(lines, want) {
			t.Fatalf("expected %q on the home page", want)
		}
	}
}

func TestModelUpdate_DeleteAndClearHistory(t *testing.T) {
	m, a, _ := newTestModel(t)
	a.History.Add("1ZAAAAAAAAAAAAAAAA")
	a.History.Add("1ZBBBBBBBBBBBBBBBB")

	m, _ = press(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyDown})
	if m.input.Value() != "1ZBBBBBBBBBBBBBBBB" {
		t.Fatalf("expected selected entry in input, got %q", m.input.Value())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if got := a.History.Entries(); len(got) != 1 || got[0] != "1ZAAAAAAAAAAAAAAAA" {
		t.Fatalf("unexpected history after delete: %v", got)
	}
	if !a.Search.IsOpen() {
		t.Fatal("expected panel to stay open after delete")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if a.History.Len() != 0 || m.recentCursor != -1 {
		t.Fatal("expected history cleared")
	}
	if view := tuiview.StripANSI(m.View()); !strings.Contains(view, "No recent searches found.") {
		t.Fatalf("expected empty history state, got: %s", view)
	}
}

func TestModelUpdate_EditingInputDropsRecentSelection(t *testing.T) {
	m, a, _ := newTestModel(t)
	a.History.Add("1Z0000000000000001")
	a.History.Add("1Z0000000000000002")

	m, _ = press(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyDown})
	if m.recentCursor != 0 || a.Search.Input() != "1Z0000000000000002" {
		t.Fatalf("expected first entry selected, cursor=%d input=%q", m.recentCursor, a.Search.Input())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("X"))
	if m.recentCursor != -1 {
		t.Fatalf("expected selection dropped after edit, got %d", m.recentCursor)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if a.History.Len() != 2 {
		t.Fatalf("expected no entry deleted, got %v", a.History.Entries())
	}
	if m.input.Value() != "1Z000000000000000X" {
		t.Fatalf("unexpected input %q", m.input.Value())
	}
}

func TestModelUpdate_ClipboardFallbackIsLogged(t *testing.T) {
	site, err := content.Default()
	if err != nil {
		t.Fatalf("load site: %v", err)
	}
	core, logs := observer.New(zap.InfoLevel)
	queue := &URLQueue{}
	a := app.New(storage.NewMemoryStore(), site, carrier.UPS(), zap.New(core), queue)
	m := NewModel(a, queue)

	updated, _ := m.Update(actions.OpenURLSuccessMsg{Status: "copied", URL: "https://x"})
	if updated.(Model).status != "copied" {
		t.Fatal("expected status set")
	}
	if logs.FilterMessage("browser unavailable, tracking link copied").Len() != 1 {
		t.Fatalf("expected fallback log, got %v", logs.All())
	}

	_, _ = m.Update(actions.OpenURLSuccessMsg{Status: "opened", URL: "https://x", Opened: true})
	if logs.FilterMessage("browser unavailable, tracking link copied").Len() != 1 {
		t.Fatal("expected no fallback log for an opened browser")
	}
}

func TestModelUpdate_OpenURLErrorSetsStatus(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, cmd := m.Update(actions.OpenURLErrorMsg{URL: "https://x", Err: errors.New("could not open URL or copy to clipboard")})
	m = updated.(Model)
	if !m.statusIsErr || !strings.Contains(m.status, "https://x") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if cmd == nil {
		t.Fatal("expected clear status command")
	}

	updated, _ = m.Update(actions.ClearStatusMsg{ID: m.statusID - 1})
	if updated.(Model).status == "" {
		t.Fatal("expected older clear to be ignored")
	}
	updated, _ = m.Update(actions.ClearStatusMsg{ID: m.statusID})
	if updated.(Model).status != "" {
		t.Fatal("expected status cleared")
	}
}

func TestURLQueue_Drain(t *testing.T) {
	q := &URLQueue{}
	q.OpenExternal("a")
	q.OpenExternal("b")
	if got := q.Drain(); len(got) != 2 || got[0] != "a" {
		t.Fatalf("unexpected drain: %v", got)
	}
	if got := q.Drain(); got != nil {
		t.Fatalf("expected empty queue, got %v", got)
	}
}
