package navbar

import (
	"go.uber.org/zap"

	"github.com/glabrego/cargonav/internal/carrier"
	"github.com/glabrego/cargonav/internal/history"
	"github.com/glabrego/cargonav/internal/tracking"
)

// URLOpener shows url to the user outside the application, typically in a
// browser tab. It does not report back.
type URLOpener interface {
	OpenExternal(url string)
}

// URLOpenerFunc adapts a plain function to URLOpener.
type URLOpenerFunc func(url string)

func (f URLOpenerFunc) OpenExternal(url string) { f(url) }

// SearchPanel is the slide-down tracking search overlay. It owns the input
// buffer, the last validation message, and submission into the history.
type SearchPanel struct {
	state   State
	input   string
	message string

	coord   *Coordinator
	history *history.Recent
	carrier carrier.Carrier
	opener  URLOpener
	logger  *zap.Logger
}

type SearchPanelOptions struct {
	Coordinator *Coordinator
	History     *history.Recent
	Carrier     carrier.Carrier
	Opener      URLOpener
	Logger      *zap.Logger
}

func NewSearchPanel(opts SearchPanelOptions) *SearchPanel {
	p := &SearchPanel{
		coord:   opts.Coordinator,
		history: opts.History,
		carrier: opts.Carrier,
		opener:  opts.Opener,
		logger:  opts.Logger,
	}
	if p.carrier.BaseURL == "" {
		p.carrier = carrier.UPS()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	p.coord.register(p)
	return p
}

func (p *SearchPanel) State() State { return p.state }
func (p *SearchPanel) IsOpen() bool { return p.state == Open }

// Open shows the panel and closes the navigation drawer.
func (p *SearchPanel) Open() {
	p.coord.opening(p)
	p.state = Open
}

// Close hides the panel and discards the input and any validation message.
func (p *SearchPanel) Close() {
	p.state = Closed
	p.input = ""
	p.message = ""
}

func (p *SearchPanel) Input() string { return p.input }

// SetInput replaces the input buffer as the user types.
func (p *SearchPanel) SetInput(v string) { p.input = v }

// Message is the validation message from the last rejected submit, or "".
func (p *SearchPanel) Message() string { return p.message }

// Recent returns the search history, most recent first.
func (p *SearchPanel) Recent() []tracking.Query {
	if p.history == nil {
		return nil
	}
	return p.history.Entries()
}

// Submit validates raw. A rejected value leaves the panel state and input
// untouched and sets Message. An accepted value is recorded in the history,
// its tracking page is opened, the input is cleared and the panel closes.
func (p *SearchPanel) Submit(raw string) (tracking.Query, error) {
	q, err := tracking.Validate(raw)
	if err != nil {
		p.message = tracking.Message(err)
		p.logger.Debug("tracking number rejected", zap.String("input", raw), zap.Error(err))
		return "", err
	}

	if p.history != nil {
		p.history.Add(q)
	}
	url := p.carrier.TrackingURL(q)
	p.logger.Info("opening tracking page", zap.String("carrier", p.carrier.Name), zap.String("url", url))
	if p.opener != nil {
		p.opener.OpenExternal(url)
	}
	p.Close()
	return q, nil
}

// SubmitInput submits the current input buffer.
func (p *SearchPanel) SubmitInput() (tracking.Query, error) {
	return p.Submit(p.input)
}

// DeleteHistoryEntry removes q from the history. The panel stays as it is.
func (p *SearchPanel) DeleteHistoryEntry(q tracking.Query) {
	if p.history == nil {
		return
	}
	p.history.Remove(q)
}

// ClearHistory drops every recent search.
func (p *SearchPanel) ClearHistory() {
	if p.history == nil {
		return
	}
	p.history.Clear()
}
