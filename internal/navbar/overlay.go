// Package navbar holds the state behind the site header: the tracking search
// panel, the navigation drawer, and the pinned-header flag.
package navbar

// State is the visibility of an overlay.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Overlay is a panel drawn above the page that a Coordinator keeps exclusive.
type Overlay interface {
	State() State
	Close()
}

// Coordinator guarantees that at most one registered overlay is open. The
// overlay opened last wins; the others are closed through their own Close so
// their side effects (such as clearing input) still run.
type Coordinator struct {
	overlays []Overlay
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

func (c *Coordinator) register(o Overlay) {
	if c == nil {
		return
	}
	c.overlays = append(c.overlays, o)
}

// opening closes every overlay other than o.
func (c *Coordinator) opening(o Overlay) {
	if c == nil {
		return
	}
	for _, other := range c.overlays {
		if other != o && other.State() == Open {
			other.Close()
		}
	}
}

// Active returns the open overlay, or nil when none is open.
func (c *Coordinator) Active() Overlay {
	if c == nil {
		return nil
	}
	for _, o := range c.overlays {
		if o.State() == Open {
			return o
		}
	}
	return nil
}

// DimmerVisible reports whether the page backdrop should be dimmed.
func (c *Coordinator) DimmerVisible() bool {
	return c.Active() != nil
}

// CloseAll closes whichever overlay is open. It is what a click on the dimmed
// backdrop does.
func (c *Coordinator) CloseAll() {
	if c == nil {
		return
	}
	for _, o := range c.overlays {
		if o.State() == Open {
			o.Close()
		}
	}
}
