package navbar

type Item struct {
	Label string
	Path  string
}

// Items is the fixed site navigation, in display order.
var Items = []Item{
	{Label: "Home", Path: "/"},
	{Label: "About Us", Path: "/about"},
	{Label: "Services", Path: "/services"},
	{Label: "Quote", Path: "/quote"},
	{Label: "Image Gallery", Path: "/gallery"},
	{Label: "Contact Us", Path: "/contact"},
}

// ItemByPath returns the item for path, if any.
func ItemByPath(path string) (Item, bool) {
	for _, item := range Items {
		if item.Path == path {
			return item, true
		}
	}
	return Item{}, false
}

// Router performs navigation to a site path.
type Router interface {
	Navigate(path string)
}

// PathRouter is the in-process Router used by the terminal client. It only
// records the current path; pages read it when rendering.
type PathRouter struct {
	current string
	visits  int
}

func NewPathRouter(start string) *PathRouter {
	if start == "" {
		start = "/"
	}
	return &PathRouter{current: start}
}

func (r *PathRouter) Navigate(path string) {
	if path == "" {
		path = "/"
	}
	r.current = path
	r.visits++
}

func (r *PathRouter) Current() string { return r.current }

// IsActive reports whether path is the page being shown.
func (r *PathRouter) IsActive(path string) bool { return r.current == path }

// Visits counts Navigate calls, including repeats of the current path.
func (r *PathRouter) Visits() int { return r.visits }
