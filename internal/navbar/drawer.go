package navbar

// Drawer is the navigation overlay shown in place of the inline nav bar on
// narrow screens.
type Drawer struct {
	state  State
	coord  *Coordinator
	router Router
}

func NewDrawer(coord *Coordinator, router Router) *Drawer {
	d := &Drawer{coord: coord, router: router}
	coord.register(d)
	return d
}

func (d *Drawer) State() State { return d.state }
func (d *Drawer) IsOpen() bool { return d.state == Open }

// Open shows the drawer and closes the search panel.
func (d *Drawer) Open() {
	d.coord.opening(d)
	d.state = Open
}

func (d *Drawer) Close() {
	d.state = Closed
}

// SelectItem navigates to item and closes the drawer.
func (d *Drawer) SelectItem(item Item) {
	if d.router != nil {
		d.router.Navigate(item.Path)
	}
	d.Close()
}
