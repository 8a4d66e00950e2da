package state

// View identifies a top-level page.
type View int

const (
	ViewClassifier View = iota
	ViewAbout
)

// Views lists the pages in display order.
var Views = []View{ViewClassifier, ViewAbout}

// Title returns the navigation label for the view.
func (v View) Title() string {
	switch v {
	case ViewAbout:
		return "About"
	default:
		return "Spam Classifier"
	}
}

func (v View) String() string {
	if v == ViewAbout {
		return "about"
	}
	return "classifier"
}

func (v View) valid() bool {
	return v == ViewClassifier || v == ViewAbout
}

// Navigation tracks the active view and whether the compact menu is open.
// The zero value shows the classifier with the menu closed.
type Navigation struct {
	Active   View
	MenuOpen bool
}

// SelectView makes v active. Selecting from inside the compact menu also
// closes the menu. Unknown views are ignored.
func (n *Navigation) SelectView(v View, fromMenu bool) {
	if !v.valid() {
		return
	}
	n.Active = v
	if fromMenu {
		n.MenuOpen = false
	}
}

// ToggleMenu flips the compact menu.
func (n *Navigation) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

// NextView selects the view after the active one, wrapping around.
func (n *Navigation) NextView() {
	n.SelectView(Views[(n.index()+1)%len(Views)], false)
}

// PrevView selects the view before the active one, wrapping around.
func (n *Navigation) PrevView() {
	n.SelectView(Views[(n.index()+len(Views)-1)%len(Views)], false)
}

func (n *Navigation) index() int {
	for i, v := range Views {
		if v == n.Active {
			return i
		}
	}
	return 0
}
