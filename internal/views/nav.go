package views

// Page identifiers used for navigation.
const (
	PageHome     = "home"
	PageTraining = "training"
)

// NavItem is one header navigation entry.
type NavItem struct {
	ID    string
	Label string
	Href  string
}

// Nav is the navigation state handed down to the layout. The router owns
// Current; views never mutate it.
type Nav struct {
	Current string
	Items   []NavItem
}

// NewNav returns the header navigation with current selected. Unknown ids
// fall back to the home page.
func NewNav(current string) Nav {
	items := []NavItem{
		{ID: PageHome, Label: "🏠 Home", Href: "/"},
		{ID: PageTraining, Label: "🚀 Training", Href: "/training"},
	}
	for _, it := range items {
		if it.ID == current {
			return Nav{Current: current, Items: items}
		}
	}
	return Nav{Current: PageHome, Items: items}
}

// Active reports whether id is the current page.
func (n Nav) Active(id string) bool { return n.Current == id }
