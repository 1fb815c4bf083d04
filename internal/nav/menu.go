package nav

import "github.com/Zachkp/portfolio/internal/section"

// Menu is the small-viewport navigation toggle.
type Menu struct {
	open bool
}

// NewMenu returns a menu in the given state.
func NewMenu(open bool) *Menu {
	return &Menu{open: open}
}

func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

func (m *Menu) Close() { m.open = false }

// Follow records activation of a link inside the menu, which always closes
// it.
func (m *Menu) Follow(string) { m.Close() }

// State is the per-view navigation state handed to renderers.
type State struct {
	Active   section.ID
	MenuOpen bool
}

// DefaultState is the state before any measurement.
func DefaultState() State {
	return State{Active: section.Home}
}
