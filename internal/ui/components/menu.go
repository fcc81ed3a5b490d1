package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/termcommander/internal/ui/theme"
)

// MenuItem represents a single entry in a selection menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical selection menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on initial, or on the first
// enabled item when initial is out of range or disabled.
func NewMenu(items []MenuItem, initial int) Menu {
	m := Menu{Items: items}
	if initial >= 0 && initial < len(items) && !items[initial].Disabled {
		m.Selected = initial
		return m
	}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update handles keyboard navigation. The cursor wraps at both ends.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.step(-1)
	case "down", "j":
		m.Selected = m.step(1)
	case "enter":
		item := m.Items[m.Selected]
		if item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

func (m Menu) step(dir int) int {
	n := len(m.Items)
	for i, pos := 0, m.Selected; i < n; i++ {
		pos = (pos + dir + n) % n
		if !m.Items[pos].Disabled {
			return pos
		}
	}
	return m.Selected
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			s += theme.Selected.Render("❯ "+item.Label) + "\n"
		case item.Disabled:
			s += theme.Hint.Render("  "+item.Label) + "\n"
		default:
			s += theme.Unselected.Render("  "+item.Label) + "\n"
		}
	}
	return s
}
