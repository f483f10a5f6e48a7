package app

import "github.com/treykane/composer/internal/compose"

// toggleSize switches the compose box between autosize and full-size mode.
//
// Expanding pins the editor to every row below the header and disables
// autosizing. Collapsing hands the height back to the autosizer. Both leave
// the editor focused.
func (m *Model) toggleSize() {
	m.size = m.size.Toggle()
	if m.size == compose.SizeFull {
		m.status = "Expanded compose box"
	} else {
		m.status = "Collapsed compose box"
	}
	m.applyLayout(m.calculateLayout())
	m.surface.Focus()
}

// composeTop is the first screen row of the compose pane.
func (m *Model) composeTop() int {
	return HeaderRows
}

// sizeToggleHint names what the size toggle will do next.
func (m *Model) sizeToggleHint() string {
	if m.size == compose.SizeFull {
		return "collapse"
	}
	return "expand"
}
