package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// clearEditorSelection drops the selection anchor and restores the normal
// cursor-line style. Called after anything that consumes the selection.
func (m *Model) clearEditorSelection() {
	m.surface.clearAnchor()
	applyEditorSelectionVisual(&m.editor, false)
}

// toggleEditorSelectionAnchor sets or clears the selection anchor at the
// cursor. While the anchor is set, cursor movement extends the selection.
func (m *Model) toggleEditorSelectionAnchor() {
	if m.surface.hasAnchor() {
		m.clearEditorSelection()
		m.status = "Selection cleared"
		return
	}
	m.surface.setAnchor()
	applyEditorSelectionVisual(&m.editor, true)
	m.updateEditorSelectionStatus()
}

// handleEditorShiftSelectionMove extends the selection for Shift+Arrow and
// Shift+Home/End, dropping an anchor first if none is set. It returns false
// for keys that are not selection movements.
func (m *Model) handleEditorShiftSelectionMove(keyMsg tea.KeyMsg) bool {
	msg, ok := selectionMovementKeyMsg(keyMsg)
	if !ok {
		return false
	}

	if !m.surface.hasAnchor() {
		m.surface.setAnchor()
		applyEditorSelectionVisual(&m.editor, true)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	_ = cmd
	m.updateEditorSelectionStatus()
	return true
}

// selectionMovementKeyMsg maps a shifted movement key to its unshifted form.
// Both the typed key constants and their string forms are checked because
// terminals report shifted keys differently.
func selectionMovementKeyMsg(keyMsg tea.KeyMsg) (tea.KeyMsg, bool) {
	switch keyMsg.Type {
	case tea.KeyShiftLeft:
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case tea.KeyShiftRight:
		return tea.KeyMsg{Type: tea.KeyRight}, true
	case tea.KeyShiftUp:
		return tea.KeyMsg{Type: tea.KeyUp}, true
	case tea.KeyShiftDown:
		return tea.KeyMsg{Type: tea.KeyDown}, true
	case tea.KeyShiftHome:
		return tea.KeyMsg{Type: tea.KeyHome}, true
	case tea.KeyShiftEnd:
		return tea.KeyMsg{Type: tea.KeyEnd}, true
	}

	switch keyMsg.String() {
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyRight}, true
	case "shift+up":
		return tea.KeyMsg{Type: tea.KeyUp}, true
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyDown}, true
	case "shift+home":
		return tea.KeyMsg{Type: tea.KeyHome}, true
	case "shift+end":
		return tea.KeyMsg{Type: tea.KeyEnd}, true
	default:
		return tea.KeyMsg{}, false
	}
}

// updateEditorSelectionStatus shows the selected rune count, or a hint when
// only the anchor is set.
func (m *Model) updateEditorSelectionStatus() {
	sel := m.surface.Selection()
	if !sel.Empty() {
		m.status = fmt.Sprintf("Selected %d chars (%s to clear)", sel.Len(), m.primaryActionKey(actionSelectionAnchor, "Alt+S"))
		return
	}
	if m.surface.hasAnchor() {
		m.status = fmt.Sprintf("Selection anchor set (move cursor to select, %s to clear)", m.primaryActionKey(actionSelectionAnchor, "Alt+S"))
	}
}
