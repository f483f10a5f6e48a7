package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/composer/internal/compose"
)

// handleKey routes key presses to the active layer: the insert prompt, the
// help panel, the preview, then the compose box.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shouldIgnoreInput(msg) {
		return m, nil
	}
	switch {
	case m.showPrompt:
		return m.handlePromptKey(msg)
	case m.showHelp:
		return m.handleHelpKey(msg)
	case m.showPreview:
		return m.handlePreviewKey(msg)
	}
	return m.handleComposeKey(msg)
}

// handleHelpKey closes the help panel on its toggle key or Esc. Quit still
// works from inside the panel.
func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	action := m.actionForKey(key)
	switch {
	case key == "esc", action == actionHelp:
		m.showHelp = false
		return m, nil
	case action == actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

// handlePreviewKey scrolls the preview and closes it on its toggle key or Esc.
func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	action := m.actionForKey(key)
	switch {
	case key == "esc", action == actionPreview:
		m.closePreview()
		return m, nil
	case action == actionSend:
		return m.send()
	case action == actionQuit:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleComposeKey dispatches bound actions and forwards everything else to
// the editor. Unbound modifier chords are checked against the built-in
// formatting shortcuts before reaching the editor.
func (m *Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.actionForKey(msg.String())
	if format, ok := formatActions[action]; ok {
		m.applyFormat(format)
		return m, nil
	}

	switch action {
	case actionQuit:
		if msg.Type == tea.KeyEsc && m.surface.hasAnchor() {
			m.clearEditorSelection()
			m.status = "Selection cleared"
			return m, nil
		}
		return m, tea.Quit
	case actionSend:
		return m.send()
	case actionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case actionSizeToggle:
		m.toggleSize()
		return m, nil
	case actionPreview:
		return m, m.openPreview()
	case actionPaste:
		m.pasteFromClipboard()
		return m, nil
	case actionCopy:
		m.copyDraftToClipboard()
		return m, nil
	case actionInsert:
		return m, m.openInsertPrompt()
	case actionSelectionAnchor:
		m.toggleEditorSelectionAnchor()
		return m, nil
	}

	if m.handleEditorShiftSelectionMove(msg) {
		return m, nil
	}
	if format, ok := compose.FormatForKey(keyEventFromMsg(msg), m.cfg.MacKeyboard); ok {
		m.applyFormat(format)
		return m, nil
	}
	if m.replaceSelectionWithKey(msg) {
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.clearEditorSelection()
		m.afterEdit()
	} else if m.surface.hasAnchor() {
		m.updateEditorSelectionStatus()
	}
	return m, cmd
}

// replaceSelectionWithKey types over or deletes a non-empty selection. The
// textarea has no selection of its own, so without this it would insert next
// to the selected text.
func (m *Model) replaceSelectionWithKey(msg tea.KeyMsg) bool {
	if m.surface.Selection().Empty() {
		return false
	}
	var text string
	switch msg.Type {
	case tea.KeyRunes:
		text = string(msg.Runes)
	case tea.KeySpace:
		text = " "
	case tea.KeyEnter:
		text = "\n"
	case tea.KeyBackspace, tea.KeyDelete:
	default:
		return false
	}
	m.engine.InsertText(editorText(text))
	m.clearEditorSelection()
	m.afterEdit()
	return true
}

// applyFormat wraps the selection (or the caret) in format's markers. The
// wrapped text stays selected, so a link's "url" placeholder can be typed
// over right away.
func (m *Model) applyFormat(format compose.Format) {
	m.engine.ApplyFormat(format, m.size)
	applyEditorSelectionVisual(&m.editor, m.surface.hasAnchor())
	m.refreshDirection()
	m.status = fmt.Sprintf("Applied %s formatting", format)
}
