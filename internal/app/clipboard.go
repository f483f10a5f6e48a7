package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// pasteFromClipboard inserts the clipboard text at the cursor, replacing any
// selection. The text is inserted verbatim, without smart-insert padding.
func (m *Model) pasteFromClipboard() {
	value, err := clipboard.ReadAll()
	if err != nil {
		m.setStatusError("Clipboard paste failed", err)
		return
	}
	if value == "" {
		m.status = "Clipboard is empty"
		return
	}
	m.engine.InsertText(editorText(value))
	m.clearEditorSelection()
	m.afterEdit()
	m.status = "Pasted from clipboard"
}

// copyDraftToClipboard copies the whole draft to the clipboard.
func (m *Model) copyDraftToClipboard() {
	content := m.editor.Value()
	if content == "" {
		m.status = "No draft to copy"
		return
	}
	if err := clipboard.WriteAll(content); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = fmt.Sprintf("Copied draft (%d chars)", len([]rune(content)))
}
