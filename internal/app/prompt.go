package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// openInsertPrompt shows the one-line insert prompt over the compose box.
// The editor keeps its cursor and selection while the prompt is open.
func (m *Model) openInsertPrompt() tea.Cmd {
	m.showPrompt = true
	m.prompt.SetValue("")
	m.editor.Blur()
	m.status = "Insert: Enter to insert, Esc to cancel"
	return tea.Batch(m.prompt.Focus(), textinput.Blink)
}

func (m *Model) closeInsertPrompt() {
	m.showPrompt = false
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.editor.Focus()
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInsertPrompt()
		m.status = "Insert cancelled"
		return m, nil
	case tea.KeyEnter:
		value := m.prompt.Value()
		m.closeInsertPrompt()
		m.insertSyntax(value)
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// insertSyntax smart-inserts the prompt value at the cursor, replacing any
// selection.
func (m *Model) insertSyntax(value string) {
	syntax := m.syntaxForPromptValue(value)
	if syntax == "" {
		m.status = "Nothing to insert"
		return
	}
	m.engine.SmartInsert(editorText(syntax), m.size)
	m.clearEditorSelection()
	m.refreshDirection()
	m.status = fmt.Sprintf("Inserted %s", syntax)
}

// syntaxForPromptValue turns a known recipient email into a mention; any
// other value is inserted as typed.
func (m *Model) syntaxForPromptValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if m.directory == nil || !strings.Contains(trimmed, "@") {
		return value
	}
	if person, ok := m.directory.PersonByEmail(trimmed); ok && person.FullName != "" {
		return "@**" + person.FullName + "**"
	}
	return value
}
