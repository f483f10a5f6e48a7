package app

import (
	"strings"

	"github.com/treykane/composer/internal/compose"
)

// renderHeader draws the message target, e.g. "#design > logo" or
// "To: Alice, Bob".
func (m *Model) renderHeader(width int) string {
	return headerStyle.Width(width).Render(truncate(" "+m.headerTitle(), width))
}

func (m *Model) headerTitle() string {
	switch {
	case m.target.MessageType == compose.MessageTypeStream && m.target.Stream != "":
		if m.target.Topic != "" {
			return m.printer.Sprintf("#%s > %s", m.target.Stream, m.target.Topic)
		}
		return m.printer.Sprintf("#%s", m.target.Stream)
	case strings.TrimSpace(m.target.PrivateMessageRecipient) != "":
		return m.printer.Sprintf("To: %s", m.recipientNames())
	}
	return m.printer.Sprintf("New message")
}

// recipientNames resolves each recipient email through the directory.
func (m *Model) recipientNames() string {
	emails := strings.Split(m.target.PrivateMessageRecipient, ",")
	names := make([]string, 0, len(emails))
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		name := email
		if m.directory != nil {
			if person, ok := m.directory.PersonByEmail(email); ok && person.FullName != "" {
				name = person.FullName
			}
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// renderComposePane draws the editor inside its border.
func (m *Model) renderComposePane(width int) string {
	view := highlightFencedCodeInEditorView(m.editor.View())
	return composePane.Width(max(0, width-composePane.GetHorizontalBorderSize())).Render(view)
}
