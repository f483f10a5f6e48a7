package app

import "github.com/charmbracelet/lipgloss"

// View draws the header, the compose pane and the footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	header := m.renderHeader(m.width)

	var pane string
	switch {
	case m.showHelp:
		pane = m.renderHelpOverlay(m.width, layout.PaneHeight)
	case m.showPreview:
		pane = previewPane.Width(max(0, m.width-previewPane.GetHorizontalBorderSize())).Render(m.viewport.View())
	default:
		pane = m.renderComposePane(m.width)
	}
	if m.showPrompt {
		pane = lipgloss.JoinVertical(lipgloss.Left, m.renderPromptOverlay(m.width), pane)
	}
	pane = padBlock(pane, m.width, layout.PaneHeight)

	view := header + "\n" + pane + "\n" + m.renderStatus(m.width, layout.FooterRows)
	return padBlock(view, m.width, m.height)
}
