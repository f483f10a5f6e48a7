package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/composer/internal/compose"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	style := statusStyle
	if m.surface != nil && m.surface.hasAnchor() {
		style = editStatus
	}
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, style.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	switch {
	case m.showPrompt:
		return []string{"Insert prompt", "Enter insert", "Esc cancel"}
	case m.showHelp:
		return []string{"Help", m.primaryActionKey(actionHelp, "F1") + "/Esc close"}
	case m.showPreview:
		return []string{
			"Preview",
			"↑/↓ scroll",
			m.primaryActionKey(actionPreview, "Ctrl+P") + "/Esc edit",
			m.primaryActionKey(actionSend, "Ctrl+S") + " send",
		}
	}
	return []string{
		m.primaryActionKey(actionSend, "Ctrl+S") + " send",
		m.primaryActionKey(actionBold, "Ctrl+B") + " bold",
		m.primaryActionKey(actionItalic, "Alt+I") + " italic",
		m.primaryActionKey(actionLight, "Ctrl+L") + " light",
		m.primaryActionKey(actionLink, "Ctrl+K") + " link",
		m.primaryActionKey(actionInsert, "Ctrl+O") + " insert",
		m.primaryActionKey(actionSizeToggle, "Ctrl+E") + " " + m.sizeToggleHint(),
		m.primaryActionKey(actionPreview, "Ctrl+P") + " preview",
		m.primaryActionKey(actionPaste, "Ctrl+V") + " paste",
		"Shift+Arrows select",
		m.primaryActionKey(actionSelectionAnchor, "Alt+S") + " anchor",
		m.primaryActionKey(actionHelp, "F1") + " help",
		m.allActionKeys(actionQuit, "Esc") + " quit",
	}
}

func (m *Model) statusContextSegments() []string {
	parts := make([]string, 0, 3)
	if metrics := m.draftMetricsSummary(); metrics != "" {
		parts = append(parts, metrics)
	}
	parts = append(parts, m.size.String())
	if m.direction == compose.RTL {
		parts = append(parts, "RTL")
	}
	return parts
}

func (m *Model) statusMessageSegment() string {
	return strings.TrimSpace(m.status)
}
