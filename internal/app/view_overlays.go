package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpEntries lists the actions shown in the help panel, in display order.
var helpEntries = []struct {
	action string
	text   string
}{
	{actionSend, "Send the message"},
	{actionBold, "Wrap selection in **bold**"},
	{actionItalic, "Wrap selection in *italic*"},
	{actionLight, "Wrap selection in *~*light*~*"},
	{actionLink, "Turn selection into [text](url)"},
	{actionInsert, "Insert markdown or a @**mention** at the cursor"},
	{actionSizeToggle, "Expand / collapse the compose box"},
	{actionPreview, "Toggle rendered preview"},
	{actionPaste, "Paste clipboard text"},
	{actionCopy, "Copy the draft"},
	{actionSelectionAnchor, "Set / clear selection anchor"},
	{actionHelp, "Toggle this help"},
	{actionQuit, "Quit without sending"},
}

// renderHelpOverlay lists every action with its current keys.
func (m *Model) renderHelpOverlay(width, height int) string {
	lines := []string{titleStyle.Render("Keyboard Shortcuts"), ""}
	for _, entry := range helpEntries {
		lines = append(lines, fmt.Sprintf("  %-18s %s", m.allActionKeys(entry.action, "unbound"), entry.text))
	}
	lines = append(lines,
		"  Shift+Arrows       Extend selection",
		"",
		"Formatting also answers to the command modifier (Ctrl, or Meta with",
		"mac_keyboard): B bold, I italic, L light, Shift+L link.",
	)

	inner := max(0, width-popupStyle.GetHorizontalFrameSize())
	visible := min(max(0, height-popupStyle.GetVerticalFrameSize()), len(lines))
	out := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		out = append(out, truncate(lines[i], inner))
	}
	return popupStyle.Width(max(0, width-popupStyle.GetHorizontalBorderSize())).Render(strings.Join(out, "\n"))
}

// renderPromptOverlay draws the insert prompt as a one-line box.
func (m *Model) renderPromptOverlay(width int) string {
	m.prompt.Width = max(1, width-popupStyle.GetHorizontalFrameSize()-lipgloss.Width(m.prompt.Prompt)-1)
	return popupStyle.Width(max(0, width-popupStyle.GetHorizontalBorderSize())).Render(m.prompt.View())
}
