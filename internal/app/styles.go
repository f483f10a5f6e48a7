package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

var (
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	composePane     = paneStyle.Copy().BorderForeground(lipgloss.Color("204"))
	previewPane     = paneStyle.Copy().BorderForeground(lipgloss.Color("62"))
	popupStyle      = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	titleStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	editStatus      = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	editorFenceLine = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	editorCodeLine  = lipgloss.NewStyle().Foreground(lipgloss.Color("152"))
)

func applyEditorTheme(editor *textarea.Model) {
	focused, blurred := textarea.DefaultStyles()

	base := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorLine := lipgloss.NewStyle().Background(lipgloss.Color("53")).Foreground(lipgloss.Color("252"))
	prompt := lipgloss.NewStyle().Foreground(lipgloss.Color("204"))

	focused.Base = base
	focused.Text = base
	focused.CursorLine = cursorLine
	focused.Prompt = prompt
	focused.Placeholder = mutedStyle

	blurred.Base = base
	blurred.Text = mutedStyle
	blurred.CursorLine = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	blurred.Prompt = prompt
	blurred.Placeholder = mutedStyle

	editor.FocusedStyle = focused
	editor.BlurredStyle = blurred
	editor.Prompt = "│ "
	editor.EndOfBufferCharacter = ' '
	editor.ShowLineNumbers = false
}

// applyEditorSelectionVisual swaps the cursor-line colors while a selection
// anchor is set, since the textarea cannot paint arbitrary ranges.
func applyEditorSelectionVisual(editor *textarea.Model, selecting bool) {
	if selecting {
		editor.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("230"))
		return
	}
	editor.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(lipgloss.Color("53")).Foreground(lipgloss.Color("252"))
}
