package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/mattn/go-runewidth"

	"github.com/treykane/composer/internal/compose"
)

// textareaAutosizer grows and shrinks the editor with its content, measured
// in wrapped visual rows.
type textareaAutosizer struct {
	editor  *textarea.Model
	minRows int
	maxRows int
	// available caps the height to what the terminal can show; 0 means no cap.
	available int
}

var _ compose.Autosizer = (*textareaAutosizer)(nil)

func (a *textareaAutosizer) Autosize(s compose.Surface) {
	a.editor.SetHeight(a.rowsFor(s.Value()))
}

func (a *textareaAutosizer) rowsFor(value string) int {
	maxRows := a.maxRows
	if a.available > 0 {
		maxRows = min(maxRows, a.available)
	}
	minRows := min(a.minRows, maxRows)
	return clamp(visualRows(value, a.editor.Width()), max(1, minRows), max(1, maxRows))
}

// visualRows counts the rows value occupies when soft-wrapped at width
// columns. Every logical line takes at least one row.
func visualRows(value string, width int) int {
	rows := 0
	for _, line := range strings.Split(value, "\n") {
		w := runewidth.StringWidth(line)
		if width <= 0 || w <= width {
			rows++
			continue
		}
		rows += (w + width - 1) / width
	}
	return rows
}
