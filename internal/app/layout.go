// layout.go centralizes the terminal layout of the compose screen.
//
// From top to bottom the screen holds a one-row header naming the message
// target, the compose pane (editor or preview inside a bordered box) and a
// footer of two or three rows. In autosize mode the editor height follows
// its content, capped by the rows the terminal can show. In full-size mode
// the editor takes every row between the header and the footer.
package app

import "github.com/treykane/composer/internal/compose"

// LayoutDimensions holds the calculated layout for the current terminal size.
type LayoutDimensions struct {
	ComposeTop  int // first row of the compose pane
	FooterRows  int // rows reserved for the footer
	PaneHeight  int // rows available for the compose pane including its frame
	EditorWidth int // usable width inside the pane frame
	EditorRows  int // usable rows inside the pane frame
}

func (m *Model) calculateLayout() LayoutDimensions {
	footerRows := m.footerHeightForWidth(m.width)
	top := m.composeTop()
	paneHeight := max(0, m.height-top-footerRows)
	return LayoutDimensions{
		ComposeTop:  top,
		FooterRows:  footerRows,
		PaneHeight:  paneHeight,
		EditorWidth: max(MinEditorWidth, m.width-composePane.GetHorizontalFrameSize()),
		EditorRows:  max(1, paneHeight-composePane.GetVerticalFrameSize()),
	}
}

// footerHeightForWidth returns FooterMinRows unless the footer segments need
// the extra row.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// applyLayout sizes the editor and viewport for layout and the size mode.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.editor.SetWidth(layout.EditorWidth)
	m.viewport.Width = max(0, m.width-previewPane.GetHorizontalFrameSize())
	m.viewport.Height = layout.EditorRows

	m.sizer.available = layout.EditorRows
	if m.size == compose.SizeFull {
		m.editor.SetHeight(layout.EditorRows)
		return
	}
	m.engine.Autosize(m.size)
}
