package app

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/runeutil"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/composer/internal/compose"
)

// noSelectionAnchor marks a surface with a caret and no selection.
const noSelectionAnchor = -1

// textareaSurface adapts a bubbles textarea to compose.Surface.
//
// The textarea tracks its cursor as (row, column) and has no notion of a
// selection, so the surface converts between rune offsets and cursor
// positions and keeps the selection as an anchor offset. The selection spans
// from the anchor to the cursor.
//
// Caret placement uses the textarea's own key handling (left/right arrows),
// because the widget exposes no offset setter.
type textareaSurface struct {
	editor *textarea.Model
	anchor int
}

var (
	_ compose.Surface      = (*textareaSurface)(nil)
	_ compose.TextInserter = (*textareaSurface)(nil)
)

// editorSanitizer is the sanitizer the textarea applies to inserted runes.
var editorSanitizer = runeutil.NewSanitizer()

// editorText rewrites text the way the textarea stores it: CRLF becomes one
// line break, tabs expand to spaces and other control runes are dropped.
// Text goes through here before the engine resolves an edit against it.
func editorText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return string(editorSanitizer.Sanitize([]rune(text)))
}

func newTextareaSurface(editor *textarea.Model) *textareaSurface {
	return &textareaSurface{editor: editor, anchor: noSelectionAnchor}
}

func (s *textareaSurface) Value() string {
	return s.editor.Value()
}

// SetValue replaces the content. The caret ends up at the end and any
// selection is dropped.
func (s *textareaSurface) SetValue(value string) {
	s.editor.SetValue(value)
	s.anchor = noSelectionAnchor
}

// Selection returns the anchor-to-cursor range ordered start <= end.
func (s *textareaSurface) Selection() compose.Range {
	cursor := s.cursorOffset()
	if s.anchor == noSelectionAnchor {
		return compose.Caret(cursor)
	}
	anchor := clamp(s.anchor, 0, utf8.RuneCountInString(s.Value()))
	if anchor > cursor {
		return compose.Range{Start: cursor, End: anchor}
	}
	return compose.Range{Start: anchor, End: cursor}
}

// SetSelection anchors at r.Start and moves the cursor to r.End.
func (s *textareaSurface) SetSelection(r compose.Range) {
	r = compose.NewBuffer(s.Value(), r).Selection
	s.moveCursor(r.End)
	if r.Empty() {
		s.anchor = noSelectionAnchor
		return
	}
	s.anchor = r.Start
}

func (s *textareaSurface) Focus() {
	s.editor.Focus()
}

// InsertText replaces the selection in place: the cursor moves to the
// selection end, the selected runes are erased with backspace and the text is
// typed in through the widget. The rest of the content is never rewritten.
func (s *textareaSurface) InsertText(text string) {
	sel := s.Selection()
	s.anchor = noSelectionAnchor
	s.moveCursor(sel.End)
	for i := 0; i < sel.Len(); i++ {
		s.send(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	if text != "" {
		s.editor.InsertString(text)
	}
}

// hasAnchor reports whether a selection anchor is set.
func (s *textareaSurface) hasAnchor() bool {
	return s.anchor != noSelectionAnchor
}

func (s *textareaSurface) setAnchor() {
	s.anchor = s.cursorOffset()
}

func (s *textareaSurface) clearAnchor() {
	s.anchor = noSelectionAnchor
}

// cursorOffset converts the textarea cursor to a rune offset from the start
// of the content, clamped to [0, total].
func (s *textareaSurface) cursorOffset() int {
	value := s.editor.Value()
	lines := splitEditorLines(value)
	row := clamp(s.editor.Line(), 0, max(0, len(lines)-1))
	info := s.editor.LineInfo()
	col := clamp(info.StartColumn+info.ColumnOffset, 0, len(lines[row]))

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}
	return clamp(offset+col, 0, utf8.RuneCountInString(value))
}

// moveCursor walks the cursor to target one rune at a time. Left and right
// cross line boundaries in the textarea, so each step is exactly one rune.
func (s *textareaSurface) moveCursor(target int) {
	s.editor.Focus()
	target = clamp(target, 0, utf8.RuneCountInString(s.editor.Value()))
	current := s.cursorOffset()
	for ; current > target; current-- {
		s.send(tea.KeyMsg{Type: tea.KeyLeft})
	}
	for ; current < target; current++ {
		s.send(tea.KeyMsg{Type: tea.KeyRight})
	}
}

func (s *textareaSurface) send(msg tea.KeyMsg) {
	var cmd tea.Cmd
	*s.editor, cmd = s.editor.Update(msg)
	_ = cmd
}

// splitEditorLines splits the editor value into logical lines of runes. A
// trailing newline yields an empty final line.
func splitEditorLines(value string) [][]rune {
	lines := make([][]rune, 1)
	for _, r := range value {
		if r == '\n' {
			lines = append(lines, nil)
			continue
		}
		last := len(lines) - 1
		lines[last] = append(lines[last], r)
	}
	return lines
}
