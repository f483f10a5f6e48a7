package compose

import "unicode/utf8"

// Surface is the host text control the engine edits.
type Surface interface {
	Value() string
	SetValue(value string)
	Selection() Range
	SetSelection(r Range)
	Focus()
}

// TextInserter is implemented by surfaces with a native insert primitive
// that replaces the current selection with text and leaves the caret after
// it. Hosts that track their own edit history prefer this path.
type TextInserter interface {
	InsertText(text string)
}

// Memory is an in-memory Surface.
type Memory struct {
	buf     Buffer
	focused bool
}

// NewMemory returns a Memory surface holding text with the given selection.
func NewMemory(text string, selection Range) *Memory {
	return &Memory{buf: NewBuffer(text, selection)}
}

func (m *Memory) Value() string { return m.buf.Text }

func (m *Memory) SetValue(value string) {
	m.buf = NewBuffer(value, m.buf.Selection)
}

func (m *Memory) Selection() Range { return m.buf.Selection }

func (m *Memory) SetSelection(r Range) {
	m.buf = NewBuffer(m.buf.Text, r)
}

func (m *Memory) Focus() { m.focused = true }

// Focused reports whether Focus has been called.
func (m *Memory) Focused() bool { return m.focused }

// Buffer returns the current content and selection.
func (m *Memory) Buffer() Buffer { return m.buf }

// NativeMemory is a Memory surface that also offers InsertText.
type NativeMemory struct {
	Memory
	inserts int
}

// NewNativeMemory returns a NativeMemory surface.
func NewNativeMemory(text string, selection Range) *NativeMemory {
	return &NativeMemory{Memory: Memory{buf: NewBuffer(text, selection)}}
}

// InsertText replaces the selection with text and puts the caret after it.
func (m *NativeMemory) InsertText(text string) {
	m.inserts++
	sel := m.buf.Selection
	m.buf = Edit{
		Replace: sel,
		Text:    text,
		Select:  Caret(sel.Start + utf8.RuneCountInString(text)),
	}.Apply(m.buf)
}

// Inserts returns how many times InsertText ran.
func (m *NativeMemory) Inserts() int { return m.inserts }
