package compose

import "unicode/utf8"

// Range is a [Start, End) span of rune offsets. Start == End is a caret.
type Range struct {
	Start int
	End   int
}

// Caret returns a zero-width range at offset.
func Caret(offset int) Range {
	return Range{Start: offset, End: offset}
}

// Empty reports whether the range is a caret.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Len returns the number of runes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// clampTo bounds both offsets to [0, total] and orders them.
func (r Range) clampTo(total int) Range {
	r.Start = clamp(r.Start, 0, total)
	r.End = clamp(r.End, 0, total)
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// Buffer is a snapshot of a text control: its full content and selection.
type Buffer struct {
	Text      string
	Selection Range
}

// NewBuffer returns a normalized buffer.
func NewBuffer(text string, selection Range) Buffer {
	return Buffer{Text: text, Selection: selection}.Normalize()
}

// Normalize clamps the selection into the text and swaps reversed offsets.
// Offsets past the end land on the end; negative offsets land on zero.
func (b Buffer) Normalize() Buffer {
	b.Selection = b.Selection.clampTo(utf8.RuneCountInString(b.Text))
	return b
}

// Selected returns the text covered by the selection.
func (b Buffer) Selected() string {
	b = b.Normalize()
	runes := []rune(b.Text)
	return string(runes[b.Selection.Start:b.Selection.End])
}

// split returns the text before the selection, the selection and the text
// after it. The buffer must already be normalized.
func (b Buffer) split() (before, selected, after []rune) {
	runes := []rune(b.Text)
	return runes[:b.Selection.Start], runes[b.Selection.Start:b.Selection.End], runes[b.Selection.End:]
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
