package compose

// Edit is one insertion request resolved against a buffer: the span that is
// replaced, what replaces it, and the selection left behind.
type Edit struct {
	Replace Range
	Text    string
	Select  Range
}

// Apply splices the edit into b and returns the resulting buffer. The edit's
// offsets refer to b's rune offsets before the splice.
func (e Edit) Apply(b Buffer) Buffer {
	runes := []rune(b.Text)
	replace := e.Replace.clampTo(len(runes))
	text := []rune(e.Text)

	updated := make([]rune, 0, len(runes)-replace.Len()+len(text))
	updated = append(updated, runes[:replace.Start]...)
	updated = append(updated, text...)
	updated = append(updated, runes[replace.End:]...)

	return NewBuffer(string(updated), e.Select)
}

// SmartInsertEdit resolves a smart insertion of syntax at b's selection.
//
// The selection is replaced. A space is prepended when the text before the
// insertion point does not already end with whitespace and syntax does not
// start with it; a space is appended when neither the text after the
// insertion point nor syntax provides one. Only the first and last runes of
// syntax take part in that decision. An empty syntax is never padded.
//
// The caret lands right after the padded syntax.
func SmartInsertEdit(b Buffer, syntax string) Edit {
	b = b.Normalize()
	before, _, after := b.split()

	padded := []rune(syntax)
	if len(padded) > 0 {
		if len(before) > 0 && !isSpace(before[len(before)-1]) && !isSpace(padded[0]) {
			padded = append([]rune{' '}, padded...)
		}
		if !((len(after) > 0 && isSpace(after[0])) || isSpace(padded[len(padded)-1])) {
			padded = append(padded, ' ')
		}
	}

	return Edit{
		Replace: b.Selection,
		Text:    string(padded),
		Select:  Caret(b.Selection.Start + len(padded)),
	}
}

// SmartInsert applies SmartInsertEdit to b.
func SmartInsert(b Buffer, syntax string) Buffer {
	return SmartInsertEdit(b, syntax).Apply(b.Normalize())
}

// WrapEdit resolves wrapping b's selection with prefix and suffix.
//
// With a caret the result leaves the caret between prefix and suffix, ready
// for typing. With a selection the original text stays selected inside the
// delimiters.
func WrapEdit(b Buffer, prefix, suffix string) Edit {
	b = b.Normalize()
	_, selected, _ := b.split()

	prefixLen := len([]rune(prefix))
	start := b.Selection.Start + prefixLen
	return Edit{
		Replace: b.Selection,
		Text:    prefix + string(selected) + suffix,
		Select:  Range{Start: start, End: start + len(selected)},
	}
}

// Wrap applies WrapEdit to b.
func Wrap(b Buffer, prefix, suffix string) Buffer {
	return WrapEdit(b, prefix, suffix).Apply(b.Normalize())
}

// isSpace matches the whitespace the padding rules care about. Other Unicode
// spaces count as content.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
