// Package compose implements the text manipulation behind the message
// compose box: smart syntax insertion at the cursor, wrapping the selection
// in markdown delimiters, literal and pattern replacement, shortcut formats,
// placeholder text and text direction detection.
//
// All offsets are rune offsets. The package never reaches for a concrete
// widget: the host control is injected as a [Surface], and the engine picks
// the host's native insert primitive when the surface offers one
// ([TextInserter]) or falls back to splicing the full value.
//
// The pure helpers ([SmartInsertEdit], [WrapEdit], [ReplaceFirst],
// [ReplaceAll]) describe an edit without touching any surface, which is what
// the headless CLI and the tests use. [Engine] applies those edits to a live
// surface as a single logical edit.
package compose
