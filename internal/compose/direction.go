package compose

import "golang.org/x/text/unicode/bidi"

// Direction is the base writing direction of a draft.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// DetectDirection returns RTL when the first strongly directional rune in
// text is right-to-left (Hebrew, Arabic, ...). Text without strong runes is
// LTR.
func DetectDirection(text string) Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
	}
	return LTR
}
