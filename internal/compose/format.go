package compose

import "strings"

// Format is a markdown style reachable from a keyboard shortcut.
type Format int

const (
	FormatNone Format = iota
	FormatBold
	FormatItalic
	FormatLight
	FormatLink
)

// linkPlaceholder is the destination inserted by FormatLink.
const linkPlaceholder = "url"

// Delimiters returns the prefix and suffix wrapped around the selection.
func (f Format) Delimiters() (prefix, suffix string) {
	switch f {
	case FormatBold:
		return "**", "**"
	case FormatItalic:
		return "*", "*"
	case FormatLight:
		return "*~*", "*~*"
	case FormatLink:
		return "[", "](" + linkPlaceholder + ")"
	default:
		return "", ""
	}
}

func (f Format) String() string {
	switch f {
	case FormatBold:
		return "bold"
	case FormatItalic:
		return "italic"
	case FormatLight:
		return "light"
	case FormatLink:
		return "link"
	default:
		return "none"
	}
}

// ParseFormat maps a format name back to its Format.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bold":
		return FormatBold, true
	case "italic":
		return FormatItalic, true
	case "light":
		return FormatLight, true
	case "link":
		return FormatLink, true
	default:
		return FormatNone, false
	}
}

// FormatEdit resolves applying f to b's selection.
//
// Links differ from the other formats when text is selected: the selected
// text becomes the link label and the "url" placeholder is selected so it
// can be typed over.
func FormatEdit(b Buffer, f Format) Edit {
	prefix, suffix := f.Delimiters()
	b = b.Normalize()
	edit := WrapEdit(b, prefix, suffix)
	if f == FormatLink && !b.Selection.Empty() {
		// [label](url): skip "[", the label and "](".
		start := b.Selection.Start + 1 + b.Selection.Len() + 2
		edit.Select = Range{Start: start, End: start + len(linkPlaceholder)}
	}
	return edit
}

// ApplyFormat wraps the selection in f's delimiters and autosizes the
// control unless size is SizeFull.
func (e *Engine) ApplyFormat(f Format, size SizeMode) Buffer {
	if f == FormatNone {
		return e.Buffer()
	}
	e.strategy.apply(e.surface, FormatEdit(e.Buffer(), f))
	e.Autosize(size)
	return e.Buffer()
}

// KeyEvent is a key press as reported by the host.
type KeyEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Meta  bool
}

// FormatForKey returns the format bound to ev, if any.
//
// The command modifier is Meta on a mac keyboard and Ctrl elsewhere. The key
// is compared case-insensitively so Caps Lock does not break the shortcuts.
func FormatForKey(ev KeyEvent, macKeyboard bool) (Format, bool) {
	cmdOrCtrl := ev.Ctrl
	if macKeyboard {
		cmdOrCtrl = ev.Meta
	}
	if !cmdOrCtrl {
		return FormatNone, false
	}
	switch strings.ToLower(ev.Key) {
	case "b":
		return FormatBold, true
	case "i":
		if !ev.Shift {
			return FormatItalic, true
		}
	case "l":
		if ev.Shift {
			return FormatLink, true
		}
		return FormatLight, true
	}
	return FormatNone, false
}
