package compose

// SizeMode is the layout state of the compose box. The presentation layer
// owns it and passes it to every operation that may resize the control.
type SizeMode int

const (
	// SizeAuto lets the control grow and shrink with its content.
	SizeAuto SizeMode = iota
	// SizeFull pins the control to the whole viewport; autosizing is off.
	SizeFull
)

func (m SizeMode) String() string {
	if m == SizeFull {
		return "full"
	}
	return "auto"
}

// Toggle returns the other mode.
func (m SizeMode) Toggle() SizeMode {
	if m == SizeFull {
		return SizeAuto
	}
	return SizeFull
}

// Autosizer recomputes the visual height of a surface.
type Autosizer interface {
	Autosize(s Surface)
}

// AutosizerFunc adapts a function to Autosizer.
type AutosizerFunc func(s Surface)

func (f AutosizerFunc) Autosize(s Surface) { f(s) }

type noopAutosizer struct{}

func (noopAutosizer) Autosize(Surface) {}
