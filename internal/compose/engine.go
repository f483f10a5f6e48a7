package compose

import (
	"regexp"
	"unicode/utf8"

	"github.com/treykane/composer/internal/logging"
)

var composeLog = logging.New("compose")

// Engine applies compose edits to a Surface. The edit strategy is picked once
// when the engine is built; it is not re-probed per call.
type Engine struct {
	surface   Surface
	strategy  strategy
	autosizer Autosizer
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	forceSplice bool
	autosizer   Autosizer
}

// WithSplice disables the native insert primitive even when the surface
// offers one.
func WithSplice() Option {
	return func(o *engineOptions) { o.forceSplice = true }
}

// WithAutosizer sets the collaborator that recomputes the control height.
func WithAutosizer(a Autosizer) Option {
	return func(o *engineOptions) { o.autosizer = a }
}

// NewEngine binds an engine to s.
func NewEngine(s Surface, opts ...Option) *Engine {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.autosizer == nil {
		o.autosizer = noopAutosizer{}
	}
	st := probeStrategy(s, o.forceSplice)
	composeLog.Debug("edit strategy selected", "strategy", st.name())
	return &Engine{surface: s, strategy: st, autosizer: o.autosizer}
}

// Strategy names the edit strategy in use: "native" or "splice".
func (e *Engine) Strategy() string {
	return e.strategy.name()
}

// Surface returns the bound surface.
func (e *Engine) Surface() Surface {
	return e.surface
}

// Buffer snapshots the surface's content and selection.
func (e *Engine) Buffer() Buffer {
	return NewBuffer(e.surface.Value(), e.surface.Selection())
}

// SmartInsert inserts syntax at the cursor with whitespace padding, focuses
// the control and autosizes it unless size is SizeFull.
func (e *Engine) SmartInsert(syntax string, size SizeMode) Buffer {
	edit := SmartInsertEdit(e.Buffer(), syntax)
	e.surface.Focus()
	e.strategy.apply(e.surface, edit)
	e.Autosize(size)
	return e.Buffer()
}

// InsertText replaces the selection with text verbatim, caret after it.
func (e *Engine) InsertText(text string) Buffer {
	b := e.Buffer()
	e.strategy.apply(e.surface, Edit{
		Replace: b.Selection,
		Text:    text,
		Select:  Caret(b.Selection.Start + utf8.RuneCountInString(text)),
	})
	return e.Buffer()
}

// WrapSelection surrounds the selection with prefix and suffix. A caret ends
// up between the two; a selection stays selected inside them.
func (e *Engine) WrapSelection(prefix, suffix string) Buffer {
	e.strategy.apply(e.surface, WrapEdit(e.Buffer(), prefix, suffix))
	return e.Buffer()
}

// ReplaceSyntax replaces the first literal occurrence of old.
func (e *Engine) ReplaceSyntax(old, new string) Buffer {
	return e.replaceValue(ReplaceFirst(e.surface.Value(), old, new))
}

// ReplaceSyntaxPattern replaces every match of pattern.
func (e *Engine) ReplaceSyntaxPattern(pattern *regexp.Regexp, new string) Buffer {
	return e.replaceValue(ReplaceAll(e.surface.Value(), pattern, new))
}

func (e *Engine) replaceValue(value string) Buffer {
	sel := e.surface.Selection()
	if value != e.surface.Value() {
		e.surface.SetValue(value)
	}
	e.surface.SetSelection(sel.clampTo(utf8.RuneCountInString(value)))
	return e.Buffer()
}

// Autosize asks the autosizer to refit the control. Full-size mode pins the
// layout, so nothing happens there.
func (e *Engine) Autosize(size SizeMode) {
	if size == SizeFull {
		return
	}
	e.autosizer.Autosize(e.surface)
}
