package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/treykane/composer/internal/compose"
)

func TestTextareaSurfaceCaretRoundTrip(t *testing.T) {
	value := "ab\ncd\n\nef"
	s := newTestSurface(t, value)
	for offset := 0; offset <= len([]rune(value)); offset++ {
		s.SetSelection(compose.Caret(offset))
		if got := s.Selection(); got != compose.Caret(offset) {
			t.Fatalf("caret %d: got %+v", offset, got)
		}
	}
}

func TestTextareaSurfaceCaretCountsRunes(t *testing.T) {
	s := newTestSurface(t, "héllo wörld")
	s.SetSelection(compose.Caret(7))
	if got := s.Selection(); got != compose.Caret(7) {
		t.Fatalf("got %+v, want caret at 7", got)
	}
}

func TestTextareaSurfaceSelectionFromAnchor(t *testing.T) {
	s := newTestSurface(t, "hello world")

	s.SetSelection(compose.Range{Start: 6, End: 11})
	if !s.hasAnchor() {
		t.Fatal("expected a selection anchor")
	}
	if got := s.Selection(); got != (compose.Range{Start: 6, End: 11}) {
		t.Fatalf("got %+v", got)
	}

	// An anchor after the cursor still yields start <= end.
	s.anchor = 11
	s.moveCursor(6)
	if got := s.Selection(); got != (compose.Range{Start: 6, End: 11}) {
		t.Fatalf("backward selection: got %+v", got)
	}

	s.SetSelection(compose.Caret(3))
	if s.hasAnchor() {
		t.Fatal("expected a caret to clear the anchor")
	}
}

func TestTextareaSurfaceSetSelectionClamps(t *testing.T) {
	s := newTestSurface(t, "abc")
	s.SetSelection(compose.Range{Start: -4, End: 40})
	if got := s.Selection(); got != (compose.Range{Start: 0, End: 3}) {
		t.Fatalf("got %+v, want 0..3", got)
	}
}

func TestTextareaSurfaceInsertTextReplacesSelection(t *testing.T) {
	s := newTestSurface(t, "hello world\nbye")
	s.SetSelection(compose.Range{Start: 6, End: 13})
	s.InsertText("there\nb")
	if got := s.Value(); got != "hello there\nbye" {
		t.Fatalf("value: got %q", got)
	}
	if got := s.Selection(); got != compose.Caret(13) {
		t.Fatalf("selection: got %+v, want caret at 13", got)
	}
}

func TestTextareaSurfaceSetValueDropsSelection(t *testing.T) {
	s := newTestSurface(t, "hello")
	s.SetSelection(compose.Range{Start: 1, End: 3})
	s.SetValue("goodbye")
	if got := s.Selection(); got != compose.Caret(7) {
		t.Fatalf("got %+v, want caret at end", got)
	}
}

// The two edit strategies must leave the textarea in the same state.
func TestTextareaStrategiesMatch(t *testing.T) {
	run := func(opts ...compose.Option) []compose.Buffer {
		s := newTestSurface(t, "Hello world")
		e := compose.NewEngine(s, opts...)
		var out []compose.Buffer
		s.SetSelection(compose.Caret(5))
		out = append(out, e.SmartInsert("**", compose.SizeAuto))
		s.SetSelection(compose.Range{Start: 0, End: 5})
		out = append(out, e.WrapSelection("*", "*"))
		out = append(out, e.ApplyFormat(compose.FormatLink, compose.SizeAuto))
		s.SetSelection(compose.Caret(len([]rune(s.Value()))))
		out = append(out, e.SmartInsert("\n```\ncode\n```", compose.SizeAuto))
		out = append(out, e.InsertText("!"))
		return out
	}

	native := run()
	splice := run(compose.WithSplice())
	if len(native) != len(splice) {
		t.Fatalf("step count: %d vs %d", len(native), len(splice))
	}
	for i := range native {
		if native[i] != splice[i] {
			t.Fatalf("step %d: native %+v, splice %+v", i, native[i], splice[i])
		}
	}
}

func TestTextareaSurfaceStrategySelection(t *testing.T) {
	editor := textarea.New()
	if got := compose.NewEngine(newTextareaSurface(&editor)).Strategy(); got != "native" {
		t.Fatalf("got %q, want native", got)
	}
	if got := compose.NewEngine(newTextareaSurface(&editor), compose.WithSplice()).Strategy(); got != "splice" {
		t.Fatalf("got %q, want splice", got)
	}
}

func TestEditorTextMatchesTextareaStorage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tab", in: "if x {\n\treturn\n}", want: "if x {\n    return\n}"},
		{name: "crlf", in: "ab\r\ncd", want: "ab\ncd"},
		{name: "control rune", in: "a\x07b", want: "ab"},
		{name: "plain", in: "héllo", want: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := editorText(tt.in)
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			s := newTestSurface(t, got)
			if s.Value() != got {
				t.Fatalf("textarea stored %q, want %q", s.Value(), got)
			}
		})
	}
}

// Tabs expand inside the widget, so the caret has to be resolved against the
// expanded text for it to land right after the insert.
func TestInsertedTabsLeaveCaretAfterText(t *testing.T) {
	strategies := []struct {
		name string
		opts []compose.Option
	}{
		{name: "native"},
		{name: "splice", opts: []compose.Option{compose.WithSplice()}},
	}

	for _, st := range strategies {
		t.Run(st.name+"/insert", func(t *testing.T) {
			s := newTestSurface(t, "ab")
			e := compose.NewEngine(s, st.opts...)
			s.SetSelection(compose.Caret(1))
			got := e.InsertText(editorText("if x {\n\treturn\n}"))
			mustBuffer(t, got, "aif x {\n    return\n}b", compose.Caret(20))
			if sel := s.Selection(); sel != compose.Caret(20) {
				t.Fatalf("textarea caret: got %+v, want 20", sel)
			}
		})
		t.Run(st.name+"/smart insert", func(t *testing.T) {
			s := newTestSurface(t, editorText("a\tb"))
			e := compose.NewEngine(s, st.opts...)
			s.SetSelection(compose.Caret(1))
			got := e.SmartInsert(editorText("x\ty"), compose.SizeAuto)
			mustBuffer(t, got, "a x    y    b", compose.Caret(8))
		})
	}
}

func TestSplitEditorLines(t *testing.T) {
	lines := splitEditorLines("a\n\nbc\n")
	want := []string{"a", "", "bc", ""}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if string(lines[i]) != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, string(lines[i]), want[i])
		}
	}
}
