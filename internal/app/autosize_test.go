package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/treykane/composer/internal/compose"
)

func TestVisualRows(t *testing.T) {
	cases := []struct {
		name  string
		value string
		width int
		want  int
	}{
		{name: "empty", value: "", width: 10, want: 1},
		{name: "one line", value: "hello", width: 10, want: 1},
		{name: "exact width", value: "0123456789", width: 10, want: 1},
		{name: "wraps", value: "01234567890", width: 10, want: 2},
		{name: "newlines", value: "a\nb\n", width: 10, want: 3},
		{name: "wide runes", value: "日本語日本語", width: 10, want: 2},
		{name: "no width", value: strings.Repeat("x", 100), width: 0, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := visualRows(tc.value, tc.width); got != tc.want {
				t.Fatalf("visualRows(%q, %d): got %d, want %d", tc.value, tc.width, got, tc.want)
			}
		})
	}
}

func TestTextareaAutosizerClampsHeight(t *testing.T) {
	editor := textarea.New()
	editor.MaxHeight = 0
	editor.SetWidth(40)
	a := &textareaAutosizer{editor: &editor, minRows: 3, maxRows: 6}

	cases := []struct {
		lines     int
		available int
		want      int
	}{
		{lines: 1, want: 3},
		{lines: 5, want: 5},
		{lines: 20, want: 6},
		{lines: 20, available: 4, want: 4},
		{lines: 1, available: 2, want: 2},
	}
	for _, tc := range cases {
		a.available = tc.available
		a.Autosize(compose.NewMemory(strings.Repeat("line\n", tc.lines-1)+"line", compose.Range{}))
		if got := editor.Height(); got != tc.want {
			t.Fatalf("%d lines, available %d: got height %d, want %d", tc.lines, tc.available, got, tc.want)
		}
	}
}

func TestTypingAutosizesEditor(t *testing.T) {
	m := newTestModel(t, Options{})
	start := m.editor.Height()
	if start != m.cfg.AutosizeMinRows {
		t.Fatalf("initial height: got %d, want %d", start, m.cfg.AutosizeMinRows)
	}
	m.Update(keyRunes(strings.Repeat("x\n", 6)))
	if got := m.editor.Height(); got <= start {
		t.Fatalf("expected editor to grow past %d rows, got %d", start, got)
	}
}
