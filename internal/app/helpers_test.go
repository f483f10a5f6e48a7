package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/composer/internal/compose"
	"github.com/treykane/composer/internal/config"
)

// newTestSurface returns a focused textarea wide enough that test lines never
// soft-wrap.
func newTestSurface(t *testing.T, value string) *textareaSurface {
	t.Helper()
	editor := textarea.New()
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetWidth(80)
	editor.Focus()
	s := newTextareaSurface(&editor)
	s.SetValue(value)
	return s
}

// newTestModel builds a sized Model with defaults and no user keymap.
func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	m := New(config.Default(), opts)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mustBuffer(t *testing.T, got compose.Buffer, wantText string, wantSel compose.Range) {
	t.Helper()
	if got.Text != wantText {
		t.Fatalf("text: got %q, want %q", got.Text, wantText)
	}
	if got.Selection != wantSel {
		t.Fatalf("selection: got %+v, want %+v", got.Selection, wantSel)
	}
}
