package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/composer/internal/compose"
)

func TestToggleSizeExpandsAndCollapses(t *testing.T) {
	m := newTestModel(t, Options{Text: "short"})
	autoHeight := m.editor.Height()

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if m.size != compose.SizeFull {
		t.Fatalf("expected full size, got %s", m.size)
	}
	layout := m.calculateLayout()
	if got := m.editor.Height(); got != layout.EditorRows {
		t.Fatalf("full height: got %d, want %d", got, layout.EditorRows)
	}
	if layout.ComposeTop != HeaderRows {
		t.Fatalf("compose top: got %d, want %d", layout.ComposeTop, HeaderRows)
	}
	if got := m.sizeToggleHint(); got != "collapse" {
		t.Fatalf("hint: got %q, want collapse", got)
	}
	if !m.editor.Focused() {
		t.Fatal("expected editor to keep focus after expanding")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if m.size != compose.SizeAuto {
		t.Fatalf("expected auto size, got %s", m.size)
	}
	if got := m.editor.Height(); got != autoHeight {
		t.Fatalf("collapsed height: got %d, want %d", got, autoHeight)
	}
	if got := m.sizeToggleHint(); got != "expand" {
		t.Fatalf("hint: got %q, want expand", got)
	}
}

func TestFullSizeSkipsAutosize(t *testing.T) {
	m := newTestModel(t, Options{})
	m.toggleSize()
	full := m.editor.Height()

	m.surface.SetSelection(compose.Caret(0))
	m.engine.SmartInsert(strings.Repeat("row\n", 40), m.size)
	if got := m.editor.Height(); got != full {
		t.Fatalf("height changed in full-size mode: got %d, want %d", got, full)
	}
}
