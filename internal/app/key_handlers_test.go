package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/composer/internal/compose"
	"github.com/treykane/composer/internal/config"
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFormatActionsWrapSelection(t *testing.T) {
	cases := []struct {
		name    string
		msg     tea.KeyMsg
		want    string
		wantSel compose.Range
	}{
		{name: "bold", msg: tea.KeyMsg{Type: tea.KeyCtrlB}, want: "hello **world**", wantSel: compose.Range{Start: 8, End: 13}},
		{name: "italic", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i"), Alt: true}, want: "hello *world*", wantSel: compose.Range{Start: 7, End: 12}},
		{name: "light", msg: tea.KeyMsg{Type: tea.KeyCtrlL}, want: "hello *~*world*~*", wantSel: compose.Range{Start: 9, End: 14}},
		{name: "link", msg: tea.KeyMsg{Type: tea.KeyCtrlK}, want: "hello [world](url)", wantSel: compose.Range{Start: 14, End: 17}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, Options{Text: "hello world"})
			m.surface.SetSelection(compose.Range{Start: 6, End: 11})
			m.Update(tc.msg)
			mustBuffer(t, m.engine.Buffer(), tc.want, tc.wantSel)
		})
	}
}

func TestLinkPlaceholderCanBeTypedOver(t *testing.T) {
	m := newTestModel(t, Options{Text: "see docs"})
	m.surface.SetSelection(compose.Range{Start: 4, End: 8})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m.Update(keyRunes("https://example.com"))
	mustBuffer(t, m.engine.Buffer(), "see [docs](https://example.com)", compose.Caret(30))
}

func TestTypingReplacesSelection(t *testing.T) {
	m := newTestModel(t, Options{Text: "hello world"})
	m.surface.SetSelection(compose.Range{Start: 0, End: 5})
	m.Update(keyRunes("bye"))
	mustBuffer(t, m.engine.Buffer(), "bye world", compose.Caret(3))
	if m.surface.hasAnchor() {
		t.Fatal("expected typing to clear the anchor")
	}
}

func TestBackspaceDeletesSelection(t *testing.T) {
	m := newTestModel(t, Options{Text: "hello world"})
	m.surface.SetSelection(compose.Range{Start: 5, End: 11})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	mustBuffer(t, m.engine.Buffer(), "hello", compose.Caret(5))
}

func TestEnterReplacesSelection(t *testing.T) {
	m := newTestModel(t, Options{Text: "hello world"})
	m.surface.SetSelection(compose.Range{Start: 5, End: 6})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mustBuffer(t, m.engine.Buffer(), "hello\nworld", compose.Caret(6))
	if m.surface.hasAnchor() {
		t.Fatal("expected enter to clear the anchor")
	}
}

func TestInitialTextFoldsWindowsLineBreaks(t *testing.T) {
	m := newTestModel(t, Options{Text: "ab\r\ncd\r\n\tef"})
	if got := m.editor.Value(); got != "ab\ncd\n    ef" {
		t.Fatalf("got %q, want %q", got, "ab\ncd\n    ef")
	}
}

func TestShiftArrowsExtendSelection(t *testing.T) {
	m := newTestModel(t, Options{Text: "hello"})
	m.surface.SetSelection(compose.Caret(5))
	m.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	if got := m.surface.Selection(); got != (compose.Range{Start: 3, End: 5}) {
		t.Fatalf("got %+v, want 3..5", got)
	}
	if m.status != "Selected 2 chars (Alt+S to clear)" {
		t.Fatalf("status: got %q", m.status)
	}
}

func TestSelectionAnchorToggle(t *testing.T) {
	m := newTestModel(t, Options{Text: "hello"})
	m.surface.SetSelection(compose.Caret(1))
	anchor := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s"), Alt: true}

	m.Update(anchor)
	if !m.surface.hasAnchor() {
		t.Fatal("expected anchor after first toggle")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.surface.Selection(); got != (compose.Range{Start: 1, End: 3}) {
		t.Fatalf("got %+v, want 1..3", got)
	}
	m.Update(anchor)
	if m.surface.hasAnchor() {
		t.Fatal("expected second toggle to clear the anchor")
	}
}

func TestEscClearsSelectionBeforeQuitting(t *testing.T) {
	m := newTestModel(t, Options{Text: "hello"})
	m.surface.SetSelection(compose.Range{Start: 0, End: 2})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if isQuit(cmd) {
		t.Fatal("expected first esc to clear the selection, not quit")
	}
	if m.surface.hasAnchor() {
		t.Fatal("expected selection to be cleared")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatal("expected second esc to quit")
	}
	if _, ok := m.Sent(); ok {
		t.Fatal("expected quit not to send")
	}
}

func TestMacKeyboardFormatShortcuts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	cfg.MacKeyboard = true
	m := New(cfg, Options{Text: "hello world"})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	// alt+b is unbound, so it reaches the built-in Meta+B shortcut.
	m.surface.SetSelection(compose.Range{Start: 0, End: 5})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true})
	mustBuffer(t, m.engine.Buffer(), "**hello** world", compose.Range{Start: 2, End: 7})

	m.surface.SetSelection(compose.Range{Start: 10, End: 15})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L"), Alt: true})
	mustBuffer(t, m.engine.Buffer(), "**hello** [world](url)", compose.Range{Start: 18, End: 21})
}

func TestSendRequiresText(t *testing.T) {
	m := newTestModel(t, Options{Text: "  \n"})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatal("expected no command for a blank draft")
	}
	if m.status != "Nothing to send" {
		t.Fatalf("status: got %q", m.status)
	}

	m = newTestModel(t, Options{Text: "ship it"})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !isQuit(cmd) {
		t.Fatal("expected send to quit")
	}
	if got, ok := m.Sent(); !ok || got != "ship it" {
		t.Fatalf("sent: got %q, %v", got, ok)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !m.showHelp {
		t.Fatal("expected help to open")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp || isQuit(cmd) {
		t.Fatal("expected esc to close help without quitting")
	}
}

func TestIgnoresTerminalColorReplies(t *testing.T) {
	m := newTestModel(t, Options{Text: "hi"})
	m.Update(keyRunes("]11;rgb:1e1e/1e1e/2e2e"))
	if got := m.editor.Value(); got != "hi" {
		t.Fatalf("got %q, want the reply to be dropped", got)
	}
}
