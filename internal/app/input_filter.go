package app

import (
	"fmt"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"
)

// oscBackgroundPattern matches a terminal's reply to a background color
// query (OSC 11), e.g. "]11;rgb:1e1e/1e1e/2e2e". Glamour's auto style sends
// that query, and some terminals deliver the reply as typed runes.
var oscBackgroundPattern = regexp.MustCompile(`\]?1?1;rgb:[0-9a-fA-F]{2,4}/[0-9a-fA-F]{2,4}/[0-9a-fA-F]{2,4}`)

// shouldIgnoreInput reports whether a rune key is terminal noise rather than
// typing: an OSC color reply or a run of control characters.
func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	sequence := string(msg.Runes)
	if oscBackgroundPattern.MatchString(sequence) || containsControlRunes(sequence) {
		appLog.Debug("ignored terminal input", "sequence", fmt.Sprintf("%q", sequence))
		return true
	}
	return false
}

func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}
