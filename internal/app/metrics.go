package app

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

type draftMetrics struct {
	words int
	chars int
	lines int
}

// computeDraftMetrics counts words, user-perceived characters (grapheme
// clusters) and lines.
func computeDraftMetrics(content string) draftMetrics {
	if content == "" {
		return draftMetrics{}
	}
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return draftMetrics{
		words: len(strings.Fields(content)),
		chars: uniseg.GraphemeClusterCount(content),
		lines: lines,
	}
}

func (m *Model) draftMetricsSummary() string {
	content := m.editor.Value()
	if strings.TrimSpace(content) == "" {
		return ""
	}
	metrics := computeDraftMetrics(content)
	return fmt.Sprintf("W:%d C:%d L:%d", metrics.words, metrics.chars, metrics.lines)
}
