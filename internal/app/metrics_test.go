package app

import "testing"

func TestComputeDraftMetrics(t *testing.T) {
	metrics := computeDraftMetrics("one two\nthree\n")
	if metrics.words != 3 {
		t.Fatalf("expected 3 words, got %d", metrics.words)
	}
	if metrics.chars != 14 {
		t.Fatalf("expected 14 chars, got %d", metrics.chars)
	}
	if metrics.lines != 2 {
		t.Fatalf("expected 2 lines, got %d", metrics.lines)
	}
}

func TestComputeDraftMetricsCountsGraphemes(t *testing.T) {
	// "e" + combining acute, and a flag made of two regional indicators.
	metrics := computeDraftMetrics("é 🇩🇪")
	if metrics.chars != 3 {
		t.Fatalf("expected 3 user-perceived chars, got %d", metrics.chars)
	}
}

func TestDraftMetricsSummaryEmpty(t *testing.T) {
	m := &Model{}
	if got := m.draftMetricsSummary(); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}
