package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "default", input: "", want: slog.LevelInfo},
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "mixed case", input: " DeBuG ", want: slog.LevelDebug},
		{name: "warn alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "invalid", input: "nope", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Fatalf("parseLevel(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOpenOutputFallsBackToStderr(t *testing.T) {
	if got := openOutput(""); got != os.Stderr {
		t.Fatalf("empty path: got %T, want stderr", got)
	}
	missing := filepath.Join(t.TempDir(), "no-such-dir", "log.txt")
	if got := openOutput(missing); got != os.Stderr {
		t.Fatalf("unopenable path: got %T, want stderr", got)
	}
}

func TestOpenOutputAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composer.log")
	w := openOutput(path)
	f, ok := w.(*os.File)
	if !ok || f == os.Stderr {
		t.Fatalf("expected a file writer, got %T", w)
	}
	t.Cleanup(func() { _ = f.Close() })

	logger := slog.New(slog.NewTextHandler(f, nil))
	logger.Info("hello", "component", "test")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected log output in file")
	}
}
