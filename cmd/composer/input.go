package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/treykane/composer/internal/compose"
)

// addBufferFlags registers the flags shared by the editing subcommands.
func addBufferFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "text to edit (default: read stdin)")
	cmd.Flags().Int("at", -1, "caret offset in runes (default: end of text)")
	cmd.Flags().Int("start", -1, "selection start in runes")
	cmd.Flags().Int("end", -1, "selection end in runes")
	cmd.Flags().Bool("show-selection", false, "print the resulting selection on stderr")
	cmd.MarkFlagsMutuallyExclusive("at", "start")
	cmd.MarkFlagsMutuallyExclusive("at", "end")
	cmd.MarkFlagsRequiredTogether("start", "end")
}

// readBuffer builds the buffer to edit from --text (or stdin) and the
// selection flags. Out-of-range offsets are clamped and a reversed range is
// swapped.
func readBuffer(cmd *cobra.Command) (compose.Buffer, error) {
	text, err := readText(cmd)
	if err != nil {
		return compose.Buffer{}, err
	}
	total := utf8.RuneCountInString(text)

	at, _ := cmd.Flags().GetInt("at")
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")

	sel := compose.Caret(total)
	switch {
	case cmd.Flags().Changed("start"):
		sel = compose.Range{Start: start, End: end}
	case cmd.Flags().Changed("at"):
		sel = compose.Caret(at)
	}
	return compose.NewBuffer(text, sel), nil
}

// readText returns --text or stdin with CRLF line breaks folded to LF.
func readText(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("text") {
		text, err := cmd.Flags().GetString("text")
		return normalizeLineBreaks(text), err
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if !utf8.Valid(data) {
		return "", errors.New("read stdin: input is not valid UTF-8")
	}
	// A single trailing newline comes from the shell, not the draft.
	return strings.TrimSuffix(normalizeLineBreaks(string(data)), "\n"), nil
}

func normalizeLineBreaks(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// printBuffer writes the edited text on stdout and, with --show-selection,
// the selection on stderr.
func printBuffer(cmd *cobra.Command, b compose.Buffer) {
	fmt.Fprintln(cmd.OutOrStdout(), b.Text)
	if show, _ := cmd.Flags().GetBool("show-selection"); show {
		fmt.Fprintf(cmd.ErrOrStderr(), "selection: %d %d\n", b.Selection.Start, b.Selection.End)
	}
}

// newEngine binds an engine to an in-memory surface holding b.
func newEngine(b compose.Buffer) *compose.Engine {
	return compose.NewEngine(compose.NewNativeMemory(b.Text, b.Selection))
}
