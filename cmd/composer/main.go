package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "composer",
		Short: "Markdown compose box for chat messages",
		Long: `composer opens a terminal compose box for a stream or private message.
Formatting shortcuts wrap the selection in markdown, and inserted syntax is
padded with spaces so it never runs into the surrounding words. The sent
message is printed on stdout.

The insert, wrap and replace subcommands apply the same edits to text read
from --text or stdin.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCompose,
	}

	cmd.PersistentFlags().String("stream", "", "stream the message is sent to")
	cmd.PersistentFlags().String("topic", "", "topic within the stream")
	cmd.PersistentFlags().String("to", "", "comma-separated recipient emails for a private message")
	cmd.Flags().String("text", "", "initial draft")
	cmd.Flags().Bool("splice", false, "rewrite the whole draft on every edit instead of inserting in place")

	cmd.AddCommand(newInsertCmd())
	cmd.AddCommand(newWrapCmd())
	cmd.AddCommand(newReplaceCmd())
	cmd.AddCommand(newPlaceholderCmd())
	return cmd
}

var errorColor = color.New(color.FgRed, color.Bold)

// main runs the root command. Errors are printed on stderr and exit with
// status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
