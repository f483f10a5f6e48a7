package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

func newReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace --old O --new N [--all]",
		Short: "Replace syntax in the text",
		Long: `Replace swaps the first literal occurrence of --old for --new. With --all,
--old is a regular expression and every match is replaced. The replacement is
inserted literally either way.`,
		Args: cobra.NoArgs,
		RunE: runReplace,
	}

	cmd.Flags().String("old", "", "text to find (a regexp with --all)")
	cmd.Flags().String("new", "", "replacement text")
	cmd.Flags().Bool("all", false, "treat --old as a regexp and replace every match")
	_ = cmd.MarkFlagRequired("old")
	addBufferFlags(cmd)
	return cmd
}

func runReplace(cmd *cobra.Command, _ []string) error {
	b, err := readBuffer(cmd)
	if err != nil {
		return err
	}
	old, _ := cmd.Flags().GetString("old")
	replacement, _ := cmd.Flags().GetString("new")
	engine := newEngine(b)

	if all, _ := cmd.Flags().GetBool("all"); all {
		pattern, err := regexp.Compile(old)
		if err != nil {
			return fmt.Errorf("compile --old pattern: %w", err)
		}
		printBuffer(cmd, engine.ReplaceSyntaxPattern(pattern, replacement))
		return nil
	}
	printBuffer(cmd, engine.ReplaceSyntax(old, replacement))
	return nil
}
