package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treykane/composer/internal/compose"
)

func newWrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap (--format bold|italic|light|link | --prefix P --suffix S)",
		Short: "Wrap the selection in markdown delimiters",
		Long: `Wrap surrounds the selection with a prefix and suffix. With a caret the
result leaves the caret between them; a selection stays selected. The link
format selects the "url" placeholder instead.`,
		Args: cobra.NoArgs,
		RunE: runWrap,
	}

	cmd.Flags().String("format", "", "named format: bold, italic, light or link")
	cmd.Flags().String("prefix", "", "text inserted before the selection")
	cmd.Flags().String("suffix", "", "text inserted after the selection")
	cmd.MarkFlagsMutuallyExclusive("format", "prefix")
	cmd.MarkFlagsMutuallyExclusive("format", "suffix")
	addBufferFlags(cmd)
	return cmd
}

func runWrap(cmd *cobra.Command, _ []string) error {
	b, err := readBuffer(cmd)
	if err != nil {
		return err
	}
	engine := newEngine(b)

	if cmd.Flags().Changed("format") {
		name, _ := cmd.Flags().GetString("format")
		format, ok := compose.ParseFormat(name)
		if !ok {
			return fmt.Errorf("unknown format %q (want bold, italic, light or link)", name)
		}
		printBuffer(cmd, engine.ApplyFormat(format, compose.SizeAuto))
		return nil
	}

	prefix, _ := cmd.Flags().GetString("prefix")
	suffix, _ := cmd.Flags().GetString("suffix")
	if prefix == "" && suffix == "" {
		return errors.New("wrap needs --format or --prefix/--suffix")
	}
	printBuffer(cmd, engine.WrapSelection(prefix, suffix))
	return nil
}
