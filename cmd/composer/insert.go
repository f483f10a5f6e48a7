package main

import (
	"github.com/spf13/cobra"

	"github.com/treykane/composer/internal/compose"
)

func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert --syntax S [--at N | --start N --end M]",
		Short: "Insert markdown syntax with whitespace padding",
		Long: `Insert replaces the selection (or inserts at the caret) with the given
syntax. A space is added before it when it would touch the previous word and
after it when it would touch the next one.`,
		Args: cobra.NoArgs,
		RunE: runInsert,
	}

	cmd.Flags().String("syntax", "", "markdown syntax to insert")
	_ = cmd.MarkFlagRequired("syntax")
	addBufferFlags(cmd)
	return cmd
}

func runInsert(cmd *cobra.Command, _ []string) error {
	b, err := readBuffer(cmd)
	if err != nil {
		return err
	}
	syntax, _ := cmd.Flags().GetString("syntax")

	engine := newEngine(b)
	printBuffer(cmd, engine.SmartInsert(syntax, compose.SizeAuto))
	return nil
}
