package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/treykane/composer/internal/compose"
	"github.com/treykane/composer/internal/people"
)

func newPlaceholderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "placeholder [--stream S [--topic T] | --to a@x,b@y]",
		Short: "Print the compose box placeholder for a message target",
		Args:  cobra.NoArgs,
		RunE:  runPlaceholder,
	}
}

func runPlaceholder(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, err := people.Load(cfg.PeopleFile)
	if err != nil {
		return err
	}
	target, err := targetFromFlags(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), compose.Placeholder(target, dir, message.NewPrinter(cfg.LanguageTag())))
	return nil
}
