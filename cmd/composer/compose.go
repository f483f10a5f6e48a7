package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treykane/composer/internal/app"
	"github.com/treykane/composer/internal/compose"
	"github.com/treykane/composer/internal/config"
	"github.com/treykane/composer/internal/logging"
	"github.com/treykane/composer/internal/people"
)

var cliLog = logging.New("cli")

func runCompose(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("the compose box needs a terminal; use insert, wrap or replace for pipes")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if splice, _ := cmd.Flags().GetBool("splice"); splice {
		native := false
		cfg.NativeInsert = &native
	}

	dir, err := people.Load(cfg.PeopleFile)
	if err != nil {
		return err
	}

	target, err := targetFromFlags(cmd)
	if err != nil {
		return err
	}
	text, _ := cmd.Flags().GetString("text")

	m := app.New(cfg, app.Options{Target: target, Text: text, Directory: dir})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run compose box: %w", err)
	}
	if sent, ok := m.Sent(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), sent)
	}
	return nil
}

// loadConfig reads config.json, falling back to defaults when composer has
// not been configured yet.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		cliLog.Debug("no config file, using defaults")
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// targetFromFlags builds the message target from --stream, --topic and --to.
func targetFromFlags(cmd *cobra.Command) (compose.PlaceholderOptions, error) {
	stream, _ := cmd.Flags().GetString("stream")
	topic, _ := cmd.Flags().GetString("topic")
	to, _ := cmd.Flags().GetString("to")

	stream, topic, to = strings.TrimSpace(stream), strings.TrimSpace(topic), strings.TrimSpace(to)
	switch {
	case to != "" && (stream != "" || topic != ""):
		return compose.PlaceholderOptions{}, errors.New("--to cannot be combined with --stream or --topic")
	case topic != "" && stream == "":
		return compose.PlaceholderOptions{}, errors.New("--topic needs --stream")
	case to != "":
		return compose.PlaceholderOptions{MessageType: compose.MessageTypePrivate, PrivateMessageRecipient: to}, nil
	case stream != "":
		return compose.PlaceholderOptions{MessageType: compose.MessageTypeStream, Stream: stream, Topic: topic}, nil
	}
	return compose.PlaceholderOptions{}, nil
}
