// Package cli wires the command line interface to the shell.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/zelkova-tui/zelkova/internal/app"
	"github.com/zelkova-tui/zelkova/internal/config"
	"github.com/zelkova-tui/zelkova/internal/services/themewatch"
)

// Version is set at build time.
var Version = "dev"

// NewRootCmd builds the zelkova root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		theme   string
		demo    bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:          "zelkova",
		Short:        "A themed terminal shell for transient notifications",
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgFile, theme, demo, logFile)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/zelkova.toml)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme override: dark or light")
	cmd.Flags().BoolVar(&demo, "demo", false, "seed sample notifications on startup")
	cmd.Flags().StringVar(&logFile, "log", "", "write debug logs to this file")

	return cmd
}

func run(cfgFile, theme string, demo bool, logFile string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("zelkova requires an interactive terminal")
	}

	logger, cleanup, err := newLogger(logFile)
	if err != nil {
		return err
	}
	defer cleanup()

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if theme != "" {
		cfg.Theme = theme
	}

	opts := []app.Option{app.WithLogger(logger)}
	if demo {
		opts = append(opts, app.WithDemo())
	}

	// Hot reload is best-effort: without a watcher the shell still runs.
	watcher, err := themewatch.New(path, logger)
	if err != nil {
		logger.Warn("config watching disabled", "error", err)
	} else {
		defer watcher.Close()
		opts = append(opts, app.WithWatcher(watcher, path))
	}

	model := app.NewModel(cfg, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// newLogger returns a logger writing to logFile, or a silent one when
// no file is given. Logging to the terminal would fight the TUI.
func newLogger(logFile string) (*slog.Logger, func(), error) {
	if logFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
