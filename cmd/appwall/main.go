package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/config"
	"github.com/jask/appwall/internal/logging"
	"github.com/jask/appwall/internal/theme"
	"github.com/jask/appwall/internal/tui"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "appwall",
	Short: "Scrolling wall of the apps that just work",
	Long: `appwall fills the terminal with rows of scrolling logo badges and a
call-out card in the middle. Every row holds the whole catalog in its own
random order; rows alternate direction and reshuffle when the theme changes.

Keys: t toggles the theme, r reshuffles, q quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		logger, err = logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWall,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runWall(cmd *cobra.Command, _ []string) error {
	items, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mode := theme.Parse(cfg.Theme.Mode)
	var themes <-chan theme.Mode
	if cfg.Theme.File != "" {
		w, err := theme.NewWatcher(cfg.Theme.File, logger)
		if err != nil {
			return err
		}
		if m := w.Current(); m != theme.Unset {
			mode = m
		}
		if err := w.Start(ctx); err != nil {
			_ = w.Close()
			return err
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Warn("close theme watcher", zap.Error(err))
			}
		}()
		themes = w.Changes()
	}
	mode = theme.Detect(mode)

	logger.Info("starting wall",
		zap.Int("items", len(items)),
		zap.Int("lanes", cfg.Lanes.Count),
		zap.Stringer("theme", mode))

	p := tea.NewProgram(tui.New(tui.Options{
		Config:  cfg,
		Catalog: items,
		Mode:    mode,
		Themes:  themes,
		Logger:  logger,
	}), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// loadCatalog returns the configured catalog: the catalog file if set,
// otherwise the built-in logos, narrowed to catalog.include.
func loadCatalog(c config.Config) ([]catalog.Item, error) {
	items := catalog.Default()
	if c.Catalog.File != "" {
		loaded, err := catalog.LoadFile(c.Catalog.File)
		if err != nil {
			return nil, err
		}
		items = loaded
	}
	selected, err := catalog.Select(items, c.Catalog.Include)
	if err != nil {
		return nil, fmt.Errorf("catalog.include: %w", err)
	}
	return selected, nil
}
