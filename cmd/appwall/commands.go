package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/config"
	"github.com/jask/appwall/internal/theme"
	"github.com/jask/appwall/internal/tui"
)

var (
	frameWidth  int
	frameHeight int
	frameTheme  string
	colorMode   string
	forceInit   bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Print a single static frame and exit",
	Long: `Renders one freshly shuffled frame of the wall to stdout without
animation. Useful for screenshots and scripts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyColorMode(colorMode); err != nil {
			return err
		}
		items, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		mode := theme.Parse(cfg.Theme.Mode)
		if frameTheme != "" {
			mode = theme.Parse(frameTheme)
		}
		if mode == theme.Unset && cfg.Theme.File != "" {
			if m, err := theme.ReadFile(cfg.Theme.File); err == nil {
				mode = m
			}
		}
		m := tui.New(tui.Options{Config: cfg, Catalog: items, Mode: mode, Logger: logger})
		fmt.Fprintln(cmd.OutOrStdout(), m.Render(frameWidth, frameHeight))
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the logo badges",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyColorMode(colorMode); err != nil {
			return err
		}
		items, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCatalog(items, frameWidth))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.Path()
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat config: %w", err)
		}
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

func init() {
	frameCmd.Flags().IntVar(&frameWidth, "width", 100, "frame width in columns")
	frameCmd.Flags().IntVar(&frameHeight, "height", 0, "frame height in rows (0 for natural height)")
	frameCmd.Flags().StringVar(&frameTheme, "theme", "", "light or dark (defaults to config)")
	catalogCmd.Flags().IntVar(&frameWidth, "width", 100, "output width in columns")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always or never")
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(frameCmd, catalogCmd, configCmd)
}

// applyColorMode pins the lipgloss color profile for non-interactive output.
func applyColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "", "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("--color must be auto, always or never, got %q", mode)
	}
	return nil
}

// renderCatalog lays badges out in rows that fit width.
func renderCatalog(items []catalog.Item, width int) string {
	perRow := max(1, width/(catalog.TileWidth+1))
	var rows []string
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		badges := make([]string, 0, 2*(end-start))
		for i, it := range items[start:end] {
			if i > 0 {
				badges = append(badges, " ")
			}
			badges = append(badges, it.Render().String())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, badges...))
	}
	return strings.Join(rows, "\n")
}
