package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/barview/internal/config"
	"github.com/janekbaraniewski/barview/internal/tui"
	"github.com/spf13/cobra"
)

// NewWatchCommand opens the live viewer: the chart re-renders whenever the
// data file changes on disk.
func NewWatchCommand(cfg config.Config) *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "watch <data-file>",
		Short: "Watch a dataset and re-render on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := cfg.Theme
			if themeName != "" {
				name = themeName
			}
			model := tui.NewModel(args[0], cfg.Style.BarStyle(), name)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running viewer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "color theme name (default from config)")
	return cmd
}
