package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/barview/internal/chart"
	"github.com/janekbaraniewski/barview/internal/config"
	"github.com/janekbaraniewski/barview/internal/dataload"
	"github.com/janekbaraniewski/barview/internal/svgrender"
	"github.com/janekbaraniewski/barview/internal/termrender"
	"github.com/janekbaraniewski/barview/internal/tui"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	format     string
	output     string
	width      int
	height     int
	theme      string
	barColor   string
	axis       string
	labelCount int
	noGrid     bool
	noLabels   bool
	noLegend   bool
	scale      float64
	background string
}

// NewRenderCommand renders a dataset once and writes the result to stdout or
// a file. Config supplies the defaults, flags override them.
func NewRenderCommand(cfg config.Config) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <data-file>",
		Short: "Render a dataset as a terminal chart or an SVG document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(cfg, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "term", "output format: term or svg")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().IntVar(&flags.width, "width", 0, "chart width in layout units (default from config)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "chart height in layout units (default from config)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "color theme name (default from config)")
	cmd.Flags().StringVar(&flags.barColor, "bar-color", "", "bar fill color, overrides the theme accent")
	cmd.Flags().StringVar(&flags.axis, "axis", "", "axis position: leading, trailing or hidden")
	cmd.Flags().IntVar(&flags.labelCount, "label-count", -1, "max number of category labels (-1 keeps all)")
	cmd.Flags().BoolVar(&flags.noGrid, "no-grid", false, "hide the grid lines")
	cmd.Flags().BoolVar(&flags.noLabels, "no-labels", false, "hide the category labels")
	cmd.Flags().BoolVar(&flags.noLegend, "no-legend", false, "hide the legend row")
	cmd.Flags().Float64Var(&flags.scale, "scale", 10, "pixels per layout unit (svg only)")
	cmd.Flags().StringVar(&flags.background, "background", "", "canvas background color (svg only)")

	return cmd
}

func runRender(cfg config.Config, flags renderFlags, path string) error {
	ds, err := dataload.Load(path)
	if err != nil {
		return err
	}
	log.Printf("render: loaded %d points from %s", len(ds.Points), path)

	style := renderStyle(cfg, flags)

	width := cfg.Output.Width
	if flags.width > 0 {
		width = flags.width
	}
	height := cfg.Output.Height
	if flags.height > 0 {
		height = flags.height
	}

	// Terminal output maps one cell per layout unit, so the pixel-sized
	// minimum track height would overflow the requested bounds.
	if flags.format == "term" && style.BarMinHeight > float64(height) {
		style.BarMinHeight = float64(height)
	}

	ctx := chart.WithStyle(context.Background(), style)
	root := ds.Chart().Layout(ctx, chart.Rect{W: float64(width), H: float64(height)})

	var out string
	switch flags.format {
	case "term":
		out = termrender.Render(root) + "\n"
	case "svg":
		out = svgrender.Render(root, svgrender.Options{
			Scale:      flags.scale,
			Background: flags.background,
		}) + "\n"
	default:
		return fmt.Errorf("unknown format %q (want term or svg)", flags.format)
	}

	if flags.output != "" {
		return os.WriteFile(flags.output, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}

// renderStyle layers config, theme and flags into the final chart style.
func renderStyle(cfg config.Config, flags renderFlags) chart.BarStyle {
	style := cfg.Style.BarStyle()

	themeName := cfg.Theme
	if flags.theme != "" {
		themeName = flags.theme
	}
	style = tui.ThemeByName(themeName).Style(style)

	if flags.barColor != "" {
		style.BarColor = lipgloss.Color(flags.barColor)
	}
	switch flags.axis {
	case "leading":
		style.AxisPosition = chart.AxisLeading
	case "trailing":
		style.AxisPosition = chart.AxisTrailing
	case "hidden":
		style.AxisPosition = chart.AxisHidden
	}
	if flags.labelCount >= 0 {
		count := flags.labelCount
		style.LabelCount = &count
	}
	if flags.noGrid {
		style.ShowGrid = false
	}
	if flags.noLabels {
		style.ShowLabels = false
	}
	if flags.noLegend {
		style.ShowLegends = false
	}

	return style
}
