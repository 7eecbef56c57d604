// Package config loads barview settings from a JSON file. Settings describe
// the composition-time defaults: the theme, the output size, and the chart
// style that gets injected as the ambient style before rendering.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/barview/internal/chart"
)

type OutputConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleConfig is the serializable mirror of chart.BarStyle. Show flags and
// the label count are pointers so "absent" stays distinguishable from an
// explicit false/zero.
type StyleConfig struct {
	BarMinHeight float64  `json:"bar_min_height"`
	BarColor     string   `json:"bar_color"`
	AxisPosition string   `json:"axis_position"` // leading, trailing, hidden
	AxisPadding  float64  `json:"axis_padding"`
	ShowGrid     *bool    `json:"show_grid,omitempty"`
	GridColor    string   `json:"grid_color"`
	ShowLabels   *bool    `json:"show_labels,omitempty"`
	LabelFont    string   `json:"label_font"` // caption, body, headline
	LabelColor   string   `json:"label_color"`
	LabelCount   *int     `json:"label_count,omitempty"`
	ShowLegends  *bool    `json:"show_legends,omitempty"`
	CornerRadius *float64 `json:"corner_radius,omitempty"`
	Corners      []string `json:"corners"` // top-left, top-right, bottom-left, bottom-right
}

type Config struct {
	Theme  string       `json:"theme"`
	Output OutputConfig `json:"output"`
	Style  StyleConfig  `json:"style"`
}

func DefaultConfig() Config {
	return Config{
		Theme: "Catppuccin Mocha",
		Output: OutputConfig{
			Width:  80,
			Height: 24,
		},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "barview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "barview")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Output.Width <= 0 {
		cfg.Output.Width = DefaultConfig().Output.Width
	}
	if cfg.Output.Height <= 0 {
		cfg.Output.Height = DefaultConfig().Output.Height
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultConfig().Theme
	}

	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// BarStyle resolves the style section against the built-in defaults: every
// absent or invalid field keeps its chart.DefaultBarStyle value.
func (sc StyleConfig) BarStyle() chart.BarStyle {
	style := chart.DefaultBarStyle()

	if sc.BarMinHeight > 0 {
		style.BarMinHeight = sc.BarMinHeight
	}
	if sc.BarColor != "" {
		style.BarColor = lipgloss.Color(sc.BarColor)
	}
	switch sc.AxisPosition {
	case "leading":
		style.AxisPosition = chart.AxisLeading
	case "trailing":
		style.AxisPosition = chart.AxisTrailing
	case "hidden":
		style.AxisPosition = chart.AxisHidden
	}
	if sc.AxisPadding > 0 {
		style.AxisPadding = sc.AxisPadding
	}
	if sc.ShowGrid != nil {
		style.ShowGrid = *sc.ShowGrid
	}
	if sc.GridColor != "" {
		style.GridColor = lipgloss.Color(sc.GridColor)
	}
	if sc.ShowLabels != nil {
		style.ShowLabels = *sc.ShowLabels
	}
	switch sc.LabelFont {
	case "caption":
		style.LabelFont = chart.FontCaption
	case "body":
		style.LabelFont = chart.FontBody
	case "headline":
		style.LabelFont = chart.FontHeadline
	}
	if sc.LabelColor != "" {
		style.LabelColor = lipgloss.Color(sc.LabelColor)
	}
	if sc.LabelCount != nil {
		count := *sc.LabelCount
		style.LabelCount = &count
	}
	if sc.ShowLegends != nil {
		style.ShowLegends = *sc.ShowLegends
	}
	if sc.CornerRadius != nil && *sc.CornerRadius >= 0 {
		style.CornerRadius = *sc.CornerRadius
	}
	if len(sc.Corners) > 0 {
		style.Corners = parseCorners(sc.Corners)
	}

	return style
}

func parseCorners(names []string) chart.Corner {
	var mask chart.Corner
	for _, name := range names {
		switch name {
		case "top-left":
			mask |= chart.CornerTopLeft
		case "top-right":
			mask |= chart.CornerTopRight
		case "bottom-left":
			mask |= chart.CornerBottomLeft
		case "bottom-right":
			mask |= chart.CornerBottomRight
		case "top":
			mask |= chart.CornersTop
		case "all":
			mask |= chart.CornersAll
		}
	}
	return mask
}
