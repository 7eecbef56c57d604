package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/barview/internal/chart"
)

// Theme is the visual token set for the chart viewer. Palette holds series
// colors for callers that tag data points with legends.
type Theme struct {
	Name string `json:"name"`
	Icon string `json:"icon"`

	Base    lipgloss.Color `json:"base"`
	Surface lipgloss.Color `json:"surface"`
	Text    lipgloss.Color `json:"text"`
	Subtext lipgloss.Color `json:"subtext"`
	Dim     lipgloss.Color `json:"dim"`
	Accent  lipgloss.Color `json:"accent"`

	Palette []lipgloss.Color `json:"palette"`
}

// BuiltinThemes returns the shipped theme catalog.
func BuiltinThemes() []Theme {
	return []Theme{
		{
			Name: "Catppuccin Mocha", Icon: "🐱",
			Base: "#1E1E2E", Surface: "#45475A",
			Text: "#CDD6F4", Subtext: "#A6ADC8", Dim: "#585B70",
			Accent:  "#CBA6F7",
			Palette: []lipgloss.Color{"#FAB387", "#94E2D5", "#74C7EC", "#A6E3A1", "#F9E2AF", "#B4BEFE"},
		},
		{
			Name: "Gruvbox", Icon: "🌻",
			Base: "#282828", Surface: "#504945",
			Text: "#EBDBB2", Subtext: "#D5C4A1", Dim: "#665C54",
			Accent:  "#D3869B",
			Palette: []lipgloss.Color{"#FE8019", "#8EC07C", "#83A598", "#B8BB26", "#FABD2F", "#D3869B"},
		},
		{
			Name: "Nord", Icon: "❄",
			Base: "#2E3440", Surface: "#434C5E",
			Text: "#ECEFF4", Subtext: "#D8DEE9", Dim: "#4C566A",
			Accent:  "#B48EAD",
			Palette: []lipgloss.Color{"#D08770", "#8FBCBB", "#88C0D0", "#A3BE8C", "#EBCB8B", "#B48EAD"},
		},
		{
			Name: "Dracula", Icon: "🧛",
			Base: "#282A36", Surface: "#44475A",
			Text: "#F8F8F2", Subtext: "#BFBFBF", Dim: "#6272A4",
			Accent:  "#BD93F9",
			Palette: []lipgloss.Color{"#FFB86C", "#8BE9FD", "#50FA7B", "#F1FA8C", "#FF79C6", "#BD93F9"},
		},
	}
}

// ThemeByName finds a theme case-insensitively, falling back to the first
// built-in.
func ThemeByName(name string) Theme {
	all := BuiltinThemes()
	for _, t := range all {
		if strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name)) {
			return t
		}
	}
	return all[0]
}

// Style recolors the given bar style with the theme's tokens. Legend colors
// on the data points stay untouched; only the chart chrome follows the
// theme.
func (t Theme) Style(base chart.BarStyle) chart.BarStyle {
	base.BarColor = t.Accent
	base.GridColor = t.Surface
	base.AxisColor = t.Subtext
	base.LabelColor = t.Accent
	return base
}
