// Package chart builds bar-chart layout trees from labeled numeric data.
//
// The package is pure: every view derivation is a function of (data points,
// style, bounds) and never fails. Rendering backends (internal/termrender,
// internal/svgrender) consume the resulting Node tree; nothing in this
// package talks to a terminal or an SVG writer.
package chart

import "github.com/charmbracelet/lipgloss"

// Legend identifies a category shared by one or more data points. Two
// legends are the same entry when both color and label match, so the type
// stays comparable on purpose.
type Legend struct {
	Color lipgloss.Color `json:"color"`
	Label string         `json:"label"`
}

// DataPoint is one labeled value to be drawn as a bar. Value may be any real
// number; zero and negative values render as zero-height bars. Legend is
// optional.
type DataPoint struct {
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Legend *Legend `json:"legend,omitempty"`
}
