package chart

import (
	"context"

	"github.com/charmbracelet/lipgloss"
)

// ─── Style Knobs ────────────────────────────────────────────────────────────

// AxisPosition places the value axis relative to the bar track.
type AxisPosition int

const (
	AxisTrailing AxisPosition = iota // right of the bars (default)
	AxisLeading                      // left of the bars
	AxisHidden
)

// FontStyle is an abstract text role. Backends decide what it means: the
// terminal renderer maps it to lipgloss emphasis, the SVG renderer to a
// pixel size.
type FontStyle int

const (
	FontCaption FontStyle = iota
	FontBody
	FontHeadline
)

// Corner is a bit set selecting which bar corners receive rounding.
type Corner uint8

const (
	CornerTopLeft Corner = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersNone Corner = 0
	CornersTop         = CornerTopLeft | CornerTopRight
	CornersAll         = CornerTopLeft | CornerTopRight | CornerBottomLeft | CornerBottomRight
)

// Has reports whether every corner in mask is selected.
func (c Corner) Has(mask Corner) bool {
	return c&mask == mask
}

// Default palette, matching the dashboard theme the toolkit ships with.
var (
	DefaultBarColor   = lipgloss.Color("#CBA6F7")
	DefaultGridColor  = lipgloss.Color("#45475A")
	DefaultLabelColor = lipgloss.Color("#CBA6F7")
	DefaultAxisColor  = lipgloss.Color("#A6ADC8")
)

// BarStyle is the full set of visual knobs for a bar chart. It is resolved
// once per layout pass and read-only afterwards.
type BarStyle struct {
	// BarMinHeight is the minimum height of the bar track, in layout units.
	BarMinHeight float64

	// BarColor paints bars whose data point carries no legend.
	BarColor lipgloss.Color

	AxisPosition AxisPosition
	AxisPadding  float64
	AxisColor    lipgloss.Color

	ShowGrid  bool
	GridColor lipgloss.Color

	ShowLabels bool
	LabelFont  FontStyle
	LabelColor lipgloss.Color
	// LabelCount caps how many data-point labels are shown. nil shows every
	// label; zero or negative shows none.
	LabelCount *int

	ShowLegends bool

	CornerRadius float64
	Corners      Corner
}

// DefaultBarStyle returns the built-in style used whenever no ambient style
// is supplied.
func DefaultBarStyle() BarStyle {
	return BarStyle{
		BarMinHeight: 100,
		BarColor:     DefaultBarColor,
		AxisPosition: AxisTrailing,
		AxisPadding:  4,
		AxisColor:    DefaultAxisColor,
		ShowGrid:     true,
		GridColor:    DefaultGridColor,
		ShowLabels:   true,
		LabelFont:    FontCaption,
		LabelColor:   DefaultLabelColor,
		ShowLegends:  true,
		CornerRadius: 5,
		Corners:      CornersNone,
	}
}

// Style is implemented by every chart style variant. The marker method keeps
// ambient resolution honest: a context can carry at most one style value, and
// each chart kind picks out its own variant or falls back to its default.
type Style interface {
	chartStyle()
}

func (BarStyle) chartStyle() {}

type styleCtxKey struct{}

// WithStyle returns a context carrying the given chart style.
func WithStyle(ctx context.Context, s Style) context.Context {
	return context.WithValue(ctx, styleCtxKey{}, s)
}

// StyleFrom resolves the ambient bar-chart style. It is total: a nil
// context, an absent value, or a style of a different variant all yield
// DefaultBarStyle.
func StyleFrom(ctx context.Context) BarStyle {
	if ctx == nil {
		return DefaultBarStyle()
	}
	if s, ok := ctx.Value(styleCtxKey{}).(BarStyle); ok {
		return s
	}
	return DefaultBarStyle()
}
