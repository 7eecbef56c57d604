// Package termrender rasterizes chart layout trees into styled terminal
// output. One cell per layout unit: bars become columns of block characters,
// grid lines dashes, the limit line a solid rule. All styling goes through
// lipgloss so the output degrades with the terminal's color profile.
package termrender

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/barview/internal/chart"
)

const (
	barRune    = '█'
	trackRune  = '░'
	ruleRune   = '─'
	gridRune   = '╌'
	swatchRune = '■'
)

type cell struct {
	r     rune
	color lipgloss.Color
	bold  bool
}

type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *canvas) set(x, y int, r rune, color lipgloss.Color, bold bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, color: color, bold: bold}
}

// lines joins each row into a string, coalescing runs that share a style so
// the output stays compact.
func (c *canvas) lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		var run []rune
		var cur cell
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if cur.color != "" || cur.bold {
				style := lipgloss.NewStyle().Foreground(cur.color)
				if cur.bold {
					style = style.Bold(true)
				}
				s = style.Render(s)
			}
			sb.WriteString(s)
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if len(run) > 0 && (cl.color != cur.color || cl.bold != cur.bold) {
				flush()
			}
			cur = cl
			run = append(run, cl.r)
		}
		flush()
		out[y] = strings.TrimRight(sb.String(), " ")
	}
	return out
}

// Render paints the layout tree and returns the finished chart as terminal
// lines joined by newlines. The canvas size comes from the tree's root
// frame; nodes reaching outside it are clipped.
func Render(root *chart.Node) string {
	if root == nil {
		return ""
	}
	w := int(math.Ceil(root.Frame.Right()))
	h := int(math.Ceil(root.Frame.Bottom()))
	if w <= 0 || h <= 0 {
		return ""
	}

	cv := newCanvas(w, h)
	paint(cv, root)
	return strings.Join(cv.lines(), "\n")
}

// paint draws a node and then its children, so later siblings overdraw
// earlier ones. The limit rule lands after the bars for exactly this reason.
func paint(cv *canvas, n *chart.Node) {
	switch n.Kind {
	case chart.NodeBar:
		paintBar(cv, n)
	case chart.NodeRule:
		paintHLine(cv, n, ruleRune, false)
	case chart.NodeGridLine:
		paintHLine(cv, n, gridRune, n.Dashed)
	case chart.NodeText:
		paintText(cv, n)
	case chart.NodeSwatch:
		cv.set(round(n.Frame.X), round(n.Frame.Y), swatchRune, n.Color, false)
	}
	for _, c := range n.Children {
		paint(cv, c)
	}
}

func paintBar(cv *canvas, n *chart.Node) {
	x0, x1 := round(n.Frame.X), round(n.Frame.Right())
	if x1 <= x0 {
		x1 = x0 + 1 // a bar is never thinner than one cell
	}
	yTop := round(n.Frame.Y)
	yBottom := round(n.Frame.Bottom())
	// Zero-height bars leave a single track cell so the slot stays visible.
	if n.Frame.H <= 0 {
		for x := x0; x < x1; x++ {
			cv.set(x, yBottom-1, trackRune, n.Color, false)
		}
		return
	}
	if yBottom <= yTop {
		yTop = yBottom - 1
	}
	for y := yTop; y < yBottom; y++ {
		for x := x0; x < x1; x++ {
			cv.set(x, y, barRune, n.Color, false)
		}
	}
}

func paintHLine(cv *canvas, n *chart.Node, r rune, dashed bool) {
	y := round(n.Frame.Y)
	x0, x1 := round(n.Frame.X), round(n.Frame.Right())
	for x := x0; x < x1; x++ {
		if dashed && (x-x0)%2 == 1 {
			continue
		}
		cv.set(x, y, r, n.Color, false)
	}
}

func paintText(cv *canvas, n *chart.Node) {
	text := n.Text
	maxW := round(n.Frame.W)
	if maxW <= 0 {
		return
	}
	if ansi.StringWidth(text) > maxW {
		text = ansi.Truncate(text, maxW, "…")
	}
	// Center within the frame so down-sampled labels sit under their bars.
	x := round(n.Frame.X) + (maxW-ansi.StringWidth(text))/2
	y := round(n.Frame.Y)
	bold := n.Font == chart.FontHeadline
	for i, r := range []rune(text) {
		cv.set(x+i, y, r, n.Color, bold)
	}
}

func round(f float64) int {
	return int(math.Round(f))
}
