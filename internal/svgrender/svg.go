// Package svgrender serializes chart layout trees as standalone SVG
// documents. Layout units map to pixels through a configurable scale, so the
// same tree that fills a 40x12 terminal can render as an 800x240 image.
package svgrender

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/barview/internal/chart"
)

// Options controls the SVG serialization.
type Options struct {
	// Scale multiplies layout units into pixels. Zero means 1.
	Scale float64
	// Background fills the canvas when non-empty.
	Background string
}

// fontSizes maps the abstract font roles onto pixel sizes.
var fontSizes = map[chart.FontStyle]float64{
	chart.FontCaption:  11,
	chart.FontBody:     14,
	chart.FontHeadline: 18,
}

// Render serializes the tree. Decorative nodes carry aria-hidden so the
// SVG's accessibility tree mirrors the layout tree's intent.
func Render(root *chart.Node, opts Options) string {
	if root == nil {
		return ""
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	w := root.Frame.Right() * scale
	h := root.Frame.Bottom() * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(w), num(h), num(w), num(h))
	sb.WriteByte('\n')
	if opts.Background != "" {
		fmt.Fprintf(&sb, `<rect width="%s" height="%s" fill="%s"/>`, num(w), num(h), opts.Background)
		sb.WriteByte('\n')
	}
	writeNode(&sb, root, scale)
	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeNode(sb *strings.Builder, n *chart.Node, scale float64) {
	f := n.Frame
	x, y := f.X*scale, f.Y*scale
	w, h := f.W*scale, f.H*scale

	switch n.Kind {
	case chart.NodeBar:
		rx := ""
		if n.CornerRadius > 0 && n.Corners != chart.CornersNone {
			rx = fmt.Sprintf(` rx="%s"`, num(n.CornerRadius))
		}
		fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s>`,
			num(x), num(y), num(w), num(h), fill(n.Color), rx)
		fmt.Fprintf(sb, `<title>%s</title></rect>`, escape(n.Text))
		sb.WriteByte('\n')
	case chart.NodeRule, chart.NodeGridLine:
		dash := ""
		if n.Dashed {
			dash = ` stroke-dasharray="4 4"`
		}
		fmt.Fprintf(sb, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"%s%s/>`,
			num(x), num(y), num(x+w), num(y), fill(n.Color), dash, hidden(n))
		sb.WriteByte('\n')
	case chart.NodeText:
		fmt.Fprintf(sb, `<text x="%s" y="%s" font-size="%s" fill="%s"%s>%s</text>`,
			num(x), num(y+fontSizes[n.Font]), num(fontSizes[n.Font]), fill(n.Color), hidden(n), escape(n.Text))
		sb.WriteByte('\n')
	case chart.NodeSwatch:
		fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`,
			num(x), num(y), num(w), num(h), fill(n.Color), hidden(n))
		sb.WriteByte('\n')
	}

	for _, c := range n.Children {
		writeNode(sb, c, scale)
	}
}

func hidden(n *chart.Node) string {
	if n.Decorative {
		return ` aria-hidden="true"`
	}
	return ""
}

func fill(c lipgloss.Color) string {
	if c == "" {
		return "currentColor"
	}
	return string(c)
}

func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
