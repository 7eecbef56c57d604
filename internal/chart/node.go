package chart

import "github.com/charmbracelet/lipgloss"

// NodeKind discriminates layout-tree nodes.
type NodeKind int

const (
	NodeGroup    NodeKind = iota
	NodeBar               // one value bar
	NodeRule              // horizontal limit/threshold line
	NodeGridLine          // decorative dashed grid line
	NodeText              // label, axis marker or legend caption
	NodeSwatch            // legend color square
)

// Rect is a rectangle in layout units. The origin is the top-left corner of
// the chart; y grows downwards, matching both the cell grid of the terminal
// renderer and the SVG coordinate system.
type Rect struct {
	X, Y, W, H float64
}

// Bottom returns the y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Node is one element of a chart layout tree. A backend walks the tree and
// paints each node inside its Frame; the tree itself carries no rendering
// state and can be walked any number of times.
type Node struct {
	Kind  NodeKind
	Frame Rect

	Color lipgloss.Color
	Text  string
	Font  FontStyle

	Dashed       bool
	CornerRadius float64
	Corners      Corner

	// Decorative nodes are hidden from assistive technology. Bars stay
	// discoverable; axis, grid, labels and legend do not.
	Decorative bool

	Children []*Node
}

// group wraps children in a container node covering frame.
func group(frame Rect, decorative bool, children ...*Node) *Node {
	return &Node{
		Kind:       NodeGroup,
		Frame:      frame,
		Decorative: decorative,
		Children:   children,
	}
}

// Walk calls fn for the node and every descendant, depth first in child
// order. Traversal order is deterministic, which is what makes layout
// comparison in tests and idempotency guarantees cheap.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every node in the tree with the given kind, in traversal
// order.
func (n *Node) FindAll(kind NodeKind) []*Node {
	var out []*Node
	n.Walk(func(m *Node) {
		if m.Kind == kind {
			out = append(out, m)
		}
	})
	return out
}
