package render

// PageSize is a physical page size in points.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// A4 is the only page size the pipeline produces.
var A4 = PageSize{Width: 595.28, Height: 841.89}

// Document is a paginated drawing tree: structural layout instructions
// ready for handoff to a PDF-producing backend. The backend owns text
// wrapping and pagination overflow; the tree only fixes structure, order,
// and styling.
type Document struct {
	Pages []*Page `json:"pages"`
}

// Page is one sized page of the document.
type Page struct {
	Size    PageSize `json:"size"`
	Content []*Node  `json:"content"`
}

// NodeKind discriminates the two node types of the tree.
type NodeKind string

const (
	KindBox  NodeKind = "box"
	KindText NodeKind = "text"
)

// Align positions text horizontally inside its box.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Style carries the structural layout knobs a node may set. Zero values
// mean "inherit/default" for the backend.
type Style struct {
	FontFamily   string  `json:"fontFamily,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty"`
	Bold         bool    `json:"bold,omitempty"`
	Italic       bool    `json:"italic,omitempty"`
	Uppercase    bool    `json:"uppercase,omitempty"`
	Color        string  `json:"color,omitempty"`
	Background   string  `json:"background,omitempty"`
	Align        Align   `json:"align,omitempty"`
	Row          bool    `json:"row,omitempty"`
	SpaceBetween bool    `json:"spaceBetween,omitempty"`
	WidthPct     float64 `json:"widthPct,omitempty"`
	BorderBottom bool    `json:"borderBottom,omitempty"`
	LineHeight   float64 `json:"lineHeight,omitempty"`
	MarginLeft   float64 `json:"marginLeft,omitempty"`
	MarginBottom float64 `json:"marginBottom,omitempty"`
	Padding      float64 `json:"padding,omitempty"`
}

// Node is one box or text run of the drawing tree.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Style    Style    `json:"style"`
	Children []*Node  `json:"children,omitempty"`
}

// Text creates a text node.
func Text(text string, style Style) *Node {
	return &Node{Kind: KindText, Text: text, Style: style}
}

// Box creates a container node.
func Box(style Style, children ...*Node) *Node {
	return &Node{Kind: KindBox, Style: style, Children: children}
}

// Append adds children to a box, skipping nils so callers can pass the
// result of conditional builders directly.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Texts collects every text run in document order. Useful for backends
// that only need content, and for tests.
func (d *Document) Texts() []string {
	var out []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == KindText && n.Text != "" {
			out = append(out, n.Text)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, p := range d.Pages {
		for _, n := range p.Content {
			walk(n)
		}
	}
	return out
}
