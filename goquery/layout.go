package goquery

import "golang.org/x/net/html"

// Box describes the rendered geometry of an element, in CSS pixels.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Layout provides rendered geometry for elements. Geometry is owned by the
// host that rendered the document; parsed HTML alone has none. When no
// layout is supplied the position sub-score is neutral and visibility
// checks fall back to attributes and inline styles.
type Layout interface {
	// Viewport returns the viewport dimensions in CSS pixels.
	Viewport() (width, height float64)

	// Bounds returns the bounding box for the element, if known.
	Bounds(n *html.Node) (Box, bool)
}
