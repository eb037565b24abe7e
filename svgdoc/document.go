package svgdoc

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"honnef.co/go/bookart"
	"honnef.co/go/curve"
)

// LayerID is the id of the layer that Write generates. Parse skips it so
// that regenerating a pattern from a written document ignores stale pages.
const LayerID = "bookart-layer"

// Document is an SVG document. It provides the shapes of a design and
// holds the pages of a pattern applied to it.
type Document struct {
	// Viewport size in pixels, and the unit the width was given in.
	width, height float64
	unit          bookart.Unit
	viewBox       curve.Rect

	shapes    []bookart.Shape
	ids       map[string][2]int
	selection []bookart.Shape

	// The children of the root element and the namespace declarations
	// they need, written back unchanged.
	content []*html.Node
	xmlns   []string

	clips []bookart.ClipMask
	pages []bookart.PhysicalPage
}

var (
	_ bookart.Source = (*Document)(nil)
	_ bookart.Canvas = (*Document)(nil)
)

// Parse reads an SVG document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("svgdoc: parsing document: %w", err)
	}
	svg := findSVG(root)
	if svg == nil {
		return nil, ErrNoSVG
	}

	d := &Document{
		unit: bookart.UnitPixel,
		ids:  make(map[string][2]int),
	}
	if err := d.readViewport(svg); err != nil {
		return nil, err
	}
	d.keepContent(svg)
	st := state{aff: curve.Identity, fill: bookart.Black}
	if err := d.walkChildren(svg, st); err != nil {
		return nil, err
	}
	return d, nil
}

// Namespaces declared by Write itself.
var declared = map[string]bool{
	"xmlns:xlink":    true,
	"xmlns:inkscape": true,
	"xmlns:sodipodi": true,
}

func (d *Document) keepContent(svg *html.Node) {
	for _, a := range svg.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		if strings.HasPrefix(name, "xmlns:") && !declared[name] {
			d.xmlns = append(d.xmlns, fmt.Sprintf(`%s="%s"`, name, html.EscapeString(a.Val)))
		}
	}
	for c := svg.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if id, _ := attr(c, "id"); id == LayerID || c.Data == "sodipodi:namedview" {
				continue
			}
		}
		d.content = append(d.content, c)
	}
}

func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "svg" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if svg := findSVG(c); svg != nil {
			return svg
		}
	}
	return nil
}

func (d *Document) readViewport(svg *html.Node) error {
	var vb [4]float64
	hasViewBox := false
	if s, ok := attr(svg, "viewBox"); ok && strings.TrimSpace(s) != "" {
		var err error
		vb, err = parseViewBox(s)
		if err != nil {
			return err
		}
		hasViewBox = true
	}

	size := func(key string, fallback float64) (float64, bookart.Unit, error) {
		s, ok := attr(svg, key)
		if !ok || strings.TrimSpace(s) == "" || strings.HasSuffix(strings.TrimSpace(s), "%") {
			return fallback, bookart.UnitPixel, nil
		}
		v, u, err := parseLength(s)
		if err != nil {
			return 0, "", &ParseError{key, s, err}
		}
		return u.Pixels(v), u, nil
	}
	w, unit, err := size("width", vb[2])
	if err != nil {
		return err
	}
	h, _, err := size("height", vb[3])
	if err != nil {
		return err
	}
	if !hasViewBox {
		vb = [4]float64{0, 0, w, h}
	}
	d.width, d.height, d.unit = w, h, unit
	d.viewBox = curve.Rect{X0: vb[0], Y0: vb[1], X1: vb[0] + vb[2], Y1: vb[1] + vb[3]}
	return nil
}

// UserUnitsPerPx returns the number of user units per CSS pixel, derived
// from the viewBox and the width of the document. It returns 1 if either
// is missing.
func (d *Document) UserUnitsPerPx() float64 {
	if d.width <= 0 || d.viewBox.Width() <= 0 {
		return 1
	}
	return d.viewBox.Width() / d.width
}

type state struct {
	aff     curve.Affine
	fill    bookart.Color
	clipped bool
}

func (d *Document) walkChildren(n *html.Node, st state) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if err := d.walk(c, st); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) walk(n *html.Node, st state) error {
	name := strings.ToLower(n.Data)
	if skipped[name] {
		return nil
	}
	id, _ := attr(n, "id")
	if id == LayerID {
		return nil
	}

	if s, ok := attr(n, "transform"); ok {
		aff, err := parseTransform(s)
		if err != nil {
			return err
		}
		st.aff = st.aff.Mul(aff)
	}
	st.fill = resolveFill(n, st.fill)
	st.clipped = st.clipped || clipped(n)

	lo := len(d.shapes)
	switch {
	case containers[name]:
		if err := d.walkChildren(n, st); err != nil {
			return err
		}
	case otherShapes[name]:
		d.shapes = append(d.shapes, bookart.Shape{
			ID:        id,
			Kind:      bookart.OtherShape,
			Fill:      st.fill,
			Transform: st.aff,
			Clipped:   st.clipped,
		})
	default:
		kind, ok := shapeKinds[name]
		if !ok {
			return nil
		}
		geom, err := geometry(n, kind)
		if err != nil {
			return err
		}
		d.shapes = append(d.shapes, bookart.Shape{
			ID:        id,
			Kind:      kind,
			Fill:      st.fill,
			Transform: st.aff,
			Geometry:  geom,
			Clipped:   st.clipped,
		})
	}
	if id != "" {
		d.ids[id] = [2]int{lo, len(d.shapes)}
	}
	return nil
}

// Shapes implements bookart.Source.
func (d *Document) Shapes() []bookart.Shape { return d.shapes }

// Selection implements bookart.Source.
func (d *Document) Selection() []bookart.Shape { return d.selection }

// Select selects the elements with the given ids. Selected groups
// contribute all of their descendants. Shapes are kept in document order
// and selected at most once. Calling Select without ids clears the
// selection.
func (d *Document) Select(ids ...string) error {
	var idx []int
	for _, id := range ids {
		r, ok := d.ids[id]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownID, id)
		}
		for i := r[0]; i < r[1]; i++ {
			idx = append(idx, i)
		}
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)

	d.selection = nil
	for _, i := range idx {
		d.selection = append(d.selection, d.shapes[i])
	}
	return nil
}
