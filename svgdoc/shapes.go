package svgdoc

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"honnef.co/go/bookart"
	"honnef.co/go/curve"
)

// skipped lists elements whose content is never rendered directly, or
// isn't geometry.
var skipped = map[string]bool{
	"defs":               true,
	"clippath":           true,
	"mask":               true,
	"symbol":             true,
	"pattern":            true,
	"marker":             true,
	"lineargradient":     true,
	"radialgradient":     true,
	"filter":             true,
	"metadata":           true,
	"title":              true,
	"desc":               true,
	"style":              true,
	"script":             true,
	"sodipodi:namedview": true,
}

// containers are elements whose children are rendered.
var containers = map[string]bool{
	"g":      true,
	"a":      true,
	"svg":    true,
	"switch": true,
}

// shapeKinds maps element names to shape kinds. Elements not listed here
// that are rendered, such as text, become ineligible shapes.
var shapeKinds = map[string]bookart.ShapeKind{
	"rect":    bookart.RectShape,
	"circle":  bookart.CircleShape,
	"ellipse": bookart.EllipseShape,
	"path":    bookart.PathShape,
}

// otherShapes are rendered elements that can't be part of a design.
var otherShapes = map[string]bool{
	"line":     true,
	"polyline": true,
	"polygon":  true,
	"text":     true,
	"image":    true,
	"use":      true,
}

// geometry returns the outline of a shape element in its local coordinate
// space. Degenerate shapes, such as rectangles without area, have no
// outline.
func geometry(n *html.Node, kind bookart.ShapeKind) (curve.BezPath, error) {
	switch kind {
	case bookart.RectShape:
		return rectGeometry(n)
	case bookart.CircleShape:
		var v [3]float64
		if err := lengths(n, []string{"cx", "cy", "r"}, v[:]); err != nil {
			return nil, err
		}
		if v[2] <= 0 {
			return nil, nil
		}
		return curve.Circle{Center: curve.Pt(v[0], v[1]), Radius: v[2]}.Path(arcTolerance), nil
	case bookart.EllipseShape:
		var v [4]float64
		if err := lengths(n, []string{"cx", "cy", "rx", "ry"}, v[:]); err != nil {
			return nil, err
		}
		if v[2] <= 0 || v[3] <= 0 {
			return nil, nil
		}
		e := curve.NewEllipse(curve.Pt(v[0], v[1]), curve.Vec(v[2], v[3]), 0)
		p := curve.BezPath(slices.Collect(e.PathElements(arcTolerance)))
		p.ClosePath()
		return p, nil
	case bookart.PathShape:
		d, _ := attr(n, "d")
		if strings.TrimSpace(d) == "" {
			return nil, nil
		}
		return parsePathData(d)
	default:
		return nil, nil
	}
}

func lengths(n *html.Node, keys []string, dst []float64) error {
	for i, k := range keys {
		v, err := lengthAttr(n, k, 0)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func rectGeometry(n *html.Node) (curve.BezPath, error) {
	var v [4]float64
	if err := lengths(n, []string{"x", "y", "width", "height"}, v[:]); err != nil {
		return nil, err
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	rx, err := lengthAttr(n, "rx", -1)
	if err != nil {
		return nil, err
	}
	ry, err := lengthAttr(n, "ry", -1)
	if err != nil {
		return nil, err
	}
	// A missing radius takes the value of the other one.
	switch {
	case rx < 0 && ry < 0:
		rx, ry = 0, 0
	case rx < 0:
		rx = ry
	case ry < 0:
		ry = rx
	}
	rx, ry = min(rx, w/2), min(ry, h/2)
	if rx == 0 || ry == 0 {
		return curve.Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}.Path(arcTolerance), nil
	}

	var pb pathBuilder
	pb.path.MoveTo(curve.Pt(x+rx, y))
	pb.cur = curve.Pt(x+rx, y)
	pb.start = pb.cur
	pb.lineTo(curve.Pt(x+w-rx, y))
	pb.arcTo(rx, ry, 0, false, true, curve.Pt(x+w, y+ry))
	pb.lineTo(curve.Pt(x+w, y+h-ry))
	pb.arcTo(rx, ry, 0, false, true, curve.Pt(x+w-rx, y+h))
	pb.lineTo(curve.Pt(x+rx, y+h))
	pb.arcTo(rx, ry, 0, false, true, curve.Pt(x, y+h-ry))
	pb.lineTo(curve.Pt(x, y+ry))
	pb.arcTo(rx, ry, 0, false, true, curve.Pt(x+rx, y))
	pb.path.ClosePath()
	return pb.path, nil
}
