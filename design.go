package bookart

import (
	"honnef.co/go/curve"
)

// PatternGroup is a run of design shapes sharing one fill color. Its
// membership is fixed at construction; only its transform changes, when
// the design gets scaled.
type PatternGroup struct {
	Color     Color
	shapes    []Shape
	transform curve.Affine
}

func newPatternGroup(c Color, shapes ...Shape) *PatternGroup {
	return &PatternGroup{
		Color:     c,
		shapes:    shapes,
		transform: curve.Identity,
	}
}

// Len returns the number of shapes in the group.
func (g *PatternGroup) Len() int { return len(g.shapes) }

// Shapes returns the group's shapes, with their own transforms baked in but
// without the group transform. The slice must not be modified.
func (g *PatternGroup) Shapes() []Shape { return g.shapes }

// Transform returns the group transform.
func (g *PatternGroup) Transform() curve.Affine { return g.transform }

// Paths returns the outlines of the group's shapes with the group
// transform applied.
func (g *PatternGroup) Paths() []curve.BezPath {
	out := make([]curve.BezPath, len(g.shapes))
	for i, s := range g.shapes {
		if g.transform == curve.Identity {
			out[i] = s.Geometry
		} else {
			out[i] = s.Geometry.Transform(g.transform)
		}
	}
	return out
}

// BoundingBox returns the bounding box of the transformed group.
func (g *PatternGroup) BoundingBox() curve.Rect {
	return unionBoxes(g.Paths())
}

// Design is the ordered collection of pattern groups making up the
// silhouette.
type Design struct {
	Groups []*PatternGroup
}

// Empty reports whether the design has no shapes.
func (d *Design) Empty() bool {
	return d == nil || len(d.Groups) == 0
}

// BoundingBox returns the bounding box of all groups, with their transforms
// applied. The bounding box of an empty design is the zero rectangle.
func (d *Design) BoundingBox() curve.Rect {
	if d.Empty() {
		return curve.Rect{}
	}
	bbox := d.Groups[0].BoundingBox()
	for _, g := range d.Groups[1:] {
		bbox = bbox.Union(g.BoundingBox())
	}
	return bbox
}

// Width returns the width of the design's bounding box.
func (d *Design) Width() float64 {
	return d.BoundingBox().Width()
}

func unionBoxes(paths []curve.BezPath) curve.Rect {
	var bbox curve.Rect
	for i, p := range paths {
		if i == 0 {
			bbox = p.BoundingBox()
		} else {
			bbox = bbox.Union(p.BoundingBox())
		}
	}
	return bbox
}
