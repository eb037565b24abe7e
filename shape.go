package bookart

import (
	"honnef.co/go/curve"
)

// ShapeKind identifies the primitive a [Shape] was read from.
type ShapeKind int

const (
	// Anything that can't serve as a design shape, such as text or images.
	OtherShape ShapeKind = iota
	RectShape
	CircleShape
	EllipseShape
	PathShape
)

func (k ShapeKind) String() string {
	switch k {
	case RectShape:
		return "rect"
	case CircleShape:
		return "circle"
	case EllipseShape:
		return "ellipse"
	case PathShape:
		return "path"
	default:
		return "other"
	}
}

// Shape is one primitive of the design.
type Shape struct {
	// ID is the document's identifier for the shape, if any.
	ID   string
	Kind ShapeKind
	Fill Color
	// Transform is the composed transform of the shape and its ancestors.
	Transform curve.Affine
	// Geometry is the outline of the shape in its local coordinate space.
	Geometry curve.BezPath
	// Clipped is set for shapes that already carry a clip path.
	Clipped bool
}

// Eligible reports whether s can be part of a design. Clipped shapes are
// excluded because they can't serve as a clip source.
func (s Shape) Eligible() bool {
	switch s.Kind {
	case RectShape, CircleShape, EllipseShape, PathShape:
		return !s.Clipped && len(s.Geometry) > 0
	default:
		return false
	}
}

// Bake returns a copy of s with its transform applied to its geometry and
// its transform reset to the identity.
func (s Shape) Bake() Shape {
	if s.Transform == (curve.Affine{}) {
		// The zero value isn't a valid transform; treat it as the identity.
		s.Transform = curve.Identity
	}
	if s.Transform != curve.Identity {
		s.Geometry = s.Geometry.Transform(s.Transform)
	}
	s.Transform = curve.Identity
	return s
}

// BoundingBox returns the bounding box of the transformed shape.
func (s Shape) BoundingBox() curve.Rect {
	if s.Transform == (curve.Affine{}) || s.Transform == curve.Identity {
		return s.Geometry.BoundingBox()
	}
	return s.Geometry.Transform(s.Transform).BoundingBox()
}
