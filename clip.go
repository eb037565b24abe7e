package bookart

import (
	"fmt"

	"honnef.co/go/curve"
)

// ClipMask limits the lines of one pattern band to the outline of one
// pattern group.
type ClipMask struct {
	// Index is the index of the pattern group, and of the band using the
	// mask.
	Index int
	// ID identifies the mask in the output document.
	ID string
	// Paths are the group's outlines, with the group transform applied.
	Paths []curve.BezPath
	// Box is the bounding box of Paths.
	Box curve.Rect
}

// BuildClipMasks returns one clip mask per pattern group of d, in group
// order.
func BuildClipMasks(d *Design) []ClipMask {
	if d.Empty() {
		return nil
	}
	masks := make([]ClipMask, len(d.Groups))
	for i, g := range d.Groups {
		paths := g.Paths()
		masks[i] = ClipMask{
			Index: i,
			ID:    fmt.Sprintf("bookart-clip-%d", i),
			Paths: paths,
			Box:   unionBoxes(paths),
		}
	}
	return masks
}
