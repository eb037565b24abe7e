package bookart

import (
	"strconv"

	"honnef.co/go/curve"
)

// SizeClass is the size of a page number label.
type SizeClass int

const (
	// NormalLabel marks every tenth page.
	NormalLabel SizeClass = iota
	// SmallLabel marks the first and last line of a sheet. It is rendered at
	// half size, in grey.
	SmallLabel
)

func (c SizeClass) String() string {
	if c == SmallLabel {
		return "small"
	}
	return "normal"
}

// Color returns the fill color of labels of class c.
func (c SizeClass) Color() Color {
	if c == SmallLabel {
		return Grey
	}
	return Black
}

// PageLabel is a page number printed below a guide line.
type PageLabel struct {
	// X is the horizontal center of the label, which is the position of its
	// guide line.
	X    float64
	Page int
	Size SizeClass
}

// Text returns the label's text.
func (l PageLabel) Text() string {
	return strconv.Itoa(l.Page)
}

// PageLabelSet holds the labels of one sheet. All labels share a baseline.
type PageLabelSet struct {
	Baseline float64
	// FontSize is the size of normal labels.
	FontSize float64
	Labels   []PageLabel
}

// Len returns the number of labels.
func (s PageLabelSet) Len() int { return len(s.Labels) }

// SizeOf returns the font size of labels of class c.
func (s PageLabelSet) SizeOf(c SizeClass) float64 {
	if c == SmallLabel {
		return s.FontSize / 2
	}
	return s.FontSize
}

// BoundingBox returns the bounding box of the label texts, as measured by
// m. It returns false if there are no labels.
func (s PageLabelSet) BoundingBox(m Metrics) (curve.Rect, bool) {
	var bbox curve.Rect
	for i, l := range s.Labels {
		ext := m.Measure(l.Text(), s.SizeOf(l.Size))
		r := curve.Rect{
			X0: l.X - ext.Width/2,
			Y0: s.Baseline - ext.Ascent,
			X1: l.X + ext.Width/2,
			Y1: s.Baseline + ext.Descent,
		}
		if i == 0 {
			bbox = r
		} else {
			bbox = bbox.Union(r)
		}
	}
	return bbox, len(s.Labels) > 0
}
