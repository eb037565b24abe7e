package bookart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

type testSource struct {
	shapes    []Shape
	selection []Shape
}

func (s testSource) Shapes() []Shape    { return s.shapes }
func (s testSource) Selection() []Shape { return s.selection }

func rectShape(id string, x0, y0, x1, y1 float64, fill Color) Shape {
	return Shape{
		ID:        id,
		Kind:      RectShape,
		Fill:      fill,
		Transform: curve.Identity,
		Geometry:  curve.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}.Path(0.1),
	}
}

// fixedMetrics measures every character as half the font size wide.
type fixedMetrics struct{}

func (fixedMetrics) Measure(text string, size float64) TextExtent {
	return TextExtent{
		Width:   float64(len(text)) * size / 2,
		Ascent:  size * 0.8,
		Descent: size * 0.2,
	}
}

// testConfig returns a configuration in pixels for the page range
// [first, last] with a line distance of one pixel.
func testConfig(first, last int) Config {
	cfg := DefaultConfig()
	cfg.FirstPage = first
	cfg.LastPage = last
	cfg.LineDistance = 1
	cfg.BookHeight = 100
	cfg.FontSize = 3
	cfg.Units = UnitPixel
	return cfg
}

func mustDerive(t *testing.T, cfg Config) Settings {
	t.Helper()
	s, err := Derive(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func bandOf(seg Segment, kind BandKind) []*LineBand {
	var out []*LineBand
	for _, b := range seg.Bands {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}
