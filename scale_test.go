package bookart

import (
	"math"
	"testing"
)

func TestScaleDesign(t *testing.T) {
	s := mustDerive(t, testConfig(0, 20))
	d := CollectShapes([]Shape{rectShape("a", 10, 0, 30, 50, red)}, false, Black)

	s2, sc := ScaleDesign(d, s)
	if !sc.Applied {
		t.Fatal("design wasn't scaled")
	}
	diff(t, 2.0, sc.NaturalSpacing, approx)
	diff(t, 0.5, sc.Factor, approx)
	diff(t, s.LineDistance, s2.LineDistance)
	want := s.LineDistance * float64(s.DesignPages)
	diff(t, want, d.Width(), approx)
	// Only the horizontal axis is scaled.
	diff(t, 50.0, d.BoundingBox().Height(), approx)

	// Scaling a scaled design doesn't change it.
	_, sc = ScaleDesign(d, s2)
	diff(t, 1.0, sc.Factor, approx)
	diff(t, want, d.Width(), approx)
}

func TestScaleDesignAuto(t *testing.T) {
	cfg := testConfig(0, 20)
	cfg.LineDistance = 0
	s := mustDerive(t, cfg)
	d := CollectShapes([]Shape{rectShape("a", 0, 0, 25, 50, red)}, false, Black)

	s2, sc := ScaleDesign(d, s)
	if !sc.AutoFit || sc.Applied {
		t.Errorf("got %+v, want auto fit without scaling", sc)
	}
	diff(t, 2.5, s2.LineDistance, approx)
	diff(t, 25.0, d.Width(), approx)
}

func TestScaleDesignAutoBelowMinimum(t *testing.T) {
	cfg := testConfig(0, 20)
	cfg.LineDistance = 0
	s := mustDerive(t, cfg)
	d := CollectShapes([]Shape{rectShape("a", 0, 0, 1e-3, 50, red)}, false, Black)

	s2, sc := ScaleDesign(d, s)
	if !sc.Applied {
		t.Fatal("design below the minimum line distance wasn't scaled")
	}
	if s2.LineDistance != MinLineDistance {
		t.Errorf("got line distance %v, want %v", s2.LineDistance, MinLineDistance)
	}
	if got, want := d.Width(), MinLineDistance*10; math.Abs(got-want) > 1e-12 {
		t.Errorf("got width %v, want %v", got, want)
	}
}

func TestScaleDesignDegenerate(t *testing.T) {
	s := mustDerive(t, testConfig(0, 20))

	// Zero width.
	d := CollectShapes([]Shape{rectShape("a", 5, 0, 5, 50, red)}, false, Black)
	if _, sc := ScaleDesign(d, s); sc.Applied || sc.Factor != 1 {
		t.Errorf("zero-width design: got %+v", sc)
	}

	// No design pages.
	cfg := testConfig(0, 20)
	cfg.PagesBefore = 5
	cfg.PagesAfter = 5
	s = mustDerive(t, cfg)
	d = CollectShapes([]Shape{rectShape("a", 0, 0, 10, 50, red)}, false, Black)
	if _, sc := ScaleDesign(d, s); sc.Applied {
		t.Errorf("design without pages: got %+v", sc)
	}
	diff(t, 10.0, d.Width())

	// Empty design.
	if _, sc := ScaleDesign(&Design{}, s); sc.Applied {
		t.Errorf("empty design: got %+v", sc)
	}
}

func TestScaleDesignMultipleGroups(t *testing.T) {
	s := mustDerive(t, testConfig(0, 20))
	d := CollectShapes([]Shape{
		rectShape("a", 0, 0, 10, 50, red),
		rectShape("b", 30, 0, 40, 50, blue),
	}, true, Black)
	ScaleDesign(d, s)
	diff(t, 10.0, d.Width(), approx)
	// The groups keep their relative placement. The topmost shape forms
	// the first group.
	diff(t, 7.5, d.Groups[0].BoundingBox().X0, approx)
	diff(t, 2.5, d.Groups[1].BoundingBox().Width(), approx)
}
