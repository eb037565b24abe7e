package svgdoc

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func TestParsePathData(t *testing.T) {
	f := func(d string, want curve.BezPath) {
		t.Helper()
		got, err := parsePathData(d)
		if err != nil {
			t.Errorf("%q: unexpected error %v", d, err)
			return
		}
		diff(t, want, got, approx)
	}
	pt := curve.Pt
	f("M0,0 L10,0 10,10 z", curve.BezPath{
		curve.MoveTo(pt(0, 0)),
		curve.LineTo(pt(10, 0)),
		curve.LineTo(pt(10, 10)),
		curve.ClosePath(),
	})
	f("m10 10 h5 v5 h-5 z", curve.BezPath{
		curve.MoveTo(pt(10, 10)),
		curve.LineTo(pt(15, 10)),
		curve.LineTo(pt(15, 15)),
		curve.LineTo(pt(10, 15)),
		curve.ClosePath(),
	})
	// Implicit linetos after a relative moveto are relative.
	f("m1 1 2 2", curve.BezPath{
		curve.MoveTo(pt(1, 1)),
		curve.LineTo(pt(3, 3)),
	})
	f("M1-2L.5.5", curve.BezPath{
		curve.MoveTo(pt(1, -2)),
		curve.LineTo(pt(0.5, 0.5)),
	})
	f("M0 0C1 1 2 2 3 3S5 5 6 6", curve.BezPath{
		curve.MoveTo(pt(0, 0)),
		curve.CubicTo(pt(1, 1), pt(2, 2), pt(3, 3)),
		curve.CubicTo(pt(4, 4), pt(5, 5), pt(6, 6)),
	})
	f("M0 0Q1 2 2 0T4 0", curve.BezPath{
		curve.MoveTo(pt(0, 0)),
		curve.QuadTo(pt(1, 2), pt(2, 0)),
		curve.QuadTo(pt(3, -2), pt(4, 0)),
	})
	// A smooth curve without a predecessor uses the current point.
	f("M0 0S5 5 6 6", curve.BezPath{
		curve.MoveTo(pt(0, 0)),
		curve.CubicTo(pt(0, 0), pt(5, 5), pt(6, 6)),
	})
	// Drawing after a closepath starts at the subpath's start.
	f("M1 1L2 1ZL1 2", curve.BezPath{
		curve.MoveTo(pt(1, 1)),
		curve.LineTo(pt(2, 1)),
		curve.ClosePath(),
		curve.MoveTo(pt(1, 1)),
		curve.LineTo(pt(1, 2)),
	})
	f("M1e1 2E-1", curve.BezPath{curve.MoveTo(pt(10, 0.2))})
	f("", nil)
}

func TestParsePathDataArc(t *testing.T) {
	p, err := parsePathData("M0,0 A10,10 0 0 1 20,0")
	if err != nil {
		t.Fatal(err)
	}
	last := p[len(p)-1]
	if last.Kind != curve.CubicToKind || last.P2 != curve.Pt(20, 0) {
		t.Errorf("arc ends with %v", last)
	}
	// Sweeping in the positive direction passes above the chord in a y-down
	// space.
	bbox := p.BoundingBox()
	diff(t, curve.Rect{X0: 0, Y0: -10, X1: 20, Y1: 0}, bbox, cmpopts.EquateApprox(0, 1e-2))

	p, err = parsePathData("M0,0 a10,10 0 0 0 20,0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, curve.Rect{X0: 0, Y0: 0, X1: 20, Y1: 10}, p.BoundingBox(), cmpopts.EquateApprox(0, 1e-2))

	// Radii that are too small are scaled up.
	p, err = parsePathData("M0,0 A1,1 0 0 1 20,0")
	if err != nil {
		t.Fatal(err)
	}
	if h := p.BoundingBox().Height(); math.Abs(h-10) > 1e-2 {
		t.Errorf("got height %v, want 10", h)
	}

	// Zero radii draw a line.
	p, err = parsePathData("M0,0 A0,5 0 0 1 20,0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, curve.BezPath{curve.MoveTo(curve.Pt(0, 0)), curve.LineTo(curve.Pt(20, 0))}, p)

	// Flags need no separators.
	if _, err := parsePathData("M0,0a10,10 0 1120,0"); err != nil {
		t.Errorf("compact flags: %v", err)
	}
}

func TestParsePathDataErrors(t *testing.T) {
	for _, d := range []string{
		"L10,10",
		"10,10",
		"M0,0 L10",
		"M0 0 X 1 1",
		"M0 0 Z 1",
		"M0,0 A10,10 0 2 1 20,0",
	} {
		_, err := parsePathData(d)
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Attr != "d" {
			t.Errorf("%q: got %v, want *ParseError", d, err)
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got %v, want %v", d, err, ErrSyntax)
		}
	}
}

func TestParseTransform(t *testing.T) {
	f := func(s string, want curve.Affine) {
		t.Helper()
		got, err := parseTransform(s)
		if err != nil {
			t.Errorf("%q: unexpected error %v", s, err)
			return
		}
		diff(t, want, got, approx)
	}
	f("", curve.Identity)
	f("translate(10,20)", curve.Translate(curve.Vec(10, 20)))
	f("translate(10)", curve.Translate(curve.Vec(10, 0)))
	f("scale(2)", curve.Scale(2, 2))
	f("matrix(1 2 3 4 5 6)", curve.Affine{N0: 1, N1: 2, N2: 3, N3: 4, N4: 5, N5: 6})
	f("translate(10, 0) scale(2,3)", curve.Translate(curve.Vec(10, 0)).Mul(curve.Scale(2, 3)))
	f("translate(10,0),scale(2)", curve.Translate(curve.Vec(10, 0)).Mul(curve.Scale(2, 2)))
	f("skewX(45)", curve.Affine{N0: 1, N1: 0, N2: 1, N3: 1})

	rot, err := parseTransform("rotate(90)")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, curve.Pt(0, 1), curve.Pt(1, 0).Transform(rot), cmpopts.EquateApprox(0, 1e-12))

	rot, err = parseTransform("rotate(180 5 5)")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, curve.Pt(10, 10), curve.Pt(0, 0).Transform(rot), cmpopts.EquateApprox(0, 1e-12))

	for _, s := range []string{"rotate(1,2)", "matrix(1)", "translate(1", "foo(1)", "translate 1"} {
		_, err := parseTransform(s)
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Attr != "transform" {
			t.Errorf("%q: got %v, want *ParseError", s, err)
		}
	}
}

func TestScanner(t *testing.T) {
	sc := &scanner{s: " 1,-2.5e2 .5.5 3em"}
	var got []float64
	for sc.atNumber() || !sc.done() {
		v, err := sc.number()
		if err != nil {
			break
		}
		got = append(got, v)
	}
	diff(t, []float64{1, -250, 0.5, 0.5, 3}, got)
}
