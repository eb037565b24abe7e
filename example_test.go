package bookart_test

import (
	"fmt"

	"honnef.co/go/bookart"
	"honnef.co/go/curve"
)

type document []bookart.Shape

func (d document) Shapes() []bookart.Shape    { return d }
func (d document) Selection() []bookart.Shape { return nil }

func ExampleGenerate() {
	cfg := bookart.DefaultConfig()
	cfg.FirstPage = 0
	cfg.LastPage = 20
	cfg.Units = bookart.UnitPixel
	cfg.LineDistance = 1
	s, err := bookart.Derive(cfg, 1)
	if err != nil {
		panic(err)
	}

	silhouette := document{{
		Kind:      bookart.RectShape,
		Fill:      bookart.Black,
		Transform: curve.Identity,
		Geometry:  curve.Rect{X0: 0, Y0: 0, X1: 20, Y1: 40}.Path(0.1),
	}}
	p := bookart.Generate(silhouette, s)

	fmt.Println("sheets:", len(p.Pages))
	fmt.Println("scale:", p.Scaling.Factor)
	seg := p.Pages[0].Segment
	for _, b := range seg.Bands {
		fmt.Printf("%s band: %d lines\n", b.Kind, b.Len())
	}
	for _, l := range seg.Labels.Labels {
		fmt.Printf("page %s, %s label\n", l.Text(), l.Size)
	}
	// Output:
	// sheets: 1
	// scale: 0.5
	// pattern band: 10 lines
	// half-decade band: 0 lines
	// background band: 0 lines
	// page 0, small label
	// page 10, normal label
	// page 18, small label
}
