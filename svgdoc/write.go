package svgdoc

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"golang.org/x/net/html"
	"honnef.co/go/bookart"
	"honnef.co/go/curve"
)

// SetCanvasSize implements bookart.Canvas. width and height are in user
// units.
func (d *Document) SetCanvasSize(width, height float64) {
	upp := d.UserUnitsPerPx()
	d.viewBox = curve.Rect{X0: 0, Y0: 0, X1: width, Y1: height}
	d.width, d.height = width/upp, height/upp
}

// RemovePages implements bookart.Canvas.
func (d *Document) RemovePages() {
	d.pages = nil
	d.clips = nil
}

// RegisterClipMasks implements bookart.Canvas.
func (d *Document) RegisterClipMasks(masks []bookart.ClipMask) {
	d.clips = append(d.clips, masks...)
}

// AddPage implements bookart.Canvas.
func (d *Document) AddPage(p bookart.PhysicalPage) {
	d.pages = append(d.pages, p)
}

// Pages returns the pages added to the document.
func (d *Document) Pages() []bookart.PhysicalPage { return d.pages }

const (
	inkscapeNS = `xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"`
	sodipodiNS = `xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"`
)

// Write writes the document as Inkscape SVG. The content of the parsed
// document is written unchanged. If a pattern was applied, it is followed by
// a layer holding the guide lines and labels of every physical page, and
// each physical page becomes an Inkscape page.
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Decimals = 4
	opts := curve.SVGOptions{MaxPrecision: 6}

	size := func(px float64) string {
		return fmt.Sprintf("%g%s", bookart.Convert(px, bookart.UnitPixel, d.unit), d.unit)
	}
	vb := d.viewBox
	attrs := []string{
		fmt.Sprintf(`width="%s"`, size(d.width)),
		fmt.Sprintf(`height="%s"`, size(d.height)),
		fmt.Sprintf(`viewBox="%g %g %g %g"`, vb.X0, vb.Y0, vb.Width(), vb.Height()),
		inkscapeNS,
		sodipodiNS,
	}
	canvas.Startraw(append(attrs, d.xmlns...)...)

	fmt.Fprintf(canvas.Writer, "<sodipodi:namedview id=\"namedview\" inkscape:document-units=%q>\n", d.unit)
	for _, p := range d.pages {
		fmt.Fprintf(canvas.Writer,
			"<inkscape:page id=\"bookart-page-%d\" x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" inkscape:label=%q/>\n",
			p.Index+1, p.X, p.Y, p.Width, p.Height, p.Name())
	}
	fmt.Fprintln(canvas.Writer, "</sodipodi:namedview>")

	if len(d.clips) > 0 {
		canvas.Def()
		for _, c := range d.clips {
			canvas.ClipPath(fmt.Sprintf(`id="%s"`, c.ID), `clipPathUnits="userSpaceOnUse"`)
			for _, p := range c.Paths {
				canvas.Path(p.SVG(opts))
			}
			canvas.ClipEnd()
		}
		canvas.DefEnd()
	}

	for _, n := range d.content {
		if err := html.Render(canvas.Writer, n); err != nil {
			return fmt.Errorf("svgdoc: writing content: %w", err)
		}
	}
	fmt.Fprintln(canvas.Writer)

	if len(d.pages) > 0 {
		canvas.Group(
			fmt.Sprintf(`id="%s"`, LayerID),
			`inkscape:groupmode="layer"`,
			`inkscape:label="Book Art"`,
		)
		for _, p := range d.pages {
			writePage(canvas, p, opts)
		}
		canvas.Gend()
	}
	canvas.End()
	return bw.Flush()
}

func strokeAttrs(c bookart.Color, width float64) []string {
	attrs := []string{
		`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, c.Hex()),
		fmt.Sprintf(`stroke-width="%g"`, width),
	}
	if c.A != 0xff {
		attrs = append(attrs, fmt.Sprintf(`stroke-opacity="%g"`, c.Opacity()))
	}
	return attrs
}

func writePage(canvas *svg.SVG, p bookart.PhysicalPage, opts curve.SVGOptions) {
	seg := p.Segment
	canvas.Group(
		fmt.Sprintf(`id="bookart-sheet-%d"`, p.Index+1),
		fmt.Sprintf(`inkscape:label="%s"`, p.Name()),
		fmt.Sprintf(`transform="%s"`, formatTransform(p.Transform())),
	)
	for _, b := range seg.Bands {
		if b.Len() == 0 {
			continue
		}
		attrs := strokeAttrs(b.Color, seg.StrokeWidth)
		attrs = append(attrs, fmt.Sprintf(`inkscape:label="%s %d"`, b.Kind, b.Index))
		if b.Clip != nil {
			attrs = append(attrs, fmt.Sprintf(`clip-path="url(#%s)"`, b.Clip.ID))
		}
		canvas.Path(b.Path().SVG(opts), attrs...)
	}

	if seg.Labels.Len() > 0 {
		canvas.Group(`inkscape:label="Labels"`, `font-family="sans-serif"`, `text-anchor="middle"`)
		for _, l := range seg.Labels.Labels {
			canvas.Text(l.X, seg.Labels.Baseline, l.Text(),
				fmt.Sprintf(`font-size="%g"`, seg.Labels.SizeOf(l.Size)),
				fmt.Sprintf(`fill="%s"`, l.Size.Color().Hex()),
			)
		}
		canvas.Gend()
	}

	if l := seg.BottomLine; l != nil {
		attrs := append(strokeAttrs(seg.BottomLineColor, seg.StrokeWidth), `inkscape:label="Bottom line"`)
		canvas.Line(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, attrs...)
	}
	canvas.Gend()
}
