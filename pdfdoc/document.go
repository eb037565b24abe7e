// Package pdfdoc renders book art patterns as printable PDF documents, one
// PDF page per physical page.
package pdfdoc

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"honnef.co/go/bookart"
	"honnef.co/go/curve"
)

// Font used for page labels. It is one of the PDF core fonts and needs no
// embedding.
const labelFont = "Helvetica"

// Document is a PDF canvas. It collects the pages of a pattern and renders
// them when written.
type Document struct {
	// Points per user unit.
	scale float64

	title    string
	created  time.Time
	compress bool

	width, height float64
	pages         []bookart.PhysicalPage
}

var _ bookart.Canvas = (*Document)(nil)

// Option configures a [Document].
type Option func(*Document)

// WithTitle sets the title stored in the document's metadata.
func WithTitle(title string) Option {
	return func(d *Document) { d.title = title }
}

// WithCreationDate fixes the creation date stored in the document's
// metadata. By default the time of writing is used.
func WithCreationDate(t time.Time) Option {
	return func(d *Document) { d.created = t }
}

// WithCompression enables or disables compression of page content. It is
// enabled by default.
func WithCompression(compress bool) Option {
	return func(d *Document) { d.compress = compress }
}

// New returns an empty document for patterns whose lengths are in user
// units, with userPerPx user units per CSS pixel. Values ≤ 0 are treated
// as 1.
func New(userPerPx float64, opts ...Option) *Document {
	if userPerPx <= 0 {
		userPerPx = 1
	}
	d := &Document{
		// 72 points per inch, 96 pixels per inch.
		scale:    72.0 / 96.0 / userPerPx,
		compress: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetCanvasSize implements bookart.Canvas.
func (d *Document) SetCanvasSize(width, height float64) {
	d.width, d.height = width, height
}

// RemovePages implements bookart.Canvas.
func (d *Document) RemovePages() {
	d.pages = nil
}

// RegisterClipMasks implements bookart.Canvas. PDF has no shared clip
// definitions, so it does nothing; masks are emitted on every page that
// uses them.
func (d *Document) RegisterClipMasks([]bookart.ClipMask) {}

// AddPage implements bookart.Canvas.
func (d *Document) AddPage(p bookart.PhysicalPage) {
	d.pages = append(d.pages, p)
}

// Pages returns the pages added to the document.
func (d *Document) Pages() []bookart.PhysicalPage { return d.pages }

// Write renders the document's pages as PDF. A document without pages
// yields a single blank page of the canvas size.
func (d *Document) Write(w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: max(d.width*d.scale, 1), Ht: max(d.height*d.scale, 1)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(d.compress)
	pdf.SetCreator("bookart", true)
	if d.title != "" {
		pdf.SetTitle(d.title, true)
	}
	if !d.created.IsZero() {
		pdf.SetCreationDate(d.created)
	}
	pdf.SetFont(labelFont, "", 12)
	pdf.SetLineCapStyle("butt")

	if len(d.pages) == 0 {
		pdf.AddPage()
	}
	for _, p := range d.pages {
		d.drawPage(pdf, p)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("pdfdoc: rendering %s: %w", p.Name(), err)
		}
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdfdoc: writing document: %w", err)
	}
	return nil
}

// Render writes p as a PDF document to w.
func Render(w io.Writer, p *bookart.Pattern, userPerPx float64, opts ...Option) error {
	d := New(userPerPx, opts...)
	p.Apply(d)
	return d.Write(w)
}

func (d *Document) drawPage(pdf *gofpdf.Fpdf, p bookart.PhysicalPage) {
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: p.Width * d.scale, Ht: p.Height * d.scale})
	seg := p.Segment

	// Canvas coordinates to points on this page.
	aff := p.Transform().
		ThenTranslate(curve.Vec(-p.X, -p.Y)).
		ThenScale(d.scale, d.scale)
	pt := func(x, y float64) curve.Point {
		return curve.Pt(x, y).Transform(aff)
	}

	pdf.SetLineWidth(seg.StrokeWidth * d.scale)
	for _, b := range seg.Bands {
		if b.Len() == 0 {
			continue
		}
		clip := b.Clip != nil && len(b.Clip.Paths) > 0
		if clip {
			pdf.RawWriteStr(clipOps(b.Clip, aff, p.Height*d.scale))
		}
		setStroke(pdf, b.Color)
		for _, s := range b.Strokes {
			p0, p1 := pt(s.X, s.Top), pt(s.X, s.Bottom)
			pdf.Line(p0.X, p0.Y, p1.X, p1.Y)
		}
		resetAlpha(pdf, b.Color)
		if clip {
			pdf.RawWriteStr("Q")
		}
	}

	if labels := seg.Labels; labels.Len() > 0 {
		for _, l := range labels.Labels {
			size := labels.SizeOf(l.Size) * d.scale
			c := l.Size.Color()
			pdf.SetFontSize(size)
			pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
			text := l.Text()
			at := pt(l.X, labels.Baseline)
			pdf.Text(at.X-pdf.GetStringWidth(text)/2, at.Y, text)
		}
	}

	if l := seg.BottomLine; l != nil {
		setStroke(pdf, seg.BottomLineColor)
		p0, p1 := l.P0.Transform(aff), l.P1.Transform(aff)
		pdf.Line(p0.X, p0.Y, p1.X, p1.Y)
		resetAlpha(pdf, seg.BottomLineColor)
	}
}

func setStroke(pdf *gofpdf.Fpdf, c bookart.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	if c.A != 0xff {
		pdf.SetAlpha(c.Opacity(), "Normal")
	}
}

func resetAlpha(pdf *gofpdf.Fpdf, c bookart.Color) {
	if c.A != 0xff {
		pdf.SetAlpha(1, "Normal")
	}
}

// clipOps returns the operators that save the graphics state and intersect
// the clip region with the union of the mask's shapes, transformed by aff.
// height is the page height in points; PDF's y axis points up.
func clipOps(m *bookart.ClipMask, aff curve.Affine, height float64) string {
	var sb strings.Builder
	sb.WriteString("q\n")
	op := func(name string, pts ...curve.Point) {
		for _, p := range pts {
			fmt.Fprintf(&sb, "%.5f %.5f ", p.X, height-p.Y)
		}
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	for _, path := range m.Paths {
		var cur, start curve.Point
		for _, el := range path.Transform(aff) {
			switch el.Kind {
			case curve.MoveToKind:
				op("m", el.P0)
				cur, start = el.P0, el.P0
			case curve.LineToKind:
				op("l", el.P0)
				cur = el.P0
			case curve.QuadToKind:
				c := curve.QuadBez{P0: cur, P1: el.P0, P2: el.P1}.Raise()
				op("c", c.P1, c.P2, c.P3)
				cur = el.P1
			case curve.CubicToKind:
				op("c", el.P0, el.P1, el.P2)
				cur = el.P2
			case curve.ClosePathKind:
				sb.WriteString("h\n")
				cur = start
			}
		}
	}
	sb.WriteString("W n")
	return sb.String()
}
