package bookart

import "strings"

// Format is a physical output page format.
type Format string

const (
	FormatA4     Format = "a4"
	FormatLetter Format = "letter"
)

// ParseFormat parses a document format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatA4, FormatLetter:
		return f, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Size returns the page size of f in pixels.
func (f Format) Size() (width, height float64) {
	if f == FormatLetter {
		// US Letter: 8.5 × 11 in
		return UnitInch.Pixels(8.5), UnitInch.Pixels(11)
	}
	// A4: 210 × 297 mm
	return UnitMillimeter.Pixels(210), UnitMillimeter.Pixels(297)
}

// Palette holds the four configurable colors.
type Palette struct {
	// Pattern colors the pattern bands when pattern colors aren't kept.
	Pattern Color
	// Highlight1 colors the bottom alignment line.
	Highlight1 Color
	// Highlight2 colors the half-decade band.
	Highlight2 Color
	// Background colors the background band.
	Background Color
}

// DefaultPalette is the palette of [DefaultConfig].
var DefaultPalette = Palette{
	Pattern:    Color{0x00, 0x00, 0x00, 0xff},
	Highlight1: Color{0xed, 0x33, 0x3b, 0xff},
	Highlight2: Color{0xff, 0xbe, 0x6f, 0xff},
	Background: Color{0xf9, 0xf0, 0x6b, 0xff},
}

// Config is the user-facing configuration. Lengths are expressed in Units,
// except for PageMargins, which is expressed in MarginUnit.
type Config struct {
	FirstPage   int
	LastPage    int
	PagesBefore int
	PagesAfter  int

	BookHeight float64
	// LineDistance is the distance between two guide lines. Zero fits the
	// lines to the design's natural width.
	LineDistance       float64
	VerticalAdjustment float64
	// MarginBottom anchors the bottom of the lines this far below the
	// design. Zero centers the lines on the design instead.
	MarginBottom float64
	FontSize     float64
	StrokeWidth  float64
	Units        Unit

	DocumentFormat Format
	PageMargins    float64
	MarginUnit     Unit

	Colors           Palette
	KeepPatternColor bool
	BottomLine       bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FirstPage:      2,
		LastPage:       250,
		BookHeight:     150,
		FontSize:       3,
		StrokeWidth:    0.265,
		Units:          UnitMillimeter,
		DocumentFormat: FormatA4,
		PageMargins:    1,
		MarginUnit:     UnitMillimeter,
		Colors:         DefaultPalette,
	}
}

// MinLineDistance is the smallest line distance, in user units, that
// settings ever carry.
const MinLineDistance = 1e-3

// LabelGap is added to the font size to place the label baseline below the
// bottom of the guide lines, in user units.
const LabelGap = 2

// PageGap is the horizontal gap, in user units, between physical pages.
const PageGap = 5

// Settings is the derived configuration. All lengths are in document user
// units. Settings are produced by [Derive] and treated as immutable; stages
// that change the effective line distance return a modified copy.
type Settings struct {
	FirstPage   int
	LastPage    int
	PagesBefore int
	PagesAfter  int
	// TotalPages is the number of guide lines, (LastPage - FirstPage) / 2.
	TotalPages int
	// DesignPages is the number of guide lines covered by the design.
	DesignPages int

	BookHeight         float64
	LineDistance       float64
	AutoLineDistance   bool
	VerticalAdjustment float64
	MarginBottom       float64
	FontSize           float64
	StrokeWidth        float64

	Format      Format
	PageWidth   float64
	PageHeight  float64
	PageMargins float64

	Colors           Palette
	KeepPatternColor bool
	BottomLine       bool
}

// Derive validates cfg and converts it into settings. userPerPx is the
// number of document user units per CSS pixel; values ≤ 0 are treated as 1.
func Derive(cfg Config, userPerPx float64) (Settings, error) {
	if cfg.FirstPage >= cfg.LastPage {
		return Settings{}, newConfigError("first_page", ErrPageRange)
	}
	ints := []struct {
		field string
		v     int
	}{
		{"pages_before", cfg.PagesBefore},
		{"pages_after", cfg.PagesAfter},
	}
	for _, f := range ints {
		if f.v < 0 {
			return Settings{}, newConfigError(f.field, ErrNegative)
		}
	}
	floats := []struct {
		field string
		v     float64
	}{
		{"book_height", cfg.BookHeight},
		{"line_distance", cfg.LineDistance},
		{"margin_bottom", cfg.MarginBottom},
		{"font_size", cfg.FontSize},
		{"stroke_width", cfg.StrokeWidth},
		{"page_margins", cfg.PageMargins},
	}
	for _, f := range floats {
		if f.v < 0 {
			return Settings{}, newConfigError(f.field, ErrNegative)
		}
	}
	if !cfg.Units.Valid() {
		return Settings{}, newConfigError("units", ErrUnknownUnit)
	}
	if !cfg.MarginUnit.Valid() {
		return Settings{}, newConfigError("margin_unit", ErrUnknownUnit)
	}
	if _, err := ParseFormat(string(cfg.DocumentFormat)); err != nil {
		return Settings{}, newConfigError("document_format", err)
	}

	if userPerPx <= 0 {
		userPerPx = 1
	}
	user := func(v float64, u Unit) float64 { return u.Pixels(v) * userPerPx }

	total := (cfg.LastPage - cfg.FirstPage) / 2
	pw, ph := cfg.DocumentFormat.Size()
	s := Settings{
		FirstPage:   cfg.FirstPage,
		LastPage:    cfg.LastPage,
		PagesBefore: cfg.PagesBefore,
		PagesAfter:  cfg.PagesAfter,
		TotalPages:  total,
		DesignPages: total - cfg.PagesBefore - cfg.PagesAfter,

		BookHeight:         user(cfg.BookHeight, cfg.Units),
		LineDistance:       user(cfg.LineDistance, cfg.Units),
		VerticalAdjustment: user(cfg.VerticalAdjustment, cfg.Units),
		MarginBottom:       user(cfg.MarginBottom, cfg.Units),
		FontSize:           user(cfg.FontSize, cfg.Units),
		StrokeWidth:        user(cfg.StrokeWidth, cfg.Units),

		Format:      cfg.DocumentFormat,
		PageWidth:   pw * userPerPx,
		PageHeight:  ph * userPerPx,
		PageMargins: user(cfg.PageMargins, cfg.MarginUnit),

		Colors:           cfg.Colors,
		KeepPatternColor: cfg.KeepPatternColor,
		BottomLine:       cfg.BottomLine,
	}
	if cfg.LineDistance == 0 {
		s.AutoLineDistance = true
	}
	s.LineDistance = max(s.LineDistance, MinLineDistance)
	return s, nil
}

// FirstEvenPage returns the page number of the first guide line.
func (s Settings) FirstEvenPage() int { return roundUpEven(s.FirstPage) }

// LastEvenPage returns the largest page number a guide line may carry.
func (s Settings) LastEvenPage() int { return roundUpEven(s.LastPage) }

// PageNumber returns the page number of the i-th guide line.
func (s Settings) PageNumber(i int) int { return s.FirstEvenPage() + 2*i }

// ContentWidth returns the usable width of a physical page.
func (s Settings) ContentWidth() float64 { return s.PageWidth - 2*s.PageMargins }

// WithLineDistance returns a copy of s using line distance d, floored to
// [MinLineDistance].
func (s Settings) WithLineDistance(d float64) Settings {
	s.LineDistance = max(d, MinLineDistance)
	return s
}

func roundUpEven(n int) int {
	if n%2 != 0 {
		n++
	}
	return n
}
