package bookart

import (
	"io"
	"log/slog"
)

// Option configures [Generate].
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics Metrics
}

// WithLogger makes Generate report its progress to l. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics used to measure page labels. It defaults to
// [DefaultMetrics].
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Generate runs the whole pipeline: it collects the design from src, scales
// it to the line distance, builds the clip masks and lays out the guide
// lines on physical pages.
//
// Group transforms of the collected design are modified in place; src
// itself is not. If src contains no eligible shapes, Generate logs a notice
// and returns an empty pattern, which applies as a no-op.
func Generate(src Source, s Settings, opts ...Option) *Pattern {
	o := options{
		logger:  discardLogger(),
		metrics: DefaultMetrics(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	d := Collect(src, s)
	if d.Empty() {
		log.Info("no eligible shapes in document, nothing to do")
		return &Pattern{Settings: s, Design: d}
	}
	shapes := 0
	for _, g := range d.Groups {
		shapes += g.Len()
	}
	log.Debug("collected design", "groups", len(d.Groups), "shapes", shapes)

	s, sc := ScaleDesign(d, s)
	log.Debug("scaled design",
		"natural_spacing", sc.NaturalSpacing,
		"factor", sc.Factor,
		"auto_fit", sc.AutoFit,
		"line_distance", s.LineDistance)

	masks := BuildClipMasks(d)
	p := Layout(d, s, masks, o.metrics)
	p.Scaling = sc
	log.Debug("laid out pattern",
		"lines", s.TotalPages,
		"pages", len(p.Pages),
		"lines_per_page", p.LinesPerPage)
	return p
}
