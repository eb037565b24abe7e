// Command bookart generates the guide lines for folding or cutting a
// design into the pages of a book.
//
// Usage:
//
//	bookart [flags] [design.svg]
//
// The design is read from the named SVG file, or from standard input. The
// pattern is written as Inkscape SVG, one Inkscape page per printed sheet,
// or as PDF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/bookart"
	"honnef.co/go/bookart/pdfdoc"
	"honnef.co/go/bookart/svgdoc"
)

type idList []string

func (l *idList) String() string { return strings.Join(*l, ",") }

func (l *idList) Set(s string) error {
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			*l = append(*l, id)
		}
	}
	return nil
}

func colorFlag(fs *flag.FlagSet, dst *bookart.Color, name, usage string) {
	fs.Func(name, fmt.Sprintf("%s (default %s)", usage, *dst), func(s string) error {
		c, err := bookart.ParseColor(s)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	})
}

func unitFlag(fs *flag.FlagSet, dst *bookart.Unit, name, usage string) {
	fs.Func(name, fmt.Sprintf("%s (default %s)", usage, *dst), func(s string) error {
		u, err := bookart.ParseUnit(s)
		if err != nil {
			return err
		}
		*dst = u
		return nil
	})
}

type options struct {
	cfg     bookart.Config
	ids     idList
	input   string
	output  string
	format  string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{cfg: bookart.DefaultConfig()}
	cfg := &o.cfg

	fs := flag.NewFlagSet("bookart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: bookart [flags] [design.svg]")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.FirstPage, "first_page", cfg.FirstPage, "first page number of the book")
	fs.IntVar(&cfg.LastPage, "last_page", cfg.LastPage, "last page number of the book")
	fs.IntVar(&cfg.PagesBefore, "pages_before", cfg.PagesBefore, "blank pages before the design")
	fs.IntVar(&cfg.PagesAfter, "pages_after", cfg.PagesAfter, "blank pages after the design")
	fs.Float64Var(&cfg.BookHeight, "book_height", cfg.BookHeight, "height of the book")
	fs.Float64Var(&cfg.LineDistance, "line_distance", cfg.LineDistance, "distance between guide lines; 0 fits the design")
	fs.Float64Var(&cfg.VerticalAdjustment, "vertical_adjustment", cfg.VerticalAdjustment, "vertical offset of the guide lines")
	fs.Float64Var(&cfg.MarginBottom, "margin_bottom", cfg.MarginBottom, "distance of the guide lines' bottom below the design; 0 centers them")
	fs.Float64Var(&cfg.FontSize, "font_size", cfg.FontSize, "font size of page labels")
	fs.Float64Var(&cfg.StrokeWidth, "stroke_width", cfg.StrokeWidth, "width of guide lines")
	unitFlag(fs, &cfg.Units, "units", "unit of lengths: px, pt, pc, mm, cm or in")
	fs.Func("document_format", fmt.Sprintf("paper format: a4 or letter (default %s)", cfg.DocumentFormat), func(s string) error {
		f, err := bookart.ParseFormat(s)
		if err != nil {
			return err
		}
		cfg.DocumentFormat = f
		return nil
	})
	fs.Float64Var(&cfg.PageMargins, "page_margins", cfg.PageMargins, "horizontal margins of printed sheets")
	unitFlag(fs, &cfg.MarginUnit, "margin_unit", "unit of page_margins")
	colorFlag(fs, &cfg.Colors.Pattern, "color_pattern", "color of pattern lines")
	colorFlag(fs, &cfg.Colors.Highlight1, "color_highlight1", "color of the bottom line")
	colorFlag(fs, &cfg.Colors.Highlight2, "color_highlight2", "color of half-decade lines")
	colorFlag(fs, &cfg.Colors.Background, "color_background", "color of background lines")
	fs.BoolVar(&cfg.KeepPatternColor, "keep_pattern_color", cfg.KeepPatternColor, "color pattern lines like the shapes they cross")
	fs.BoolVar(&cfg.BottomLine, "bottom_line", cfg.BottomLine, "draw a line along the bottom of the guide lines")
	fs.Var(&o.ids, "id", "`id` of an element to use as the design; may be repeated")
	fs.StringVar(&o.output, "o", "", "output `file`; defaults to standard output")
	fs.StringVar(&o.format, "format", "", "output format: svg or pdf; defaults to the output file's extension, or svg")
	fs.BoolVar(&o.verbose, "v", false, "log progress")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		o.input = fs.Arg(0)
	default:
		fs.Usage()
		return nil, errors.New("too many arguments")
	}

	if o.format == "" {
		o.format = "svg"
		if strings.EqualFold(filepath.Ext(o.output), ".pdf") {
			o.format = "pdf"
		}
	}
	o.format = strings.ToLower(o.format)
	if o.format != "svg" && o.format != "pdf" {
		return nil, fmt.Errorf("unknown output format %q", o.format)
	}
	return o, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "bookart:", err)
		}
		os.Exit(2)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	in := stdin
	if o.input != "" {
		f, err := os.Open(o.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	doc, err := svgdoc.Parse(in)
	if err != nil {
		return err
	}
	if err := doc.Select(o.ids...); err != nil {
		return err
	}

	upp := doc.UserUnitsPerPx()
	s, err := bookart.Derive(o.cfg, upp)
	if err != nil {
		return err
	}
	p := bookart.Generate(doc, s, bookart.WithLogger(log))
	if p.Empty() {
		return nil
	}
	log.Info("generated pattern",
		"sheets", len(p.Pages),
		"line_distance", p.Settings.LineDistance,
		"scale", p.Scaling.Factor)

	out := stdout
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch o.format {
	case "pdf":
		err = pdfdoc.Render(out, p, upp, pdfdoc.WithTitle(title(o.input)))
	default:
		p.Apply(doc)
		err = doc.Write(out)
	}
	if err != nil {
		return err
	}
	if f, ok := out.(*os.File); ok && o.output != "" {
		return f.Close()
	}
	return nil
}

func title(input string) string {
	if input == "" {
		return "Book art pattern"
	}
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
}
