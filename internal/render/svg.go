package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cristianadrielbraun/qrstudio/internal/logo"
)

// SVG writes the QR code as a vector SVG document. The logo, if any, is
// embedded as a PNG data URL.
func (r *Renderer) SVG(opts Options, w io.Writer) error {
	m, l, err := r.prepare(opts)
	if err != nil {
		return err
	}

	size := opts.Size
	svgBuilder := strings.Builder{}
	svgBuilder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	svgBuilder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		size, size, size, size))

	if !opts.Transparent() {
		svgBuilder.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, size, size, Hex(opts.Background)))
	}

	var dots svgPath
	traceDots(&dots, m, l, opts.Dots.Type)
	if !dots.empty() {
		svgBuilder.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"/>`, dots.String(), Hex(opts.Dots.Color)))
	}

	var frames svgPath
	traceFinderFrames(&frames, m, l, opts.CornersSquare.Type)
	svgBuilder.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" fill-rule="evenodd"/>`, frames.String(), Hex(opts.CornersSquare.Color)))

	var centres svgPath
	traceFinderDots(&centres, m, l, opts.CornersDot.Type)
	svgBuilder.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"/>`, centres.String(), Hex(opts.CornersDot.Color)))

	if opts.Image != nil {
		if x, y, lw, lh, ok := l.logoRect(opts.ImageOptions.Margin); ok {
			href, err := logo.DataURL(opts.Image)
			if err != nil {
				return err
			}
			svgBuilder.WriteString(fmt.Sprintf(`<image x="%s" y="%s" width="%s" height="%s" href="%s"/>`,
				num(x), num(y), num(lw), num(lh), href))
		}
	}

	svgBuilder.WriteString(`</svg>`)

	if _, err := io.WriteString(w, svgBuilder.String()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// svgPath records pen segments as SVG path data.
type svgPath struct {
	b strings.Builder
}

func (p *svgPath) MoveTo(x, y float64) {
	p.cmd("M", x, y)
}

func (p *svgPath) LineTo(x, y float64) {
	p.cmd("L", x, y)
}

func (p *svgPath) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.cmd("C", x1, y1, x2, y2, x3, y3)
}

func (p *svgPath) ClosePath() {
	p.b.WriteString("Z")
}

func (p *svgPath) cmd(op string, coords ...float64) {
	p.b.WriteString(op)
	for i, c := range coords {
		if i > 0 {
			p.b.WriteByte(' ')
		}
		p.b.WriteString(num(c))
	}
}

func (p *svgPath) empty() bool { return p.b.Len() == 0 }

func (p *svgPath) String() string { return p.b.String() }

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
