package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
)

// ErrInvalidSize is returned for non-positive canvas sizes.
var ErrInvalidSize = errors.New("qr size must be positive")

// Renderer draws QR codes from Options.
type Renderer struct {
	log *zap.SugaredLogger
}

// New returns a Renderer. A nil logger discards debug output.
func New(log *zap.SugaredLogger) *Renderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Renderer{log: log}
}

func (r *Renderer) prepare(opts Options) (*Matrix, layout, error) {
	if opts.Size <= 0 {
		return nil, layout{}, ErrInvalidSize
	}
	m, err := Encode(opts.Data, opts.ErrorCorrection)
	if err != nil {
		return nil, layout{}, err
	}
	l := newLayout(opts, m.Size())
	r.log.Debugw("qr layout",
		"modules", m.Size(),
		"module_px", l.module,
		"size", opts.Size,
		"dots", opts.Dots.Type,
		"logo", opts.Image != nil,
		"hidden", fmt.Sprintf("%dx%d", l.hideX, l.hideY),
	)
	return m, l, nil
}

// Raster draws the QR code onto an RGBA canvas of opts.Size pixels.
func (r *Renderer) Raster(opts Options) (*image.RGBA, error) {
	m, l, err := r.prepare(opts)
	if err != nil {
		return nil, err
	}

	var dc *gg.Context
	if opts.Dots.Type.standard() {
		dc, err = r.standardCanvas(opts, m, l)
		if err != nil {
			return nil, err
		}
	} else {
		dc = gg.NewContext(opts.Size, opts.Size)
		paintBackground(dc, opts)
		dc.SetColor(opts.Dots.Color)
		traceDots(dc, m, l, opts.Dots.Type)
		dc.Fill()
	}

	dc.SetFillRuleEvenOdd()
	dc.SetColor(opts.CornersSquare.Color)
	traceFinderFrames(dc, m, l, opts.CornersSquare.Type)
	dc.Fill()
	dc.SetFillRuleWinding()

	dc.SetColor(opts.CornersDot.Color)
	traceFinderDots(dc, m, l, opts.CornersDot.Type)
	dc.Fill()

	drawLogo(dc, opts, l)

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		img = image.NewRGBA(dc.Image().Bounds())
		draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)
	}
	return img, nil
}

// PNG writes the QR code as a PNG.
func (r *Renderer) PNG(opts Options, w io.Writer) error {
	img, err := r.Raster(opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// JPG writes the QR code as a JPEG flattened onto an opaque background;
// a transparent background becomes white.
func (r *Renderer) JPG(opts Options, w io.Writer) error {
	img, err := r.Raster(opts)
	if err != nil {
		return err
	}

	bg := color.RGBA{opts.Background.R, opts.Background.G, opts.Background.B, 255}
	if opts.Transparent() {
		bg = color.RGBA{255, 255, 255, 255}
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)

	if err := jpeg.Encode(w, out, &jpeg.Options{Quality: 92}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

func paintBackground(dc *gg.Context, opts Options) {
	if opts.Transparent() {
		return
	}
	dc.SetColor(opts.Background)
	dc.Clear()
}

func drawLogo(dc *gg.Context, opts Options, l layout) {
	if opts.Image == nil {
		return
	}
	x, y, w, h, ok := l.logoRect(opts.ImageOptions.Margin)
	if !ok {
		return
	}
	dw := uint(math.Max(1, math.Round(w)))
	dh := uint(math.Max(1, math.Round(h)))
	scaled := resize.Resize(dw, dh, opts.Image, resize.Lanczos3)
	dc.DrawImage(scaled, int(math.Round(x)), int(math.Round(y)))
}
