// Package studio turns form state into finished QR code files.
package studio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cristianadrielbraun/qrstudio/internal/form"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/logo"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

// ErrNoContent is returned when the form has nothing to encode.
var ErrNoContent = errors.New("nothing to encode: enter text or a Wi-Fi network name")

// Format is an output file type.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
)

// ParseFormat accepts png, svg, jpg or jpeg. Anything else is PNG.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg":
		return FormatSVG
	case "jpg", "jpeg":
		return FormatJPG
	default:
		return FormatPNG
	}
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJPG:
		return "image/jpeg"
	default:
		return "image/png"
	}
}

// Config holds the fixed render parameters.
type Config struct {
	Size      int
	MaxSize   int
	QuietZone int
	Level     render.Level
	// LogoScale is the logo edge as a percentage of the code.
	LogoScale  int
	LogoRadius float64
	LogoBorder float64
}

// DefaultConfig matches the studio's stock output: 1668 px, 17 px quiet
// zone, level H and a 35% logo on a rounded plate.
func DefaultConfig() Config {
	return Config{
		Size:       1668,
		MaxSize:    4000,
		QuietZone:  17,
		Level:      render.LevelH,
		LogoScale:  35,
		LogoRadius: 40,
		LogoBorder: 8,
	}
}

// Request selects the output of a single render.
type Request struct {
	Format Format
	// Size in pixels; zero means Config.Size.
	Size int
}

// Artifact is a rendered file.
type Artifact struct {
	Name        string
	ContentType string
	Body        []byte
}

// Studio renders form state with a shared renderer.
type Studio struct {
	cfg      Config
	renderer *render.Renderer
	log      *logger.Logger
}

// New returns a Studio. A nil logger discards output.
func New(cfg Config, log *logger.Logger) *Studio {
	if log == nil {
		log = logger.Nop()
	}
	return &Studio{
		cfg:      cfg,
		renderer: render.New(log.SugaredLogger),
		log:      log,
	}
}

// BuildOptions maps the form onto render options at the configured size.
func (s *Studio) BuildOptions(state *form.State) (render.Options, error) {
	return s.buildOptions(state, s.cfg.Size)
}

func (s *Studio) buildOptions(state *form.State, size int) (render.Options, error) {
	fg := state.ForegroundColor()
	opts := render.Options{
		Size:            size,
		Margin:          s.scaled(s.cfg.QuietZone, size),
		Data:            state.Data(),
		ErrorCorrection: s.cfg.Level,
		Dots:            render.DotStyle{Type: state.Style.Dots, Color: fg},
		CornersSquare:   render.FinderStyle{Type: state.Style.Finder, Color: fg},
		CornersDot:      render.FinderStyle{Type: state.Style.Finder, Color: fg},
		Background:      state.BackgroundColor(),
	}

	if state.Logo == nil {
		return opts, nil
	}

	plate := state.PlateColor()
	img, err := logo.Composite(state.Logo, logo.PlateOptions{
		TargetPx:    float64(size) * float64(s.cfg.LogoScale) / 100,
		Shape:       logo.ShapeRounded,
		RadiusPx:    s.cfg.LogoRadius * float64(size) / float64(s.cfg.Size),
		BorderPx:    s.cfg.LogoBorder * float64(size) / float64(s.cfg.Size),
		BorderColor: plate,
	})
	if err != nil {
		return render.Options{}, fmt.Errorf("composite logo: %w", err)
	}
	opts.Image = img
	opts.ImageOptions = render.ImageOptions{
		ImageSize:          float64(s.cfg.LogoScale) / 100,
		Margin:             s.scaled(logoMargin(s.cfg.LogoScale), size),
		HideBackgroundDots: true,
	}
	return opts, nil
}

// logoMargin grows with the logo: round(scale/3) capped at 24, plus 8.
func logoMargin(scale int) int {
	m := int(math.Round(float64(scale) * 6 / 18))
	if m < 0 {
		m = 0
	}
	if m > 24 {
		m = 24
	}
	return m + 8
}

// scaled converts a length given for Config.Size to the requested size.
func (s *Studio) scaled(v, size int) int {
	if size == s.cfg.Size || s.cfg.Size == 0 {
		return v
	}
	return int(math.Round(float64(v) * float64(size) / float64(s.cfg.Size)))
}

// Render draws the form as req.Format.
func (s *Studio) Render(ctx context.Context, state *form.State, req Request) (*Artifact, error) {
	if !state.HasContent() {
		return nil, ErrNoContent
	}
	size := req.Size
	if size <= 0 {
		size = s.cfg.Size
	}
	if s.cfg.MaxSize > 0 && size > s.cfg.MaxSize {
		size = s.cfg.MaxSize
	}
	if req.Format == "" {
		req.Format = FormatPNG
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts, err := s.buildOptions(state, size)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch req.Format {
	case FormatSVG:
		err = s.renderer.SVG(opts, &buf)
	case FormatJPG:
		err = s.renderer.JPG(opts, &buf)
	default:
		err = s.renderer.PNG(opts, &buf)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", req.Format, err)
	}

	s.log.Debugw("rendered",
		"format", req.Format,
		"size", size,
		"style", state.Style.Name,
		"mode", state.Mode,
		"bytes", buf.Len(),
	)

	return &Artifact{
		Name:        "qr-code." + string(req.Format),
		ContentType: req.Format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// Export renders the full-size file for download.
func (s *Studio) Export(ctx context.Context, state *form.State, ext string) (*Artifact, error) {
	return s.Render(ctx, state, Request{Format: ParseFormat(ext)})
}
