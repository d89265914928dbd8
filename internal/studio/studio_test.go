package studio

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/internal/form"
	"github.com/cristianadrielbraun/qrstudio/internal/payload"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

func textState(text string) *form.State {
	s := form.Default()
	s.Text = text
	return s
}

func redLogo() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatSVG, ParseFormat("SVG"))
	assert.Equal(t, FormatJPG, ParseFormat("jpeg"))
	assert.Equal(t, FormatJPG, ParseFormat("jpg"))
	assert.Equal(t, FormatPNG, ParseFormat("gif"))
	assert.Equal(t, "image/svg+xml", FormatSVG.ContentType())
	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "image/jpeg", FormatJPG.ContentType())
}

func TestLogoMargin(t *testing.T) {
	assert.Equal(t, 20, logoMargin(35))
	assert.Equal(t, 8, logoMargin(0))
	assert.Equal(t, 32, logoMargin(100))
}

func TestBuildOptionsWithoutLogo(t *testing.T) {
	s := New(DefaultConfig(), nil)
	state := textState("https://example.com")
	state.Style = form.ParseStyle("classy-rounded")
	state.Foreground = "#ff0000"

	opts, err := s.BuildOptions(state)
	require.NoError(t, err)
	assert.Equal(t, 1668, opts.Size)
	assert.Equal(t, 17, opts.Margin)
	assert.Equal(t, render.LevelH, opts.ErrorCorrection)
	assert.Equal(t, "https://example.com", opts.Data)
	assert.Equal(t, render.DotClassyRounded, opts.Dots.Type)
	assert.Equal(t, render.FinderExtraRounded, opts.CornersSquare.Type)
	assert.Equal(t, render.FinderExtraRounded, opts.CornersDot.Type)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, opts.Dots.Color)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, opts.Background)
	assert.Nil(t, opts.Image)
}

func TestBuildOptionsWithLogo(t *testing.T) {
	s := New(DefaultConfig(), nil)
	state := textState("hello")
	state.Transparent = true
	state.Logo = redLogo()

	opts, err := s.BuildOptions(state)
	require.NoError(t, err)
	assert.True(t, opts.Transparent())
	require.NotNil(t, opts.Image)
	assert.Equal(t, image.Rect(0, 0, 512, 512), opts.Image.Bounds())
	assert.Equal(t, render.ImageOptions{ImageSize: 0.35, Margin: 20, HideBackgroundDots: true}, opts.ImageOptions)

	// The plate border above the wide logo is white on transparent codes.
	r, g, b, a := opts.Image.At(256, 124).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestBuildOptionsWiFi(t *testing.T) {
	s := New(DefaultConfig(), nil)
	state := form.Default()
	state.SetMode(payload.ModeWiFi)
	state.SSID = "Home"
	state.Password = "pw"

	opts, err := s.BuildOptions(state)
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:Home;P:pw;;", opts.Data)
}

func TestRenderNoContent(t *testing.T) {
	s := New(DefaultConfig(), nil)
	_, err := s.Render(context.Background(), form.Default(), Request{})
	assert.ErrorIs(t, err, ErrNoContent)

	state := form.Default()
	state.SetMode(payload.ModeWiFi)
	state.SSID = "   "
	_, err = s.Export(context.Background(), state, "svg")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestRenderCancelled(t *testing.T) {
	s := New(DefaultConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Render(ctx, textState("hello"), Request{Size: 200})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderPNGPreview(t *testing.T) {
	s := New(DefaultConfig(), nil)
	art, err := s.Render(context.Background(), textState("hello"), Request{Format: FormatPNG, Size: 300})
	require.NoError(t, err)
	assert.Equal(t, "qr-code.png", art.Name)
	assert.Equal(t, "image/png", art.ContentType)

	img, err := png.Decode(bytes.NewReader(art.Body))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRenderClampsSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 200
	cfg.MaxSize = 250
	s := New(cfg, nil)

	art, err := s.Render(context.Background(), textState("hello"), Request{Size: 10000})
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(art.Body))
	require.NoError(t, err)
	assert.Equal(t, 250, img.Bounds().Dx())
}

func TestExport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 400
	s := New(cfg, nil)
	state := textState("hello")
	state.Logo = redLogo()

	svg, err := s.Export(context.Background(), state, "svg")
	require.NoError(t, err)
	assert.Equal(t, "qr-code.svg", svg.Name)
	assert.Equal(t, "image/svg+xml", svg.ContentType)
	assert.True(t, strings.Contains(string(svg.Body), `viewBox="0 0 400 400"`))
	assert.Contains(t, string(svg.Body), "data:image/png;base64,")

	jpg, err := s.Export(context.Background(), state, "jpeg")
	require.NoError(t, err)
	assert.Equal(t, "qr-code.jpg", jpg.Name)
	assert.Equal(t, []byte{0xff, 0xd8}, jpg.Body[:2])

	pngArt, err := s.Export(context.Background(), state, "png")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(pngArt.Body))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestScaled(t *testing.T) {
	s := New(DefaultConfig(), nil)
	assert.Equal(t, 17, s.scaled(17, 1668))
	assert.Equal(t, 4, s.scaled(17, 417))
}
