package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/internal/logo"
)

var (
	ink   = color.RGBA{0x11, 0x18, 0x27, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func testOptions() Options {
	return Options{
		Size:            330,
		Margin:          17,
		Data:            "hello",
		ErrorCorrection: LevelH,
		Dots:            DotStyle{Type: DotSquare, Color: ink},
		CornersSquare:   FinderStyle{Type: FinderSquare, Color: ink},
		CornersDot:      FinderStyle{Type: FinderSquare, Color: ink},
		Background:      white,
	}
}

func isDark(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a > 0x8000 && r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestEncode(t *testing.T) {
	m, err := Encode("hello", LevelH)
	require.NoError(t, err)
	assert.Equal(t, 21, m.Size())

	// finder centre is dark, its separator is light
	assert.True(t, m.Dark(3, 3))
	assert.False(t, m.Dark(7, 7))
	assert.True(t, m.InFinder(0, 0))
	assert.True(t, m.InFinder(20, 0))
	assert.True(t, m.InFinder(0, 20))
	assert.False(t, m.InFinder(20, 20))
	assert.False(t, m.Dark(-1, 0))
	assert.False(t, m.Dark(0, 21))
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode("", LevelH)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestLayout(t *testing.T) {
	l := newLayout(Options{Size: 1668, Margin: 17, ErrorCorrection: LevelH}, 29)
	assert.Equal(t, 56.0, l.module)
	assert.Equal(t, 22.0, l.originX)
	assert.Equal(t, 22.0, l.originY)
	assert.False(t, l.hidden(14, 14))
}

func TestImageArea(t *testing.T) {
	square := image.Rect(0, 0, 512, 512)
	w, h, hx, hy := imageArea(square, 88, 15, 56)
	assert.Equal(t, 9, hx)
	assert.Equal(t, 9, hy)
	assert.Equal(t, 504.0, w)
	assert.Equal(t, 504.0, h)

	w, h, hx, hy = imageArea(square, 0, 15, 56)
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Zero(t, hx)
	assert.Zero(t, hy)

	// capped by the axis limit
	_, _, hx, hy = imageArea(square, 1000, 7, 10)
	assert.Equal(t, 7, hx)
	assert.Equal(t, 7, hy)
}

func TestHiddenModules(t *testing.T) {
	opts := testOptions()
	opts.Image = image.NewRGBA(image.Rect(0, 0, 512, 512))
	opts.ImageOptions = ImageOptions{ImageSize: 0.35, HideBackgroundDots: true}

	l := newLayout(opts, 21)
	require.Equal(t, 5, l.hideX)
	assert.True(t, l.hidden(10, 10))
	assert.True(t, l.hidden(8, 12))
	assert.False(t, l.hidden(7, 10))
	assert.False(t, l.hidden(13, 10))

	opts.ImageOptions.HideBackgroundDots = false
	assert.False(t, newLayout(opts, 21).hidden(10, 10))
}

func TestJoinedCorners(t *testing.T) {
	half, full := 5.0, 10.0
	assert.Equal(t, uniform(half), joined(neighbours{}, half, full))
	assert.Equal(t, corners{}, joined(neighbours{left: true, right: true}, half, full))
	assert.Equal(t, corners{}, joined(neighbours{left: true, top: true, bottom: true}, half, full))
	assert.Equal(t, corners{tr: half, br: half}, joined(neighbours{left: true}, half, full))
	assert.Equal(t, corners{tl: half, tr: half}, joined(neighbours{bottom: true}, half, full))
	assert.Equal(t, corners{br: full}, joined(neighbours{left: true, top: true}, half, full))
	assert.Equal(t, corners{tl: full}, joined(neighbours{right: true, bottom: true}, half, full))
}

func TestClassyCorners(t *testing.T) {
	assert.Equal(t, corners{tl: 3, br: 3}, classy(neighbours{}, 3))
	assert.Equal(t, corners{tl: 3}, classy(neighbours{right: true}, 3))
	assert.Equal(t, corners{br: 3}, classy(neighbours{left: true}, 3))
	assert.Equal(t, corners{}, classy(neighbours{left: true, bottom: true, top: true}, 3))
}

func TestRasterSquare(t *testing.T) {
	img, err := New(nil).Raster(testOptions())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 330, 330), img.Bounds())

	// 21 modules of 14px starting at 18px
	assert.Equal(t, white, img.RGBAAt(2, 2))
	assert.True(t, isDark(img.At(25, 25)), "finder frame")
	assert.Equal(t, white, img.RGBAAt(39, 39), "finder gap")
	assert.True(t, isDark(img.At(67, 67)), "finder centre")
}

func TestRasterEveryDotType(t *testing.T) {
	r := New(nil)
	for _, dt := range DotTypes {
		for _, ft := range []FinderType{FinderSquare, FinderDot, FinderExtraRounded} {
			opts := testOptions()
			opts.Dots.Type = dt
			opts.CornersSquare.Type = ft
			opts.CornersDot.Type = ft

			img, err := r.Raster(opts)
			require.NoError(t, err, "%s/%s", dt, ft)
			assert.Equal(t, 330, img.Bounds().Dx(), "%s/%s", dt, ft)
			assert.Equal(t, white, img.RGBAAt(2, 2), "%s/%s background", dt, ft)
			assert.True(t, isDark(img.At(67, 67)), "%s/%s finder centre", dt, ft)
		}
	}
}

func TestRasterTransparent(t *testing.T) {
	opts := testOptions()
	opts.Background = Transparent

	for _, dt := range []DotType{DotRounded, DotLiquid} {
		opts.Dots.Type = dt
		img, err := New(nil).Raster(opts)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), img.RGBAAt(2, 2).A, "%s", dt)
		assert.Equal(t, uint8(0), img.RGBAAt(39, 39).A, "%s finder gap", dt)
		assert.True(t, isDark(img.At(25, 25)), "%s", dt)
	}
}

func TestRasterLogoHidesDots(t *testing.T) {
	red := image.NewRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(red, red.Bounds(), &image.Uniform{C: color.RGBA{R: 255, A: 255}}, image.Point{}, draw.Src)

	opts := testOptions()
	opts.Image = red
	opts.ImageOptions = ImageOptions{ImageSize: 0.35, HideBackgroundDots: true}

	img, err := New(nil).Raster(opts)
	require.NoError(t, err)
	c := img.RGBAAt(165, 165)
	assert.Greater(t, c.R, uint8(240))
	assert.Less(t, c.G, uint8(16))
}

func TestRasterInvalid(t *testing.T) {
	opts := testOptions()
	opts.Size = 0
	_, err := New(nil).Raster(opts)
	assert.ErrorIs(t, err, ErrInvalidSize)

	opts = testOptions()
	opts.Data = ""
	_, err = New(nil).Raster(opts)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestPNGAndJPG(t *testing.T) {
	r := New(nil)
	opts := testOptions()
	opts.Background = Transparent

	var buf bytes.Buffer
	require.NoError(t, r.PNG(opts, &buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 330, img.Bounds().Dx())

	buf.Reset()
	require.NoError(t, r.JPG(opts, &buf))
	img, err = jpeg.Decode(&buf)
	require.NoError(t, err)
	cr, cg, cb, _ := img.At(2, 2).RGBA()
	assert.Greater(t, cr, uint32(0xf000))
	assert.Greater(t, cg, uint32(0xf000))
	assert.Greater(t, cb, uint32(0xf000))
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(nil).SVG(testOptions(), &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml`))
	assert.Contains(t, out, `viewBox="0 0 330 330"`)
	assert.Contains(t, out, `<rect width="330" height="330" fill="#ffffff"/>`)
	assert.Contains(t, out, `fill-rule="evenodd"`)
	assert.Contains(t, out, `fill="#111827"`)
	assert.True(t, strings.HasSuffix(out, `</svg>`))
	assert.NotContains(t, out, "<image")
}

func TestSVGTransparentWithLogo(t *testing.T) {
	opts := testOptions()
	opts.Background = Transparent
	opts.Dots.Type = DotClassyRounded
	opts.Image = image.NewRGBA(image.Rect(0, 0, 16, 16))
	opts.ImageOptions = ImageOptions{ImageSize: 0.35, Margin: 2, HideBackgroundDots: true}

	var buf bytes.Buffer
	require.NoError(t, New(nil).SVG(opts, &buf))
	out := buf.String()

	assert.NotContains(t, out, `<rect width=`)
	assert.Contains(t, out, `<image x="`)
	assert.Contains(t, out, `href="data:image/png;base64,`)
}

func TestSVGRasterisesLikePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(nil).SVG(testOptions(), &buf))

	img, format, err := logo.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, "svg", format)

	// 330 -> 512 scale; the finder frame sits at 18..32px in SVG units
	assert.True(t, isDark(img.At(39, 39)), "finder frame")
	assert.False(t, isDark(img.At(3, 3)), "quiet zone")
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, LevelH, ParseLevel(""))
	assert.Equal(t, LevelQ, ParseLevel("q"))
	assert.Equal(t, DotClassy, ParseDotType("Classy"))
	assert.Equal(t, DotSquare, ParseDotType("hexagon"))
	assert.Equal(t, FinderExtraRounded, ParseFinderType("extra-rounded"))
	assert.Equal(t, FinderSquare, ParseFinderType("star"))
}

func TestParseColor(t *testing.T) {
	def := color.RGBA{1, 2, 3, 255}
	assert.Equal(t, color.RGBA{0x11, 0x18, 0x27, 255}, ParseColor("#111827", def))
	assert.Equal(t, color.RGBA{0xff, 0, 0, 255}, ParseColor("ff0000", def))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 255}, ParseColor("#fff", def))
	assert.Equal(t, Transparent, ParseColor("Transparent", def))
	assert.Equal(t, def, ParseColor("#12345", def))
	assert.Equal(t, def, ParseColor("#zzzzzz", def))
	assert.Equal(t, def, ParseColor("", def))
	assert.Equal(t, "#111827", Hex(ink))
}
