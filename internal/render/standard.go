package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/yeqown/go-qrcode/writer/standard"
	"github.com/yeqown/go-qrcode/writer/standard/shapes"
)

// standardCanvas rasterises the block shapes through the yeqown standard
// writer and places the result inside the quiet zone. Finder patterns and
// the logo area are cleared so they can be drawn like every other style.
func (r *Renderer) standardCanvas(opts Options, m *Matrix, l layout) (*gg.Context, error) {
	width := int(l.module)
	if width > 255 {
		width = 255
	}

	writerOptions := []standard.ImageOption{
		standard.WithQRWidth(uint8(width)),
		standard.WithBorderWidth(0),
		standard.WithFgColor(opts.Dots.Color),
		standard.WithCustomShape(blockShape(opts.Dots.Type)),
	}
	if opts.Transparent() {
		writerOptions = append(writerOptions, standard.WithBgTransparent())
	} else {
		writerOptions = append(writerOptions, standard.WithBgColor(opts.Background))
	}
	writerOptions = append(writerOptions, standard.WithBuiltinImageEncoder(standard.PNG_FORMAT))

	var buf bytes.Buffer
	writer := standard.NewWithWriter(nopCloser{&buf}, writerOptions...)
	if err := m.qr.Save(writer); err != nil {
		return nil, fmt.Errorf("draw qr blocks: %w", err)
	}
	_ = writer.Close()

	src, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode qr blocks: %w", err)
	}
	if opts.Transparent() {
		src = cleanupAntiAliasing(src, opts.Dots.Color)
	}

	grid := uint(float64(m.Size()) * l.module)
	scaled := resize.Resize(grid, grid, src, resize.NearestNeighbor)

	dc := gg.NewContext(opts.Size, opts.Size)
	paintBackground(dc, opts)
	dc.DrawImage(scaled, int(l.originX), int(l.originY))

	canvas, ok := dc.Image().(*image.RGBA)
	if !ok {
		return dc, nil
	}
	fill := opts.Background
	if opts.Transparent() {
		fill = Transparent
	}
	for _, o := range m.finderOrigins() {
		clearModules(canvas, l, o[0], o[1], finderSize, finderSize, fill)
	}
	if l.hideDots && l.hideX > 0 && l.hideY > 0 {
		clearModules(canvas, l, (m.Size()-l.hideX)/2, (m.Size()-l.hideY)/2, l.hideX, l.hideY, fill)
	}
	return dc, nil
}

func clearModules(img *image.RGBA, l layout, x, y, w, h int, fill color.RGBA) {
	px, py := l.moduleRect(x, y)
	rect := image.Rect(int(px), int(py), int(px+float64(w)*l.module), int(py+float64(h)*l.module))
	draw.Draw(img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

type nopCloser struct {
	*bytes.Buffer
}

func (nopCloser) Close() error { return nil }

// customShape implements the IShape interface by wrapping drawing functions from the shapes package
type customShape struct {
	drawFunc func(ctx *standard.DrawContext)
}

// Draw implements the IShape interface
func (cs *customShape) Draw(ctx *standard.DrawContext) {
	cs.drawFunc(ctx)
}

// DrawFinder implements the IShape interface for finder patterns
func (cs *customShape) DrawFinder(ctx *standard.DrawContext) {
	cs.drawFunc(ctx)
}

func blockShape(t DotType) standard.IShape {
	switch t {
	case DotChain:
		return &customShape{drawFunc: shapes.ChainBlock()}
	case DotHStripe:
		return &customShape{drawFunc: shapes.HStripeBlock(stripeWidth)}
	case DotVStripe:
		return &customShape{drawFunc: shapes.VStripeBlock(stripeWidth)}
	default:
		return &customShape{drawFunc: shapes.LiquidBlock()}
	}
}

// cleanupAntiAliasing removes the light fringe the writer leaves around
// modules on a transparent background.
func cleanupAntiAliasing(img image.Image, fg color.RGBA) *image.RGBA {
	bounds := img.Bounds()
	clean := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
			if isAntiAliasingArtifact(r8, g8, b8, a8, fg) {
				continue
			}
			clean.SetRGBA(x, y, color.RGBA{r8, g8, b8, a8})
		}
	}
	return clean
}

// isAntiAliasingArtifact detects semi-transparent or near-white pixels that
// do not match the foreground.
func isAntiAliasingArtifact(r, g, b, a uint8, fg color.RGBA) bool {
	if a == 0 {
		return false
	}
	if a == 255 && r == fg.R && g == fg.G && b == fg.B {
		return false
	}
	if a < 255 {
		return true
	}
	return r > 200 && g > 200 && b > 200 && (r != fg.R || g != fg.G || b != fg.B)
}
