// Package logo prepares user supplied images for use as the centre logo of a
// QR code: it decodes the upload and flattens it onto a filled plate.
package logo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// CanvasSize is the edge length of every composited logo.
const CanvasSize = 512

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("logo image is empty")

// Shape is the outline of the plate drawn behind the logo.
type Shape string

const (
	ShapeCircle  Shape = "circle"
	ShapeRounded Shape = "rounded"
	ShapeSquare  Shape = "square"
)

// PlateOptions controls how a logo is flattened onto its plate.
// RadiusPx and BorderPx are expressed in pixels of the final logo size TargetPx.
type PlateOptions struct {
	TargetPx    float64
	Shape       Shape
	RadiusPx    float64
	BorderPx    float64
	BorderColor color.Color
}

// Composite draws src centred on a CanvasSize square, fills the plate behind
// it and clips the image to the plate's inner shape.
func Composite(src image.Image, opts PlateOptions) (*image.RGBA, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	const size = float64(CanvasSize)
	scale := math.Min(size/float64(b.Dx()), size/float64(b.Dy()))
	drawW := float64(b.Dx()) * scale
	drawH := float64(b.Dy()) * scale
	dx := (size - drawW) / 2
	dy := (size - drawH) / 2

	safeTarget := math.Max(opts.TargetPx, 1)
	border := math.Max(0, opts.BorderPx/safeTarget) * size

	radius := 0.0
	if opts.Shape == ShapeRounded {
		radius = math.Min(size/2, opts.RadiusPx/safeTarget*size)
	}

	plate := opts.BorderColor
	if plate == nil {
		plate = color.White
	}

	dc := gg.NewContext(CanvasSize, CanvasSize)

	dc.Push()
	dc.SetColor(plate)
	if opts.Shape == ShapeCircle {
		r := math.Min(size/2, math.Max(drawW, drawH)/2+border)
		dc.DrawCircle(size/2, size/2, r)
	} else {
		roundRect(dc, dx-border, dy-border, drawW+border*2, drawH+border*2, radius)
	}
	dc.Fill()
	dc.Pop()

	dc.Push()
	if opts.Shape == ShapeCircle {
		dc.DrawCircle(size/2, size/2, size/2-border)
	} else {
		roundRect(dc, dx, dy, drawW, drawH, radius)
	}
	dc.Clip()

	w := int(math.Round(drawW))
	h := int(math.Round(drawH))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	scaled := resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	dc.DrawImage(scaled, (CanvasSize-w)/2, (CanvasSize-h)/2)
	dc.Pop()

	if out, ok := dc.Image().(*image.RGBA); ok {
		return out, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out, nil
}

// roundRect traces a rectangle whose corners are quadratic curves. The
// radius is clamped to half the shorter side.
func roundRect(dc *gg.Context, x, y, w, h, r float64) {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	dc.NewSubPath()
	dc.MoveTo(x+r, y)
	dc.LineTo(x+w-r, y)
	dc.QuadraticTo(x+w, y, x+w, y+r)
	dc.LineTo(x+w, y+h-r)
	dc.QuadraticTo(x+w, y+h, x+w-r, y+h)
	dc.LineTo(x+r, y+h)
	dc.QuadraticTo(x, y+h, x, y+h-r)
	dc.LineTo(x, y+r)
	dc.QuadraticTo(x, y, x+r, y)
	dc.ClosePath()
}

// DataURL encodes img as a base64 PNG data URL.
func DataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode logo png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
