package render

import (
	"image"
	"math"
)

// layout positions modules and the logo on the canvas.
type layout struct {
	count   int
	module  float64
	originX float64
	originY float64

	hideDots       bool
	hideX, hideY   int
	imageW, imageH float64
}

func newLayout(opts Options, count int) layout {
	l := layout{count: count}
	if count <= 0 {
		return l
	}

	drawable := opts.Size - 2*opts.Margin
	l.module = math.Floor(float64(drawable) / float64(count))
	if l.module < 1 {
		l.module = 1
	}
	l.originX = math.Floor((float64(opts.Size) - float64(count)*l.module) / 2)
	l.originY = l.originX

	if opts.Image != nil {
		b := opts.Image.Bounds()
		maxHidden := int(math.Floor(opts.ImageOptions.ImageSize * opts.ErrorCorrection.cover() * float64(count*count)))
		l.imageW, l.imageH, l.hideX, l.hideY = imageArea(b, maxHidden, count-2*finderSize, l.module)
		l.hideDots = opts.ImageOptions.HideBackgroundDots
	}
	return l
}

// imageArea sizes the logo so that it never hides more than maxHidden
// modules, keeping an odd number of hidden modules on each axis so the logo
// stays centred on the grid.
func imageArea(b image.Rectangle, maxHidden, maxAxis int, module float64) (w, h float64, hideX, hideY int) {
	if b.Dx() <= 0 || b.Dy() <= 0 || maxHidden <= 0 || module <= 0 {
		return 0, 0, 0, 0
	}
	k := float64(b.Dy()) / float64(b.Dx())

	hideX = int(math.Floor(math.Sqrt(float64(maxHidden) / k)))
	if hideX <= 0 {
		hideX = 1
	}
	if maxAxis > 0 && maxAxis < hideX {
		hideX = maxAxis
	}
	if hideX%2 == 0 {
		hideX--
	}
	w = float64(hideX) * module
	hideY = 1 + 2*int(math.Ceil((float64(hideX)*k-1)/2))
	h = math.Round(w * k)

	if hideY*hideX > maxHidden || (maxAxis > 0 && maxAxis < hideY) {
		if maxAxis > 0 && maxAxis < hideY {
			hideY = maxAxis
			if hideY%2 == 0 {
				hideY--
			}
		} else {
			hideY -= 2
		}
		h = float64(hideY) * module
		hideX = 1 + 2*int(math.Ceil((float64(hideY)/k-1)/2))
		w = math.Round(h / k)
	}
	return w, h, hideX, hideY
}

// hidden reports whether the module sits under the logo.
func (l layout) hidden(x, y int) bool {
	if !l.hideDots || l.hideX <= 0 || l.hideY <= 0 {
		return false
	}
	fx, fy, n := float64(x), float64(y), float64(l.count)
	return fx >= (n-float64(l.hideX))/2 && fx < (n+float64(l.hideX))/2 &&
		fy >= (n-float64(l.hideY))/2 && fy < (n+float64(l.hideY))/2
}

// moduleRect returns the canvas position of module (x, y).
func (l layout) moduleRect(x, y int) (px, py float64) {
	return l.originX + float64(x)*l.module, l.originY + float64(y)*l.module
}

// logoRect returns where the logo image is drawn, or an empty rectangle when
// there is no room for it.
func (l layout) logoRect(margin int) (x, y, w, h float64, ok bool) {
	w = l.imageW - float64(2*margin)
	h = l.imageH - float64(2*margin)
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	grid := float64(l.count) * l.module
	x = l.originX + float64(margin) + (grid-l.imageW)/2
	y = l.originY + float64(margin) + (grid-l.imageH)/2
	return x, y, w, h, true
}
