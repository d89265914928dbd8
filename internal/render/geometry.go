package render

import "math"

// pen receives path segments. *gg.Context satisfies it directly; svgPath
// records the same segments as SVG path data.
type pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// stripeWidth matches the ratio handed to the yeqown stripe blocks.
const (
	stripeWidth = 0.85
	stripeInset = (1 - stripeWidth) / 2
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// corners holds per-corner radii, clockwise from the top left.
type corners struct {
	tl, tr, br, bl float64
}

func uniform(r float64) corners { return corners{r, r, r, r} }

// roundedRect traces a rectangle with independent corner radii. Radii are
// clamped to the shorter side.
func roundedRect(p pen, x, y, w, h float64, c corners) {
	limit := math.Min(w, h)
	clamp := func(r float64) float64 { return math.Max(0, math.Min(r, limit)) }
	tl, tr, br, bl := clamp(c.tl), clamp(c.tr), clamp(c.br), clamp(c.bl)

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	if tr > 0 {
		p.CubicTo(x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	}
	p.LineTo(x+w, y+h-br)
	if br > 0 {
		p.CubicTo(x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	}
	p.LineTo(x+bl, y+h)
	if bl > 0 {
		p.CubicTo(x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	}
	p.LineTo(x, y+tl)
	if tl > 0 {
		p.CubicTo(x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	}
	p.ClosePath()
}

func circle(p pen, cx, cy, r float64) {
	roundedRect(p, cx-r, cy-r, 2*r, 2*r, uniform(r))
}

// neighbours of a module that are drawn as dots.
type neighbours struct {
	left, right, top, bottom bool
}

func (n neighbours) count() int {
	c := 0
	for _, b := range []bool{n.left, n.right, n.top, n.bottom} {
		if b {
			c++
		}
	}
	return c
}

// dot traces one data module of edge s at (x, y).
func dot(p pen, t DotType, x, y, s float64, n neighbours) {
	half := s / 2
	switch t {
	case DotDots:
		circle(p, x+half, y+half, half)
	case DotRounded, DotChain:
		roundedRect(p, x, y, s, s, joined(n, half, half))
	case DotExtraRounded, DotLiquid:
		roundedRect(p, x, y, s, s, joined(n, half, s))
	case DotClassy:
		roundedRect(p, x, y, s, s, classy(n, half))
	case DotClassyRounded:
		roundedRect(p, x, y, s, s, classy(n, s))
	case DotHStripe:
		roundedRect(p, x, y+s*stripeInset, s, s*stripeWidth, corners{})
	case DotVStripe:
		roundedRect(p, x+s*stripeInset, y, s*stripeWidth, s, corners{})
	default:
		roundedRect(p, x, y, s, s, corners{})
	}
}

// joined rounds every corner that is not touched by a neighbour. An isolated
// module becomes a circle, a module with one neighbour gets a semicircular
// free end, and an elbow gets its outer corner rounded by elbow.
func joined(n neighbours, half, elbow float64) corners {
	switch c := n.count(); {
	case c == 0:
		return uniform(half)
	case c > 2, n.left && n.right, n.top && n.bottom:
		return corners{}
	case c == 1:
		switch {
		case n.left:
			return corners{tr: half, br: half}
		case n.right:
			return corners{tl: half, bl: half}
		case n.top:
			return corners{bl: half, br: half}
		default:
			return corners{tl: half, tr: half}
		}
	default:
		switch {
		case n.left && n.top:
			return corners{br: elbow}
		case n.top && n.right:
			return corners{bl: elbow}
		case n.right && n.bottom:
			return corners{tl: elbow}
		default:
			return corners{tr: elbow}
		}
	}
}

// classy rounds the top left and bottom right corners when they are free.
func classy(n neighbours, r float64) corners {
	if n.count() == 0 {
		return corners{tl: r, br: r}
	}
	if !n.left && !n.top {
		return corners{tl: r}
	}
	if !n.right && !n.bottom {
		return corners{br: r}
	}
	return corners{}
}

// finderFrame traces the 7x7 frame of a finder pattern as two subpaths that
// must be filled with the even-odd rule.
func finderFrame(p pen, t FinderType, x, y, s float64) {
	outer, inner := 7*s, 5*s
	switch t {
	case FinderDot:
		circle(p, x+outer/2, y+outer/2, outer/2)
		circle(p, x+outer/2, y+outer/2, inner/2)
	case FinderExtraRounded:
		roundedRect(p, x, y, outer, outer, uniform(2.5*s))
		roundedRect(p, x+s, y+s, inner, inner, uniform(1.5*s))
	default:
		roundedRect(p, x, y, outer, outer, corners{})
		roundedRect(p, x+s, y+s, inner, inner, corners{})
	}
}

// finderDot traces the 3x3 centre of a finder pattern.
func finderDot(p pen, t FinderType, x, y, s float64) {
	edge := 3 * s
	switch t {
	case FinderDot:
		circle(p, x+edge/2, y+edge/2, edge/2)
	case FinderExtraRounded:
		roundedRect(p, x, y, edge, edge, uniform(s))
	default:
		roundedRect(p, x, y, edge, edge, corners{})
	}
}
