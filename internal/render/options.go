// Package render turns render Options into QR code images. It wraps
// yeqown/go-qrcode for matrix encoding and draws the modules itself so that
// raster and vector output share the same geometry.
package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/yeqown/go-qrcode/v2"
)

// Level is a QR error correction level.
type Level string

const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// ParseLevel maps "L", "M", "Q" or "H" to a Level, defaulting to H.
func ParseLevel(s string) Level {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelL:
		return LevelL
	case LevelM:
		return LevelM
	case LevelQ:
		return LevelQ
	default:
		return LevelH
	}
}

func (l Level) option() qrcode.EncodeOption {
	switch l {
	case LevelL:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case LevelM:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case LevelQ:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	}
}

// cover is the share of modules that may be obscured at this level.
func (l Level) cover() float64 {
	switch l {
	case LevelL:
		return 0.07
	case LevelM:
		return 0.15
	case LevelQ:
		return 0.25
	default:
		return 0.30
	}
}

// DotType is the shape of data modules.
type DotType string

const (
	DotSquare        DotType = "square"
	DotDots          DotType = "dots"
	DotRounded       DotType = "rounded"
	DotExtraRounded  DotType = "extra-rounded"
	DotClassy        DotType = "classy"
	DotClassyRounded DotType = "classy-rounded"

	// Block shapes drawn by the yeqown standard writer.
	DotLiquid  DotType = "liquid"
	DotChain   DotType = "chain"
	DotHStripe DotType = "hstripe"
	DotVStripe DotType = "vstripe"
)

// DotTypes lists every supported dot type in display order.
var DotTypes = []DotType{
	DotSquare, DotDots, DotRounded, DotExtraRounded, DotClassy, DotClassyRounded,
	DotLiquid, DotChain, DotHStripe, DotVStripe,
}

// ParseDotType returns the matching DotType or DotSquare.
func ParseDotType(s string) DotType {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range DotTypes {
		if string(t) == s {
			return t
		}
	}
	return DotSquare
}

// standard reports whether the type is rasterised by the yeqown writer.
func (t DotType) standard() bool {
	switch t {
	case DotLiquid, DotChain, DotHStripe, DotVStripe:
		return true
	}
	return false
}

// FinderType is the shape of the finder pattern frame and its centre dot.
type FinderType string

const (
	FinderSquare       FinderType = "square"
	FinderDot          FinderType = "dot"
	FinderExtraRounded FinderType = "extra-rounded"
)

// ParseFinderType returns the matching FinderType or FinderSquare.
func ParseFinderType(s string) FinderType {
	switch FinderType(strings.ToLower(strings.TrimSpace(s))) {
	case FinderDot:
		return FinderDot
	case FinderExtraRounded:
		return FinderExtraRounded
	default:
		return FinderSquare
	}
}

// DotStyle styles the data modules.
type DotStyle struct {
	Type  DotType
	Color color.RGBA
}

// FinderStyle styles one part of the finder patterns.
type FinderStyle struct {
	Type  FinderType
	Color color.RGBA
}

// ImageOptions places the centre logo.
type ImageOptions struct {
	// ImageSize is the logo edge as a fraction of the QR code.
	ImageSize float64
	// Margin is the gap in pixels between the logo and the surrounding dots.
	Margin int
	// HideBackgroundDots skips the modules underneath the logo.
	HideBackgroundDots bool
}

// Options is everything needed to draw one QR code.
type Options struct {
	Size            int
	Margin          int
	Data            string
	ErrorCorrection Level
	Dots            DotStyle
	CornersSquare   FinderStyle
	CornersDot      FinderStyle
	// Background with zero alpha renders transparent.
	Background   color.RGBA
	Image        image.Image
	ImageOptions ImageOptions
}

// Transparent reports whether the background is left unpainted.
func (o Options) Transparent() bool {
	return o.Background.A == 0
}
