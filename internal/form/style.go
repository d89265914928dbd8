package form

import (
	"strings"

	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

// Style is a preset from the style picker: a dot type and the finder type
// that goes with it.
type Style struct {
	Name   string
	Label  string
	Dots   render.DotType
	Finder render.FinderType
}

// Styles lists the presets offered by the picker.
var Styles = []Style{
	{Name: "square", Label: "Square", Dots: render.DotSquare, Finder: render.FinderSquare},
	{Name: "dots", Label: "Dots", Dots: render.DotDots, Finder: render.FinderDot},
	{Name: "rounded", Label: "Rounded", Dots: render.DotRounded, Finder: render.FinderExtraRounded},
	{Name: "extra-rounded", Label: "Extra rounded", Dots: render.DotExtraRounded, Finder: render.FinderExtraRounded},
	{Name: "classy", Label: "Classy", Dots: render.DotClassy, Finder: render.FinderSquare},
	{Name: "classy-rounded", Label: "Classy rounded", Dots: render.DotClassyRounded, Finder: render.FinderExtraRounded},
	{Name: "liquid", Label: "Liquid", Dots: render.DotLiquid, Finder: render.FinderExtraRounded},
	{Name: "chain", Label: "Chain", Dots: render.DotChain, Finder: render.FinderSquare},
	{Name: "hstripe", Label: "Horizontal stripes", Dots: render.DotHStripe, Finder: render.FinderSquare},
	{Name: "vstripe", Label: "Vertical stripes", Dots: render.DotVStripe, Finder: render.FinderSquare},
}

// ParseStyle returns the preset named value, or the square preset.
func ParseStyle(value string) Style {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, s := range Styles {
		if s.Name == value {
			return s
		}
	}
	return Styles[0]
}
