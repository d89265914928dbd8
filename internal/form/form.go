// Package form holds the state of the QR studio form and derives the
// payload and control states from it.
package form

import (
	"image"
	"image/color"
	"strings"

	"github.com/cristianadrielbraun/qrstudio/internal/payload"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

// Defaults restored by Reset.
const (
	DefaultForeground = "#111827"
	DefaultBackground = "#ffffff"
	DefaultStyle      = "square"
)

// State is everything the user has entered.
type State struct {
	Mode        payload.Mode
	Text        string
	SSID        string
	Password    string
	Style       Style
	Foreground  string
	Background  string
	Transparent bool
	Logo        image.Image
}

// Default returns a freshly reset form.
func Default() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset clears every field and drops the loaded logo.
func (s *State) Reset() {
	*s = State{
		Mode:       payload.ModeText,
		Style:      ParseStyle(DefaultStyle),
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// SetMode switches the content mode and re-applies the text limit.
func (s *State) SetMode(m payload.Mode) {
	if m != payload.ModeWiFi {
		m = payload.ModeText
	}
	s.Mode = m
	s.EnforceTextLimit()
}

// EnforceTextLimit truncates the text field to payload.MaxTextChars.
func (s *State) EnforceTextLimit() {
	s.Text = payload.TruncateText(s.Text)
}

// HasContent reports whether there is anything to encode. In Wi-Fi mode a
// network name is required; the default SSID only applies when rendering.
func (s *State) HasContent() bool {
	if s.Mode == payload.ModeWiFi {
		return strings.TrimSpace(s.SSID) != ""
	}
	return strings.TrimSpace(s.Text) != ""
}

// Data is the string encoded into the QR code.
func (s *State) Data() string {
	if s.Mode == payload.ModeWiFi {
		return payload.WiFi(s.SSID, s.Password)
	}
	return payload.Text(s.Text)
}

// ForegroundColor parses the foreground field. Dots are never transparent.
func (s *State) ForegroundColor() color.RGBA {
	def := render.ParseColor(DefaultForeground, color.RGBA{A: 255})
	c := render.ParseColor(s.Foreground, def)
	if c.A == 0 {
		return def
	}
	return c
}

// BackgroundColor parses the background field; transparency wins over it.
func (s *State) BackgroundColor() color.RGBA {
	if s.Transparent {
		return render.Transparent
	}
	return render.ParseColor(s.Background, color.RGBA{255, 255, 255, 255})
}

// PlateColor fills the logo plate: the background, or white when the code
// is transparent.
func (s *State) PlateColor() color.RGBA {
	if s.Transparent {
		return color.RGBA{255, 255, 255, 255}
	}
	return s.BackgroundColor()
}

// Controls describes which parts of the form are enabled or shown.
type Controls struct {
	GenerateEnabled    bool `json:"generateEnabled"`
	PNGEnabled         bool `json:"pngEnabled"`
	SVGEnabled         bool `json:"svgEnabled"`
	ShowContentHint    bool `json:"showContentHint"`
	BackgroundEnabled  bool `json:"backgroundEnabled"`
	ShowBackgroundHint bool `json:"showBackgroundHint"`
	ShowTextFields     bool `json:"showTextFields"`
	ShowWiFiFields     bool `json:"showWifiFields"`
	TextMaxLength      int  `json:"textMaxLength"`
}

// Controls derives the control state from the current fields.
func (s *State) Controls() Controls {
	enabled := s.HasContent()
	return Controls{
		GenerateEnabled:    enabled,
		PNGEnabled:         enabled,
		SVGEnabled:         enabled,
		ShowContentHint:    !enabled,
		BackgroundEnabled:  !s.Transparent,
		ShowBackgroundHint: s.Transparent,
		ShowTextFields:     s.Mode != payload.ModeWiFi,
		ShowWiFiFields:     s.Mode == payload.ModeWiFi,
		TextMaxLength:      payload.MaxTextChars,
	}
}
