package form

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cristianadrielbraun/qrstudio/internal/payload"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, payload.ModeText, s.Mode)
	assert.Equal(t, "square", s.Style.Name)
	assert.Equal(t, DefaultForeground, s.Foreground)
	assert.Equal(t, DefaultBackground, s.Background)
	assert.False(t, s.Transparent)
	assert.Nil(t, s.Logo)
	assert.False(t, s.HasContent())
}

func TestReset(t *testing.T) {
	s := &State{
		Mode:        payload.ModeWiFi,
		Text:        "hello",
		SSID:        "net",
		Password:    "pw",
		Style:       ParseStyle("dots"),
		Foreground:  "#ff0000",
		Background:  "#000000",
		Transparent: true,
		Logo:        image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}
	s.Reset()
	assert.Equal(t, Default(), s)
}

func TestHasContent(t *testing.T) {
	s := Default()
	s.Text = "   "
	assert.False(t, s.HasContent())
	s.Text = "hi"
	assert.True(t, s.HasContent())

	s.SetMode(payload.ModeWiFi)
	assert.False(t, s.HasContent(), "wifi mode ignores text")
	s.SSID = "  "
	assert.False(t, s.HasContent())
	s.SSID = "Home"
	assert.True(t, s.HasContent())
}

func TestData(t *testing.T) {
	s := Default()
	s.Text = "  " + strings.Repeat("x", 600)
	assert.Len(t, s.Data(), payload.MaxTextChars)

	s.SetMode(payload.ModeWiFi)
	s.SSID = "Home"
	s.Password = "a;b"
	assert.Equal(t, `WIFI:T:WPA;S:Home;P:a\;b;;`, s.Data())
}

func TestSetModeEnforcesLimit(t *testing.T) {
	s := Default()
	s.Text = strings.Repeat("y", 501)
	s.SetMode("bogus")
	assert.Equal(t, payload.ModeText, s.Mode)
	assert.Len(t, s.Text, payload.MaxTextChars)
}

func TestControls(t *testing.T) {
	s := Default()
	c := s.Controls()
	assert.False(t, c.GenerateEnabled)
	assert.False(t, c.PNGEnabled)
	assert.False(t, c.SVGEnabled)
	assert.True(t, c.ShowContentHint)
	assert.True(t, c.BackgroundEnabled)
	assert.False(t, c.ShowBackgroundHint)
	assert.True(t, c.ShowTextFields)
	assert.False(t, c.ShowWiFiFields)
	assert.Equal(t, 500, c.TextMaxLength)

	s.SetMode(payload.ModeWiFi)
	s.SSID = "x"
	s.Transparent = true
	c = s.Controls()
	assert.True(t, c.GenerateEnabled)
	assert.True(t, c.SVGEnabled)
	assert.False(t, c.ShowContentHint)
	assert.False(t, c.BackgroundEnabled)
	assert.True(t, c.ShowBackgroundHint)
	assert.True(t, c.ShowWiFiFields)
	assert.False(t, c.ShowTextFields)
}

func TestColors(t *testing.T) {
	s := Default()
	assert.Equal(t, color.RGBA{0x11, 0x18, 0x27, 255}, s.ForegroundColor())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, s.BackgroundColor())

	s.Background = "#336699"
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 255}, s.PlateColor())

	s.Transparent = true
	assert.Equal(t, render.Transparent, s.BackgroundColor())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, s.PlateColor())

	s.Foreground = "nope"
	assert.Equal(t, color.RGBA{0x11, 0x18, 0x27, 255}, s.ForegroundColor())
	s.Foreground = "transparent"
	assert.Equal(t, color.RGBA{0x11, 0x18, 0x27, 255}, s.ForegroundColor())
}

func TestParseStyle(t *testing.T) {
	st := ParseStyle("Dots")
	assert.Equal(t, render.DotDots, st.Dots)
	assert.Equal(t, render.FinderDot, st.Finder)

	st = ParseStyle("unknown")
	assert.Equal(t, render.DotSquare, st.Dots)
	assert.Equal(t, render.FinderSquare, st.Finder)

	for _, s := range Styles {
		assert.Equal(t, s, ParseStyle(s.Name))
	}
}
