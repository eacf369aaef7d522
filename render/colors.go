package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbUIBackground = tcell.NewRGBColor(36, 40, 59)    // Panel background
	RgbUIText       = tcell.NewRGBColor(192, 202, 245) // Panel text
	RgbUIAccent     = tcell.NewRGBColor(122, 162, 247) // Coordinates and selection
	RgbUIDim        = tcell.NewRGBColor(86, 95, 137)   // Secondary text
	RgbTitle        = tcell.NewRGBColor(255, 158, 100) // Menu title

	RgbGrass     = tcell.NewRGBColor(80, 160, 60)
	RgbDirt      = tcell.NewRGBColor(140, 100, 60)
	RgbWater     = tcell.NewRGBColor(60, 110, 200)
	RgbWaterDeep = tcell.NewRGBColor(30, 60, 140)
	RgbWaterFoam = tcell.NewRGBColor(130, 180, 255)
	RgbRock      = tcell.NewRGBColor(150, 150, 160)
	RgbTree      = tcell.NewRGBColor(40, 120, 40)
	RgbMushroom  = tcell.NewRGBColor(220, 60, 60)
	RgbRabbit    = tcell.NewRGBColor(240, 240, 240)
	RgbFox       = tcell.NewRGBColor(255, 140, 0)

	RgbCursor    = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbCursorDim = tcell.NewRGBColor(180, 140, 0)   // Blink phase
	RgbUnknown   = tcell.NewRGBColor(255, 0, 255)   // Magenta for unmapped objects
	RgbBlack     = tcell.NewRGBColor(0, 0, 0)       // Fallback for non-RGB colors
	RgbWhite     = tcell.NewRGBColor(255, 255, 255) // Menu selection
)

// toColorful converts an RGB tcell color, non-RGB colors map to black
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Blend interpolates from a to b in Lab space, t is clamped to [0,1]
func Blend(a, b tcell.Color, t float64) tcell.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	c := toColorful(a).BlendLab(toColorful(b), t).Clamped()
	r, g, bl := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// LogLineColor returns the text color of the log line at age (0 is newest) out of lines
// Older lines fade toward the panel background but never reach it
func LogLineColor(age, lines int) tcell.Color {
	if lines <= 1 || age <= 0 {
		return RgbUIText
	}
	return Blend(RgbUIText, RgbUIBackground, 0.6*float64(age)/float64(lines-1))
}

// TitleColor returns the menu title color for a fade-in intensity in [0,1]
func TitleColor(intensity float32) tcell.Color {
	return Blend(RgbBackground, RgbTitle, float64(intensity))
}
