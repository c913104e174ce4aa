package particles

import (
	"image/color"
	"log"
	"strings"

	"github.com/crazy3lf/colorconv"
)

// Theme is the site colour scheme.
type Theme int

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// ParseTheme accepts "dark" or "light". Anything else is the default dark theme.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), "light") {
		return Light
	}
	return Dark
}

// Palette is one hue family. Colours are derived on every call so a theme
// flip shows up on the very next frame.
type Palette struct {
	Theme      Theme
	Hue        float64 // degrees
	Saturation float64
	Value      float64
	Backdrop   color.NRGBA
}

// Dark theme: purple on near-black. Light theme: blue on white.
var palettes = map[Theme]Palette{
	Dark:  {Theme: Dark, Hue: 270, Saturation: 0.6, Value: 0.98, Backdrop: color.NRGBA{R: 8, G: 4, B: 20, A: 255}},
	Light: {Theme: Light, Hue: 217, Saturation: 0.75, Value: 0.95, Backdrop: color.NRGBA{R: 248, G: 250, B: 255, A: 255}},
}

// PaletteFor returns the palette for a theme.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Dark]
}

func (p Palette) base(value float64) color.NRGBA {
	r, g, b, err := colorconv.HSVToRGB(p.Hue, p.Saturation, value)
	if err != nil {
		log.Printf("particles: palette %s: %v", p.Theme, err)
		return color.NRGBA{R: 255, G: 255, B: 255}
	}
	return color.NRGBA{R: r, G: g, B: b}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Particle is the fill colour for a particle with the given alpha.
func (p Palette) Particle(alpha float64) color.NRGBA {
	return withAlpha(p.base(p.Value), alpha)
}

// Edge is the stroke colour for a connection of the given opacity.
// Lines are kept fainter than the dots they join.
func (p Palette) Edge(opacity float64) color.NRGBA {
	return withAlpha(p.base(p.Value*0.85), opacity*0.5)
}

// Orb is the fill colour for the ambient orbs.
func (p Palette) Orb(alpha float64) color.NRGBA {
	return withAlpha(p.base(p.Value*0.7), alpha*0.1)
}

// Background is the opaque clear colour.
func (p Palette) Background() color.NRGBA {
	return p.Backdrop
}
