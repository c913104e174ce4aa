package renderer

import (
	"image/color"
	"sync/atomic"
	"time"

	"github.com/Zachkp/journey-portfolio/internal/particles"
)

// Surface is a 2D raster the loop clears and redraws every frame.
type Surface interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillCircle(x, y, radius float64, c color.Color)
	Line(x1, y1, x2, y2 float64, c color.Color)
}

// Resizer is implemented by surfaces that follow the host window.
// OnResize returns a function that removes the listener. fn must not be
// called from inside OnResize itself.
type Resizer interface {
	OnResize(fn func(width, height int)) (remove func())
}

// Presenter is implemented by surfaces that buffer a frame and need an
// explicit flush once it is complete.
type Presenter interface {
	Present()
}

// SurfaceOpener acquires the drawing surface at mount time.
type SurfaceOpener func() (Surface, error)

// Layer is drawn underneath the particles every frame. elapsed is wall time
// since Start, so layers animate at the same speed whatever the frame rate.
type Layer interface {
	Draw(s Surface, p particles.Palette, elapsed time.Duration)
}

// ThemeSource is read on every frame, so colours always match the current theme.
type ThemeSource interface {
	Theme() particles.Theme
}

// StaticTheme never changes.
type StaticTheme particles.Theme

func (t StaticTheme) Theme() particles.Theme { return particles.Theme(t) }

// ThemeSwitch is a theme flag that may be flipped from another goroutine.
type ThemeSwitch struct {
	v atomic.Int32
}

func NewThemeSwitch(t particles.Theme) *ThemeSwitch {
	s := &ThemeSwitch{}
	s.Set(t)
	return s
}

func (s *ThemeSwitch) Theme() particles.Theme { return particles.Theme(s.v.Load()) }
func (s *ThemeSwitch) Set(t particles.Theme)  { s.v.Store(int32(t)) }

// Toggle flips between dark and light and returns the new theme.
func (s *ThemeSwitch) Toggle() particles.Theme {
	next := particles.Dark
	if s.Theme() == particles.Dark {
		next = particles.Light
	}
	s.Set(next)
	return next
}
