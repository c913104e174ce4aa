// Package orbs draws the slow, translucent circles that float behind the
// particle field.
package orbs

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/Zachkp/journey-portfolio/internal/particles"
	"github.com/Zachkp/journey-portfolio/internal/renderer"
)

const (
	DefaultCount = 8
	MaxDrift     = 0.1 // fraction of the viewport an orb may wander from its anchor
)

// Orb is one resolved circle in screen space.
type Orb struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

type anchor struct {
	fx, fy float64 // viewport fractions
	radius float64
	alpha  float64
	period float64 // seconds per noise unit
	seed   float64 // offset into the noise plane
}

// Layer is a fixed set of orbs drifting on Perlin noise.
type Layer struct {
	anchors []anchor
	noise   *perlin.Perlin
}

// NewLayer seeds count orbs. Radius is 50..250px, alpha 0.1..0.6,
// drift period 20..40s.
func NewLayer(count int, rng *rand.Rand) *Layer {
	if count <= 0 {
		count = DefaultCount
	}
	l := &Layer{
		anchors: make([]anchor, count),
		noise:   perlin.NewPerlin(2, 2, 3, rng.Int63()),
	}
	for i := range l.anchors {
		l.anchors[i] = anchor{
			fx:     rng.Float64(),
			fy:     rng.Float64(),
			radius: rng.Float64()*200 + 50,
			alpha:  rng.Float64()*0.5 + 0.1,
			period: rng.Float64()*20 + 20,
			seed:   float64(i) * 7.31,
		}
	}
	return l
}

func (l *Layer) Len() int { return len(l.anchors) }

// Positions resolves every orb for a viewport at time t seconds.
func (l *Layer) Positions(width, height int, t float64) []Orb {
	w, h := float64(width), float64(height)
	out := make([]Orb, len(l.anchors))
	for i, a := range l.anchors {
		phase := t / a.period
		dx := clamp(l.noise.Noise2D(a.seed, phase), -1, 1) * MaxDrift
		dy := clamp(l.noise.Noise2D(a.seed+100, phase), -1, 1) * MaxDrift
		out[i] = Orb{
			X:      (a.fx + dx) * w,
			Y:      (a.fy + dy) * h,
			Radius: a.radius,
			Alpha:  a.alpha,
		}
	}
	return out
}

// Draw implements renderer.Layer.
func (l *Layer) Draw(s renderer.Surface, p particles.Palette, elapsed time.Duration) {
	w, h := s.Size()
	for _, o := range l.Positions(w, h, elapsed.Seconds()) {
		s.FillCircle(o.X, o.Y, o.Radius, p.Orb(o.Alpha))
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
