package particles

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field defaults
const (
	DefaultCount         = 100
	DefaultBound         = 1000.0
	DefaultSpawn         = 500.0
	DefaultSpeed         = 1.0
	DefaultViewer        = 1000.0
	DefaultRotationDelta = 0.002
	DefaultMaxDistance   = 100.0
)

// Config describes a field. Zero values are replaced by the defaults above,
// except Rotation: a zero Rotation holds the field still. Start from
// DefaultConfig to get the standard spin.
type Config struct {
	Count       int     `json:"count"`
	Bound       float64 `json:"bound"`
	Spawn       float64 `json:"spawn"`
	Speed       float64 `json:"speed"`
	Viewer      float64 `json:"viewer"`
	MinRadius   float64 `json:"min_radius"`
	MaxRadius   float64 `json:"max_radius"`
	MinAlpha    float64 `json:"min_alpha"`
	MaxAlpha    float64 `json:"max_alpha"`
	Rotation    float64 `json:"rotation"`
	MaxDistance float64 `json:"max_distance"`
}

// DefaultConfig returns the configuration used by the site background.
func DefaultConfig() Config {
	return Config{
		Count:       DefaultCount,
		Bound:       DefaultBound,
		Spawn:       DefaultSpawn,
		Speed:       DefaultSpeed,
		Viewer:      DefaultViewer,
		MinRadius:   1,
		MaxRadius:   3,
		MinAlpha:    0.2,
		MaxAlpha:    0.7,
		Rotation:    DefaultRotationDelta,
		MaxDistance: DefaultMaxDistance,
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Count <= 0 {
		c.Count = d.Count
	}
	if c.Bound <= 0 {
		c.Bound = d.Bound
	}
	if c.Spawn <= 0 {
		c.Spawn = d.Spawn
	}
	if c.Speed <= 0 {
		c.Speed = d.Speed
	}
	if c.Viewer <= 0 {
		c.Viewer = d.Viewer
	}
	if c.MaxRadius <= 0 {
		c.MinRadius, c.MaxRadius = d.MinRadius, d.MaxRadius
	}
	if c.MaxAlpha <= 0 {
		c.MinAlpha, c.MaxAlpha = d.MinAlpha, d.MaxAlpha
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = d.MaxDistance
	}
	return c
}

// Edge connects two projected particles by index, I < J.
type Edge struct {
	I, J    int
	Opacity float64
}

// Field owns a fixed population of particles and the shared rotation angle.
type Field struct {
	cfg       Config
	particles []Particle
	angle     float64
}

// NewField seeds cfg.Count particles uniformly inside the spawn cube.
func NewField(cfg Config, rng *rand.Rand) *Field {
	cfg = cfg.WithDefaults()
	f := &Field{
		cfg:       cfg,
		particles: make([]Particle, cfg.Count),
	}

	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	for i := range f.particles {
		f.particles[i] = Particle{
			Pos: r3.Vec{
				X: uniform(-cfg.Spawn, cfg.Spawn),
				Y: uniform(-cfg.Spawn, cfg.Spawn),
				Z: uniform(-cfg.Spawn, cfg.Spawn),
			},
			Vel: r3.Vec{
				X: uniform(-cfg.Speed, cfg.Speed),
				Y: uniform(-cfg.Speed, cfg.Speed),
				Z: uniform(-cfg.Speed, cfg.Speed),
			},
			Radius: uniform(cfg.MinRadius, cfg.MaxRadius),
			Alpha:  uniform(cfg.MinAlpha, cfg.MaxAlpha),
		}
	}
	return f
}

// NewFieldFrom builds a field around an explicit population.
func NewFieldFrom(cfg Config, ps []Particle) *Field {
	cfg = cfg.WithDefaults()
	cfg.Count = len(ps)
	owned := make([]Particle, len(ps))
	copy(owned, ps)
	return &Field{cfg: cfg, particles: owned}
}

func (f *Field) Config() Config { return f.cfg }
func (f *Field) Angle() float64 { return f.angle }
func (f *Field) Len() int       { return len(f.particles) }

// At returns particle i by value.
func (f *Field) At(i int) Particle { return f.particles[i] }

// Particles returns a copy of the current population.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Advance bumps the rotation angle by delta, steps every particle and returns
// their projections in particle order.
func (f *Field) Advance(delta float64, center r2.Vec) []Projection {
	f.angle += delta

	projs := make([]Projection, len(f.particles))
	for i := range f.particles {
		p := &f.particles[i]
		p.Update(f.cfg.Bound)
		projs[i] = Project(p.Pos, f.angle, f.cfg.Viewer, center)
	}
	return projs
}

// Connections returns an edge for every unordered pair of visible projections
// closer than maxDistance on screen.
//
// This is an all-pairs scan, fine at the default hundred particles
// (about 5k pairs per frame). A much larger field needs a grid partition.
func Connections(projs []Projection, maxDistance float64) []Edge {
	var edges []Edge
	for i := 0; i < len(projs); i++ {
		if !projs[i].Visible {
			continue
		}
		for j := i + 1; j < len(projs); j++ {
			if !projs[j].Visible {
				continue
			}
			d := r2.Norm(r2.Sub(projs[i].Point, projs[j].Point))
			if d < maxDistance {
				edges = append(edges, Edge{I: i, J: j, Opacity: Opacity(d, maxDistance)})
			}
		}
	}
	return edges
}

// Connections uses the field's configured edge distance.
func (f *Field) Connections(projs []Projection) []Edge {
	return Connections(projs, f.cfg.MaxDistance)
}

// Opacity is the linear falloff used for edges: 1 at distance 0, 0 at max and beyond.
func Opacity(d, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, 1-d/maxDistance))
}
