package particles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Particle is a single simulated point. Pos is the logical, unrotated position;
// rotation is only ever applied when projecting.
type Particle struct {
	Pos    r3.Vec
	Vel    r3.Vec
	Radius float64
	Alpha  float64 // per-instance opacity, colour comes from the palette at draw time
}

// Update advances the particle by its velocity and reverses any velocity
// component whose axis left the [-bound, bound] cube on this step.
func (p *Particle) Update(bound float64) {
	p.Pos = r3.Add(p.Pos, p.Vel)

	if math.Abs(p.Pos.X) > bound {
		p.Vel.X = -p.Vel.X
	}
	if math.Abs(p.Pos.Y) > bound {
		p.Vel.Y = -p.Vel.Y
	}
	if math.Abs(p.Pos.Z) > bound {
		p.Vel.Z = -p.Vel.Z
	}
}
