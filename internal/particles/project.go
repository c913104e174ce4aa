package particles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// MinDepth is the viewer+z denominator at or below which a point is at or
// behind the eye and reported as not visible.
const MinDepth = 0.0

// Projection is the per-frame screen-space view of one particle.
type Projection struct {
	Point   r2.Vec
	Scale   float64
	Visible bool
}

// RotateY rotates p around the Y axis by angle radians.
func RotateY(p r3.Vec, angle float64) r3.Vec {
	sin, cos := math.Sincos(angle)
	return r3.Vec{
		X: p.X*cos - p.Z*sin,
		Y: p.Y,
		Z: p.X*sin + p.Z*cos,
	}
}

// Project maps a 3D point to screen space for a viewer at distance viewer
// looking down the Z axis at center. It does not modify p.
//
// The scale factor is viewer/(viewer+z') after rotation, so it is in (0, 1]
// for z' >= 0 and grows past 1 as z' approaches -viewer. Points with
// viewer+z' <= 0 are at or behind the eye and come back with Visible false
// and a zero scale.
func Project(p r3.Vec, angle, viewer float64, center r2.Vec) Projection {
	rot := RotateY(p, angle)

	depth := viewer + rot.Z
	if depth <= MinDepth {
		return Projection{Point: center}
	}

	s := viewer / depth
	return Projection{
		Point:   r2.Vec{X: rot.X*s + center.X, Y: rot.Y*s + center.Y},
		Scale:   s,
		Visible: true,
	}
}
