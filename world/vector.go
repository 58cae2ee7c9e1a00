package world

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Wrap maps p into [-size/2, size/2) so that leaving one edge re-enters at the other.
func Wrap(p, size float64) float64 {
	half := size / 2
	if p >= -half && p < half {
		return p
	}
	wrapped := math.Mod(p-half, size)
	if wrapped < 0 {
		wrapped += size
	}
	// math.Mod can round a tiny negative remainder up to exactly size.
	if wrapped >= size {
		wrapped -= size
	}
	return wrapped - half
}

// AngleDifference returns the signed shortest rotation from -> to, in (-π, π].
// Positive is counter-clockwise.
func AngleDifference(from, to float64) float64 {
	d := to - from
	return math.Atan2(math.Sin(d), math.Cos(d))
}

// Bearing is the angle of the direction from -> to. Coincident points give 0.
func Bearing(from, to cp.Vector) float64 {
	d := to.Sub(from)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.Y, d.X)
}

// Transform is a rigid 2D transform: rotate by Angle, then translate by Position.
type Transform struct {
	Position cp.Vector
	Angle    float64
}

func (t Transform) Heading() cp.Vector {
	return cp.ForAngle(t.Angle)
}

func (t Transform) Apply(local cp.Vector) cp.Vector {
	return t.Position.Add(local.Rotate(t.Heading()))
}
