package world

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Arena is the toroidal play field, centered on the origin.
type Arena struct {
	Width  float64
	Height float64
}

func NewArena(width, height float64) Arena {
	return Arena{
		Width:  width,
		Height: height,
	}
}

func (a Arena) Size() cp.Vector {
	return cp.Vector{X: a.Width, Y: a.Height}
}

func (a Arena) Min() cp.Vector {
	return cp.Vector{X: -a.Width / 2, Y: -a.Height / 2}
}

func (a Arena) Max() cp.Vector {
	return cp.Vector{X: a.Width / 2, Y: a.Height / 2}
}

// Wrap applies Wrap independently per axis.
func (a Arena) Wrap(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: Wrap(p.X, a.Width),
		Y: Wrap(p.Y, a.Height),
	}
}

func (a Arena) Contains(p cp.Vector) bool {
	lo, hi := a.Min(), a.Max()
	return p.X >= lo.X && p.X < hi.X && p.Y >= lo.Y && p.Y < hi.Y
}

// RandomPoint is uniformly distributed over the arena.
func (a Arena) RandomPoint(rng *rand.Rand) cp.Vector {
	lo := a.Min()
	return cp.Vector{
		X: lo.X + rng.Float64()*a.Width,
		Y: lo.Y + rng.Float64()*a.Height,
	}
}

// Offsets are the eight neighbouring copies of the arena plus the identity. Drawing a shape once per
// offset makes anything straddling an edge appear on the opposite side too.
func (a Arena) Offsets() []cp.Vector {
	w, h := a.Width, a.Height
	return []cp.Vector{
		{X: -w, Y: -h},
		{X: w, Y: -h},
		{X: -w, Y: h},
		{X: w, Y: h},
		{X: 0, Y: -h},
		{X: 0, Y: h},
		{X: -w, Y: 0},
		{X: w, Y: 0},
		{X: 0, Y: 0},
	}
}

// Line is a world-space segment.
type Line struct {
	A, B cp.Vector
}

// GridLines are the background guides at half the extent on each axis.
func (a Arena) GridLines() []Line {
	w, h := a.Width/2, a.Height/2
	return []Line{
		{A: cp.Vector{X: -w / 2, Y: -h}, B: cp.Vector{X: -w / 2, Y: h}},
		{A: cp.Vector{X: w / 2, Y: -h}, B: cp.Vector{X: w / 2, Y: h}},
		{A: cp.Vector{X: -w, Y: -h / 2}, B: cp.Vector{X: w, Y: -h / 2}},
		{A: cp.Vector{X: -w, Y: h / 2}, B: cp.Vector{X: w, Y: h / 2}},
	}
}
