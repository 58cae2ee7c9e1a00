package client

import "github.com/jakecoffman/cp"

// Camera maps world space (y up, origin at the arena center) to screen pixels (y down) around Target.
type Camera struct {
	Target cp.Vector
	Width  float64
	Height float64
}

func NewCamera(target cp.Vector, width, height int) Camera {
	return Camera{
		Target: target,
		Width:  float64(width),
		Height: float64(height),
	}
}

func (c Camera) WorldToScreen(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: p.X - c.Target.X + c.Width/2,
		Y: c.Height/2 - (p.Y - c.Target.Y),
	}
}

func (c Camera) ScreenToWorld(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: p.X - c.Width/2 + c.Target.X,
		Y: c.Height/2 - p.Y + c.Target.Y,
	}
}
