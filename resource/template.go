// Package resource holds the immutable entity templates loaded once at startup.
//
// A template is the blueprint every new entity is stamped from: physics defaults for the body and its
// collider, the tessellated mesh used for drawing, and a few named attributes (collision group and
// fire points). Templates are shared by pointer and must never be modified after Load returns.
package resource

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

const (
	Ship   = "ship"
	Enemy  = "enemy"
	Bullet = "bullet"
	Cursor = "cursor"
)

var ErrInvalidTemplate = errors.New("invalid template")

type BodyDef struct {
	Mass float64
}

// ColliderDef describes either a convex polygon (Vertices) or, when no vertices are given, a circle.
type ColliderDef struct {
	Vertices   []cp.Vector
	Radius     float64
	Friction   float64
	Elasticity float64
}

func (c *ColliderDef) IsCircle() bool {
	return len(c.Vertices) == 0
}

type Mesh struct {
	Vertices []cp.Vector
	Indices  []uint16
	Color    [4]uint8
}

type Attributes struct {
	CollisionGroup string
	FirePoints     []cp.Vector
}

type Template struct {
	Name   string
	Width  float64
	Height float64

	Body       BodyDef
	Collider   *ColliderDef
	Mesh       Mesh
	Attributes Attributes
}

// FirePoint returns the i-th fire point in template-local coordinates.
func (t *Template) FirePoint(i int) (cp.Vector, bool) {
	if i < 0 || i >= len(t.Attributes.FirePoints) {
		return cp.Vector{}, false
	}
	return t.Attributes.FirePoints[i], true
}

func (t *Template) Filter() cp.ShapeFilter {
	return CollisionFilter(t.Attributes.CollisionGroup)
}

type rawBody struct {
	Mass float64 `toml:"mass"`
}

type rawCollider struct {
	Vertices   [][]float64 `toml:"vertices"`
	Radius     float64     `toml:"radius"`
	Friction   float64     `toml:"friction"`
	Elasticity float64     `toml:"elasticity"`
}

type rawMesh struct {
	Vertices [][]float64 `toml:"vertices"`
	Indices  []uint16    `toml:"indices"`
	Color    []int       `toml:"color"`
}

type rawAttributes struct {
	CollisionGroup string      `toml:"collision_group"`
	FirePoints     [][]float64 `toml:"fire_points"`
}

type rawTemplate struct {
	Name       string        `toml:"name"`
	Width      float64       `toml:"width"`
	Height     float64       `toml:"height"`
	Body       rawBody       `toml:"body"`
	Collider   *rawCollider  `toml:"collider"`
	Mesh       rawMesh       `toml:"mesh"`
	Attributes rawAttributes `toml:"attributes"`
}

func toVectors(points [][]float64) ([]cp.Vector, error) {
	vectors := make([]cp.Vector, 0, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d has %d components, want 2", i, len(p))
		}
		vectors = append(vectors, cp.Vector{X: p[0], Y: p[1]})
	}
	return vectors, nil
}

func (r *rawTemplate) build() (*Template, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidTemplate)
	}

	t := &Template{
		Name:   r.Name,
		Width:  r.Width,
		Height: r.Height,
		Body:   BodyDef{Mass: r.Body.Mass},
		Attributes: Attributes{
			CollisionGroup: r.Attributes.CollisionGroup,
		},
	}
	if t.Body.Mass <= 0 {
		t.Body.Mass = 1
	}

	var err error
	if t.Attributes.FirePoints, err = toVectors(r.Attributes.FirePoints); err != nil {
		return nil, fmt.Errorf("%w: %s fire_points: %v", ErrInvalidTemplate, r.Name, err)
	}

	if t.Mesh.Vertices, err = toVectors(r.Mesh.Vertices); err != nil {
		return nil, fmt.Errorf("%w: %s mesh: %v", ErrInvalidTemplate, r.Name, err)
	}
	if len(r.Mesh.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %s mesh: %d indices is not a triangle list", ErrInvalidTemplate, r.Name, len(r.Mesh.Indices))
	}
	for _, index := range r.Mesh.Indices {
		if int(index) >= len(t.Mesh.Vertices) {
			return nil, fmt.Errorf("%w: %s mesh: index %d out of range", ErrInvalidTemplate, r.Name, index)
		}
	}
	t.Mesh.Indices = r.Mesh.Indices
	t.Mesh.Color = [4]uint8{255, 255, 255, 255}
	if len(r.Mesh.Color) > len(t.Mesh.Color) {
		return nil, fmt.Errorf("%w: %s mesh: color has %d channels", ErrInvalidTemplate, r.Name, len(r.Mesh.Color))
	}
	for i, c := range r.Mesh.Color {
		if c < 0 || c > 255 {
			return nil, fmt.Errorf("%w: %s mesh: color channel %d out of range", ErrInvalidTemplate, r.Name, c)
		}
		t.Mesh.Color[i] = uint8(c)
	}

	if r.Collider != nil {
		collider := &ColliderDef{
			Radius:     r.Collider.Radius,
			Friction:   r.Collider.Friction,
			Elasticity: r.Collider.Elasticity,
		}
		if collider.Vertices, err = toVectors(r.Collider.Vertices); err != nil {
			return nil, fmt.Errorf("%w: %s collider: %v", ErrInvalidTemplate, r.Name, err)
		}
		switch {
		case collider.IsCircle() && collider.Radius <= 0:
			return nil, fmt.Errorf("%w: %s collider has neither vertices nor radius", ErrInvalidTemplate, r.Name)
		case !collider.IsCircle() && len(collider.Vertices) < 3:
			return nil, fmt.Errorf("%w: %s collider needs at least 3 vertices", ErrInvalidTemplate, r.Name)
		}
		t.Collider = collider
	}

	return t, nil
}
