package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"slay/resource"
)

const entityCollisionType cp.CollisionType = 1

var ErrMissingShape = errors.New("template has no collider shape")

// Body is the physics handle pair of one entity: a rigid body and the collider parented to it.
// Both are created by Attach and destroyed by Detach; a detached Body must not be touched again.
type Body struct {
	body     *cp.Body
	shape    *cp.Shape
	detached bool
}

func (b *Body) live() *cp.Body {
	if b.detached {
		panic("use of detached physics body")
	}
	return b.body
}

// Physics owns the simulation space. It is the only place positions and velocities live.
type Physics struct {
	space    *cp.Space
	contacts chan ContactEvent
	dropped  int
}

func NewPhysics(cfg Config) *Physics {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.SetDamping(cfg.Damping)

	buffer := cfg.ContactBuffer
	if buffer < 1 {
		buffer = 1
	}
	p := &Physics{
		space:    space,
		contacts: make(chan ContactEvent, buffer),
	}

	handler := space.NewCollisionHandler(entityCollisionType, entityCollisionType)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		p.publish(ContactBegan, arb)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		p.publish(ContactEnded, arb)
	}
	return p
}

// publish never blocks: the space is mid-step when it calls us.
func (p *Physics) publish(kind ContactKind, arb *cp.Arbiter) {
	a, b := arb.Bodies()
	event := ContactEvent{Kind: kind}
	event.A, _ = a.UserData.(Handle)
	event.B, _ = b.UserData.(Handle)

	select {
	case p.contacts <- event:
	default:
		p.dropped++
	}
}

// DrainContacts hands every pending contact event to callback and returns once the channel is empty.
func (p *Physics) DrainContacts(callback func(ContactEvent)) {
	for {
		select {
		case event := <-p.contacts:
			callback(event)
		default:
			return
		}
	}
}

func (p *Physics) DroppedContacts() int {
	return p.dropped
}

func (p *Physics) Step(dt float64) {
	p.space.Step(dt)
}

func moment(tmpl *resource.Template) float64 {
	c := tmpl.Collider
	mass := tmpl.Body.Mass

	var m float64
	if c.IsCircle() {
		m = cp.MomentForCircle(mass, 0, c.Radius, cp.Vector{})
	} else {
		m = math.Abs(cp.MomentForPoly(mass, len(c.Vertices), c.Vertices, cp.Vector{}, 0))
	}
	if m <= 0 || math.IsNaN(m) {
		m = cp.MomentForBox(mass, math.Max(tmpl.Width, 1), math.Max(tmpl.Height, 1))
	}
	return m
}

// Attach builds a fresh body and collider from tmpl and adds both to the space. A template without a
// collider fails with ErrMissingShape and leaves the space untouched.
func (p *Physics) Attach(tmpl *resource.Template, h Handle) (*Body, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("attach: %w", ErrMissingShape)
	}
	if tmpl.Collider == nil {
		return nil, fmt.Errorf("attach %s: %w", tmpl.Name, ErrMissingShape)
	}
	c := tmpl.Collider

	body := cp.NewBody(tmpl.Body.Mass, moment(tmpl))
	body.UserData = h

	var shape *cp.Shape
	if c.IsCircle() {
		shape = cp.NewCircle(body, c.Radius, cp.Vector{})
	} else {
		shape = cp.NewPolyShape(body, len(c.Vertices), c.Vertices, cp.NewTransformIdentity(), 0)
	}
	shape.SetFriction(c.Friction)
	shape.SetElasticity(c.Elasticity)
	shape.SetFilter(tmpl.Filter())
	shape.SetCollisionType(entityCollisionType)
	shape.UserData = h

	p.space.AddBody(body)
	p.space.AddShape(shape)

	return &Body{
		body:  body,
		shape: shape,
	}, nil
}

// Detach removes the collider, then the body. Calling it twice for the same pair panics.
func (p *Physics) Detach(b *Body) {
	if b.detached {
		panic("physics body detached twice")
	}
	p.space.RemoveShape(b.shape)
	p.space.RemoveBody(b.body)
	b.detached = true
}

func (p *Physics) Position(b *Body) cp.Vector {
	return b.live().Position()
}

func (p *Physics) Rotation(b *Body) float64 {
	return b.live().Angle()
}

func (p *Physics) Velocity(b *Body) cp.Vector {
	return b.live().Velocity()
}

func (p *Physics) AngularVelocity(b *Body) float64 {
	return b.live().AngularVelocity()
}

func (p *Physics) Transform(b *Body) Transform {
	body := b.live()
	return Transform{
		Position: body.Position(),
		Angle:    body.Angle(),
	}
}

func (p *Physics) SetVelocity(b *Body, v cp.Vector) {
	b.live().SetVelocityVector(v)
}

func (p *Physics) SetAngularVelocity(b *Body, w float64) {
	b.live().SetAngularVelocity(w)
}

// Place teleports the body and sets its motion.
func (p *Physics) Place(b *Body, placement Placement) {
	body := b.live()
	body.SetPosition(placement.Position)
	body.SetAngle(placement.Angle)
	body.SetVelocityVector(placement.Velocity)
	body.SetAngularVelocity(placement.AngularVelocity)
}

// ApplyWrap folds the body's translation back into the arena. Velocity is left alone, so motion
// continues seamlessly on the far side.
func (p *Physics) ApplyWrap(b *Body, arena Arena) {
	body := b.live()
	pos := body.Position()
	if wrapped := arena.Wrap(pos); wrapped != pos {
		body.SetPosition(wrapped)
	}
}

// Outline is the collider boundary in world space, for debug drawing.
func (p *Physics) Outline(b *Body, tmpl *resource.Template) []cp.Vector {
	body := b.live()
	if tmpl == nil || tmpl.Collider == nil {
		return nil
	}

	c := tmpl.Collider
	if c.IsCircle() {
		const segments = 16
		points := make([]cp.Vector, 0, segments)
		for i := 0; i < segments; i++ {
			local := cp.ForAngle(2 * math.Pi * float64(i) / segments).Mult(c.Radius)
			points = append(points, body.LocalToWorld(local))
		}
		return points
	}

	points := make([]cp.Vector, 0, len(c.Vertices))
	for _, v := range c.Vertices {
		points = append(points, body.LocalToWorld(v))
	}
	return points
}
