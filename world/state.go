package world

import (
	"github.com/jakecoffman/cp"

	"slay/resource"
)

// Stats is a snapshot of world counters for the HUD and logs.
type Stats struct {
	Entities        int
	Projectiles     int
	Pending         int
	DroppedContacts int
}

func (w *World) Stats() Stats {
	stats := Stats{
		Entities:        w.entities.Len(),
		Pending:         w.queue.Len(),
		DroppedContacts: w.physics.DroppedContacts(),
	}
	w.entities.ForEach(func(_ Handle, e *Entity) {
		if _, ok := e.ProjectileState(); ok {
			stats.Projectiles++
		}
	})
	return stats
}

// DrawRequest is one entity as the renderer should see it. Mesh is nil for entities drawn only as a
// debug outline; Outline is only filled in debug mode.
type DrawRequest struct {
	Handle    Handle
	Name      string
	Mesh      *resource.Mesh
	Transform Transform
	Outline   []cp.Vector
}

// Draw emits a request for every drawable entity with a body. In debug mode entities with a
// collider but no mesh are emitted too, for their outline.
func (w *World) Draw(debug bool, callback func(DrawRequest)) {
	w.entities.ForEach(func(h Handle, e *Entity) {
		body, ok := e.Physics()
		if !ok {
			return
		}
		if e.Drawable == nil && !debug {
			return
		}

		req := DrawRequest{
			Handle:    h,
			Transform: w.physics.Transform(body),
		}
		if e.Template != nil {
			req.Name = e.Template.Name
		}
		if e.Drawable != nil {
			req.Mesh = e.Drawable.Mesh
		}
		if debug {
			req.Outline = w.physics.Outline(body, e.Template)
		}
		callback(req)
	})
}

// GridLines are the reference lines drawn over the arena.
func (w *World) GridLines() []Line {
	return w.arena.GridLines()
}
