package world

import (
	"github.com/segmentio/ksuid"

	"slay/resource"
)

// Drawable marks an entity for rendering with a template mesh.
type Drawable struct {
	Mesh *resource.Mesh
}

// Entity is a bag of optional components. A nil slot means the entity lacks that capability; callers
// skip whatever step needed it.
type Entity struct {
	Handle   Handle
	Tag      ksuid.KSUID
	Template *resource.Template

	Body       *Body
	Drawable   *Drawable
	Player     *Player
	Projectile *Projectile
}

func (e *Entity) PlayerState() (*Player, bool) {
	return e.Player, e.Player != nil
}

func (e *Entity) ProjectileState() (*Projectile, bool) {
	return e.Projectile, e.Projectile != nil
}

func (e *Entity) Physics() (*Body, bool) {
	return e.Body, e.Body != nil
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	name := "entity"
	if e.Template != nil {
		name = e.Template.Name
	}
	return name + "/" + e.Tag.String()
}
