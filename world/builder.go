package world

import (
	"github.com/segmentio/ksuid"

	"slay/resource"
)

// EntityBuilder assembles an entity intent. Nothing touches the Store or the physics space until the
// resulting Add mutation is applied.
//
//	m := NewEntity(ship).Drawable().Player(NewPlayer()).Add(Placement{})
type EntityBuilder struct {
	entity *Entity
	built  bool
}

func NewEntity(tmpl *resource.Template) *EntityBuilder {
	return &EntityBuilder{
		entity: &Entity{
			Tag:      ksuid.New(),
			Template: tmpl,
		},
	}
}

func (eb *EntityBuilder) check() {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
}

// Drawable draws the entity with its template mesh.
func (eb *EntityBuilder) Drawable() *EntityBuilder {
	eb.check()
	if eb.entity.Template != nil {
		eb.entity.Drawable = &Drawable{Mesh: &eb.entity.Template.Mesh}
	}
	return eb
}

func (eb *EntityBuilder) Player(p Player) *EntityBuilder {
	eb.check()
	eb.entity.Player = &p
	return eb
}

func (eb *EntityBuilder) Projectile(p Projectile) *EntityBuilder {
	eb.check()
	eb.entity.Projectile = &p
	return eb
}

func (eb *EntityBuilder) Build() *Entity {
	eb.check()
	eb.built = true
	return eb.entity
}

// Add builds the intent and wraps it in an Add mutation finalized by init, which may be nil.
func (eb *EntityBuilder) Add(init Initializer) Mutation {
	return AddMutation(eb.Build(), init)
}
