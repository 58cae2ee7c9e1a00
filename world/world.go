package world

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"slay/resource"
)

// World owns the entity store, the physics space and the mutation queue, and is the only code that
// touches any of them during a frame.
type World struct {
	cfg       Config
	arena     Arena
	resources *resource.Table

	entities *Store
	physics  *Physics
	queue    *MutationQueue

	player    Handle
	hasPlayer bool

	camera      cp.Vector
	cameraValid bool

	rng     *rand.Rand
	log     *zap.Logger
	lastNow float64
	started bool
}

func NewWorld(cfg Config, arena Arena, resources *resource.Table, log *zap.Logger, seed int64) *World {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("world")
	return &World{
		cfg:       cfg,
		arena:     arena,
		resources: resources,
		entities:  NewStore(),
		physics:   NewPhysics(cfg),
		queue:     NewMutationQueue(log),
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}
}

// SpawnPlayer creates the ship steered by Input at the arena center. It is applied immediately rather
// than queued so the camera has a target on the very first frame.
func (w *World) SpawnPlayer() (Handle, error) {
	ship, ok := w.resources.Template(resource.Ship)
	if !ok {
		return Handle{}, fmt.Errorf("spawn player: missing template %q", resource.Ship)
	}

	intent := NewEntity(ship).
		Drawable().
		Player(NewPlayer()).
		Build()
	h, err := Commit(w.entities, w.physics, intent)
	if err != nil {
		return Handle{}, fmt.Errorf("spawn player: %w", err)
	}

	w.player = h
	w.hasPlayer = true
	w.camera = w.physics.Position(intent.Body)
	w.cameraValid = true
	w.log.Info("player spawned", zap.Stringer("entity", intent), zap.Stringer("handle", h))
	return h, nil
}

// Step advances the physics space. It must not overlap Update.
func (w *World) Step(dt float64) {
	w.physics.Step(dt)
}

func (w *World) Entity(h Handle) (*Entity, bool) {
	return w.entities.Get(h)
}

func (w *World) Player() (Handle, bool) {
	return w.player, w.hasPlayer && w.entities.Contains(w.player)
}

// Camera is the player's position as of the last Update.
func (w *World) Camera() (cp.Vector, bool) {
	return w.camera, w.cameraValid
}

func (w *World) Len() int {
	return w.entities.Len()
}

func (w *World) Arena() Arena {
	return w.arena
}

func (w *World) Config() Config {
	return w.cfg
}

func (w *World) Physics() *Physics {
	return w.physics
}

func (w *World) Queue() *MutationQueue {
	return w.queue
}

func (w *World) ForEachEntity(callback func(Handle, *Entity)) {
	w.entities.ForEach(callback)
}

// describe labels h for logs even if it no longer resolves.
func (w *World) describe(h Handle) string {
	if e, ok := w.entities.Get(h); ok {
		return e.String()
	}
	return "stale/" + h.String()
}
