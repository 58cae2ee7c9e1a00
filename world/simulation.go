package world

import (
	"math"

	"go.uber.org/zap"

	"slay/resource"
)

// Update runs one frame of game logic against the space as the last Step left it:
// steer the player, maybe fire, maybe spawn, wrap and expire everything, then apply the queued
// structural changes and refresh the camera.
func (w *World) Update(in Input) {
	dt := w.frameDelta(in.Now)

	w.updatePlayer(in)
	w.spawnEnemies(in.Now, dt)

	w.entities.ForEach(func(h Handle, e *Entity) {
		w.updateEntity(h, e, in.Now)
	})

	w.queue.Apply(w.entities, w.physics)

	w.updateCamera()
	w.drainContacts()
}

func (w *World) frameDelta(now float64) float64 {
	if !w.started {
		w.started = true
		w.lastNow = now
		return 0
	}
	dt := now - w.lastNow
	w.lastNow = now
	return dt
}

func (w *World) updatePlayer(in Input) {
	if !w.hasPlayer {
		return
	}
	e, ok := w.entities.Get(w.player)
	if !ok {
		return
	}
	player, ok := e.PlayerState()
	if !ok {
		return
	}
	body, ok := e.Physics()
	if !ok {
		return
	}

	ControlPlayer(w.physics, body, player, in, w.cfg)

	if !in.Has(IntentFire) {
		return
	}
	ammo, _ := w.resources.Template(resource.Bullet)
	if m, ok := Fire(w.physics, e, ammo, in.Now, w.cfg); ok {
		w.queue.Submit(m)
	}
}

// spawnDue is a loose periodic test: it fires on the first frame whose time lands within one frame
// length past a multiple of the interval. Jitter can skip or double a spawn and that is acceptable.
func (w *World) spawnDue(now, dt float64) bool {
	if !w.cfg.SpawnEnemies || w.cfg.SpawnInterval <= 0 || dt <= 0 {
		return false
	}
	return math.Mod(now, w.cfg.SpawnInterval) < dt
}

func (w *World) spawnEnemies(now, dt float64) {
	if !w.spawnDue(now, dt) {
		return
	}
	enemy, ok := w.resources.Template(resource.Enemy)
	if !ok {
		return
	}

	placement := Placement{
		Position: w.arena.RandomPoint(w.rng),
		Angle:    w.rng.Float64() * 2 * math.Pi,
	}
	w.queue.Submit(NewEntity(enemy).Drawable().Add(placement))
}

// updateEntity is the read pass body. It may write body state but never adds or removes entities.
func (w *World) updateEntity(h Handle, e *Entity, now float64) {
	if body, ok := e.Physics(); ok {
		w.physics.ApplyWrap(body, w.arena)
	}
	if projectile, ok := e.ProjectileState(); ok && projectile.Expired(now) {
		w.queue.Submit(RemoveMutation(h))
	}
}

func (w *World) updateCamera() {
	if !w.hasPlayer {
		return
	}
	e, ok := w.entities.Get(w.player)
	if !ok {
		w.cameraValid = false
		return
	}
	if body, ok := e.Physics(); ok {
		w.camera = w.physics.Position(body)
		w.cameraValid = true
	}
}

// drainContacts logs collision notifications. They have no gameplay effect yet.
func (w *World) drainContacts() {
	w.physics.DrainContacts(func(event ContactEvent) {
		w.log.Debug("contact",
			zap.Stringer("kind", event.Kind),
			zap.String("a", w.describe(event.A)),
			zap.String("b", w.describe(event.B)),
		)
	})
}
