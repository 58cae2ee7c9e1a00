package world

import (
	"github.com/jakecoffman/cp"

	"slay/resource"
)

// Projectile marks an entity that expires Lifetime seconds after FiredTime. Source is only a label:
// the shooter may be gone by the time anyone looks at it.
type Projectile struct {
	Source    Handle
	FiredTime float64
	Lifetime  float64
}

func (p *Projectile) Expired(now float64) bool {
	return now-p.FiredTime >= p.Lifetime
}

// SpawnGeometry places a projectile at the shooter's fire point, pointing the same way, moving at
// the shooter's velocity plus speed along the heading.
func SpawnGeometry(source Transform, velocity, firePoint cp.Vector, speed float64) Placement {
	return Placement{
		Position: source.Apply(firePoint),
		Angle:    source.Angle,
		Velocity: velocity.Add(source.Heading().Mult(speed)),
	}
}

// Fire runs the cooldown gate for shooter and, when it passes, returns the Add mutation for one
// projectile built from ammo. Any missing piece (player state, body, fire point) means no shot and
// leaves the cooldown untouched.
func Fire(p *Physics, shooter *Entity, ammo *resource.Template, now float64, cfg Config) (Mutation, bool) {
	player, ok := shooter.PlayerState()
	if !ok || !player.Ready(now, cfg.FireCooldown) {
		return Mutation{}, false
	}
	body, ok := shooter.Physics()
	if !ok || shooter.Template == nil || ammo == nil {
		return Mutation{}, false
	}
	firePoint, ok := shooter.Template.FirePoint(0)
	if !ok {
		return Mutation{}, false
	}

	placement := SpawnGeometry(p.Transform(body), p.Velocity(body), firePoint, cfg.ProjectileSpeed)
	player.LastFireTime = now

	return NewEntity(ammo).
		Drawable().
		Projectile(Projectile{
			Source:    shooter.Handle,
			FiredTime: now,
			Lifetime:  cfg.ProjectileLifetime,
		}).
		Add(placement), true
}
