package world

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Player is the state of the entity steered by the local input.
type Player struct {
	Aim          cp.Vector
	LastFireTime float64
}

// NewPlayer returns a player that may fire immediately.
func NewPlayer() Player {
	return Player{
		LastFireTime: math.Inf(-1),
	}
}

// Ready reports whether the cooldown since the last shot has strictly elapsed.
func (p *Player) Ready(now, cooldown float64) bool {
	return now-p.LastFireTime > cooldown
}

// AimError is the signed shortest rotation that would point t's heading at aim.
func AimError(t Transform, aim cp.Vector) float64 {
	return AngleDifference(t.Angle, Bearing(t.Position, aim))
}

// ControlPlayer applies the steering law for one frame: turn toward the cursor proportionally to the
// aim error, brake by scaling velocity, thrust along the heading. Without thrust or brake the
// velocity is left as the space integrated it.
func ControlPlayer(p *Physics, b *Body, player *Player, in Input, cfg Config) {
	player.Aim = in.Cursor

	t := p.Transform(b)
	p.SetAngularVelocity(b, AimError(t, player.Aim)*cfg.Gain)

	thrust, brake := in.Has(IntentThrust), in.Has(IntentBrake)
	if !thrust && !brake {
		return
	}

	velocity := p.Velocity(b)
	if brake {
		velocity = velocity.Mult(cfg.BrakeDamping)
	}
	if thrust {
		velocity = velocity.Add(t.Heading().Mult(cfg.Thrust))
	}
	p.SetVelocity(b, velocity)
}
