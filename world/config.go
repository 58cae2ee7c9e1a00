package world

// Config holds the tuning constants of the simulation. Times are in seconds, distances in world units.
type Config struct {
	// ScreenMultiplier scales the window resolution into the arena (and wrap period) size.
	ScreenMultiplier float64

	Gain         float64 // angular velocity per radian of aim error
	Thrust       float64 // velocity added per frame along the heading
	BrakeDamping float64 // linear velocity factor while braking, < 1

	FireCooldown       float64
	ProjectileSpeed    float64
	ProjectileLifetime float64

	SpawnInterval float64
	SpawnEnemies  bool

	Damping       float64 // space-wide velocity retention per second, 1 is drag-free
	ContactBuffer int
	Debug         bool
}

func DefaultConfig() Config {
	return Config{
		ScreenMultiplier:   3,
		Gain:               3,
		Thrust:             10,
		BrakeDamping:       0.97,
		FireCooldown:       0.2,
		ProjectileSpeed:    2400,
		ProjectileLifetime: 1,
		SpawnInterval:      1,
		SpawnEnemies:       true,
		Damping:            1,
		ContactBuffer:      1024,
	}
}
