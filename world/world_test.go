package world

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest/observer"

	"slay/resource"
)

func newTestWorld(t *testing.T, cfg Config) (*World, *observer.ObservedLogs) {
	t.Helper()
	log, logs := observedLogger()
	w := NewWorld(cfg, NewArena(1000, 600), testTable(t), log, 1)
	_, err := w.SpawnPlayer()
	require.NoError(t, err)
	return w, logs
}

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnEnemies = false
	return cfg
}

func TestSpawnPlayer(t *testing.T) {
	w, logs := newTestWorld(t, quietConfig())

	h, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, 1, w.Len())

	e, ok := w.Entity(h)
	require.True(t, ok)
	assert.NotNil(t, e.Player)
	assert.NotNil(t, e.Drawable)

	camera, ok := w.Camera()
	assert.True(t, ok)
	assert.Equal(t, cp.Vector{}, camera)
	assert.Equal(t, 1, logs.FilterMessage("player spawned").Len())
}

func TestSpawnPlayerMissingTemplate(t *testing.T) {
	w := NewWorld(quietConfig(), NewArena(1000, 600), resource.NewTable(), nil, 1)
	_, err := w.SpawnPlayer()
	assert.Error(t, err)

	_, ok := w.Player()
	assert.False(t, ok)
}

func TestUpdateWithoutPlayer(t *testing.T) {
	w := NewWorld(quietConfig(), NewArena(1000, 600), testTable(t), nil, 1)
	assert.NotPanics(t, func() {
		w.Update(NewInput(0, cp.Vector{X: 1}, IntentThrust, IntentFire))
		w.Step(1.0 / 60)
		w.Update(NewInput(1.0/60, cp.Vector{X: 1}, IntentThrust, IntentFire))
	})
	assert.Equal(t, 0, w.Len())

	_, ok := w.Camera()
	assert.False(t, ok)
}

func TestUpdateFiresAndExpires(t *testing.T) {
	w, _ := newTestWorld(t, quietConfig())
	cursor := cp.Vector{X: 100}

	w.Update(NewInput(0, cursor, IntentFire))
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 1, w.Stats().Projectiles)
	assert.Equal(t, 0, w.Stats().Pending)

	w.Step(0.5)
	w.Update(NewInput(0.5, cursor))
	assert.Equal(t, 2, w.Len())

	w.Step(0.5)
	w.Update(NewInput(1, cursor))
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 0, w.Stats().Projectiles)
}

func TestUpdateHonorsCooldown(t *testing.T) {
	w, _ := newTestWorld(t, quietConfig())
	cursor := cp.Vector{X: 100}

	for i := 0; i <= 6; i++ {
		w.Update(NewInput(float64(i)/60, cursor, IntentFire))
		w.Step(1.0 / 60)
	}
	assert.Equal(t, 1, w.Stats().Projectiles)
}

func TestUpdatePeriodicSpawn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnInterval = 1
	w, _ := newTestWorld(t, cfg)

	// Frame times are exact binary fractions so the modulo test has no rounding slop.
	const fps = 64
	for i := 0; i <= 3*fps+8; i++ {
		w.Update(NewInput(float64(i)/fps, cp.Vector{X: 100}))
		w.Step(1.0 / fps)
	}
	assert.Equal(t, 4, w.Len())

	enemies := 0
	w.ForEachEntity(func(_ Handle, e *Entity) {
		if e.Template.Name == resource.Enemy {
			enemies++
		}
	})
	assert.Equal(t, 3, enemies)
}

func TestUpdateWrapsAndMovesCamera(t *testing.T) {
	w, _ := newTestWorld(t, quietConfig())
	h, _ := w.Player()
	e, _ := w.Entity(h)

	w.Physics().Place(e.Body, Placement{Position: cp.Vector{X: 510, Y: -20}, Velocity: cp.Vector{X: 40}})
	w.Update(NewInput(0, cp.Vector{X: 1000, Y: -20}))

	pos := w.Physics().Position(e.Body)
	assert.InDelta(t, -490, pos.X, 1e-9)
	assert.InDelta(t, -20, pos.Y, 1e-9)
	assert.Equal(t, cp.Vector{X: 40}, w.Physics().Velocity(e.Body))

	camera, ok := w.Camera()
	require.True(t, ok)
	assert.Equal(t, pos, camera)
}

func TestUpdateLogsContacts(t *testing.T) {
	w, logs := newTestWorld(t, quietConfig())
	enemy := w.resources.MustTemplate(resource.Enemy)

	w.Queue().Submit(NewEntity(enemy).Drawable().Add(Placement{Position: cp.Vector{X: 10}}))
	w.Update(NewInput(0, cp.Vector{X: 100}))
	require.Equal(t, 2, w.Len())

	w.Step(1.0 / 60)
	w.Update(NewInput(1.0/60, cp.Vector{X: 100}))

	contacts := logs.FilterMessage("contact").All()
	require.NotEmpty(t, contacts)
	assert.Equal(t, ContactBegan.String(), contacts[0].ContextMap()["kind"])
}

func TestDraw(t *testing.T) {
	w, _ := newTestWorld(t, quietConfig())

	var requests []DrawRequest
	w.Draw(false, func(req DrawRequest) {
		requests = append(requests, req)
	})
	require.Len(t, requests, 1)
	assert.Equal(t, resource.Ship, requests[0].Name)
	assert.NotNil(t, requests[0].Mesh)
	assert.Nil(t, requests[0].Outline)

	requests = nil
	w.Draw(true, func(req DrawRequest) {
		requests = append(requests, req)
	})
	require.Len(t, requests, 1)
	assert.Len(t, requests[0].Outline, 3)

	assert.Len(t, w.GridLines(), 4)
}
