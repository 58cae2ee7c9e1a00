package client

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestCameraCentersTarget(t *testing.T) {
	camera := NewCamera(cp.Vector{X: 100, Y: -50}, 800, 600)
	assert.Equal(t, cp.Vector{X: 400, Y: 300}, camera.WorldToScreen(cp.Vector{X: 100, Y: -50}))

	// Up in the world is up on screen.
	assert.Equal(t, cp.Vector{X: 400, Y: 290}, camera.WorldToScreen(cp.Vector{X: 100, Y: -40}))
}

func TestCameraRoundTrip(t *testing.T) {
	camera := NewCamera(cp.Vector{X: 1234.5, Y: 77}, 1920, 1080)
	for _, p := range []cp.Vector{{}, {X: 10, Y: 20}, {X: -999, Y: 431.25}} {
		assert.Equal(t, p, camera.ScreenToWorld(camera.WorldToScreen(p)))
	}
}
