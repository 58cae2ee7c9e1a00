package client

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slay/resource"
	"slay/world"
)

func TestMeshVertices(t *testing.T) {
	mesh := &resource.Mesh{
		Vertices: []cp.Vector{{X: 10}, {Y: 10}},
		Indices:  []uint16{0, 1, 0},
		Color:    [4]uint8{255, 0, 51, 255},
	}
	camera := NewCamera(cp.Vector{}, 200, 100)
	transform := world.Transform{Position: cp.Vector{X: 5}, Angle: math.Pi / 2}

	vertices := meshVertices(nil, camera, mesh, transform, cp.Vector{X: -20})
	require.Len(t, vertices, 2)

	// (10, 0) turned a quarter is (0, 10), then moved to (-15, 10) in the world.
	assert.InDelta(t, 85, vertices[0].DstX, 1e-4)
	assert.InDelta(t, 40, vertices[0].DstY, 1e-4)
	assert.InDelta(t, 1, vertices[0].ColorR, 1e-6)
	assert.InDelta(t, 0.2, vertices[0].ColorB, 1e-6)

	// (0, 10) turned a quarter is (-10, 0).
	assert.InDelta(t, 75, vertices[1].DstX, 1e-4)
	assert.InDelta(t, 50, vertices[1].DstY, 1e-4)
}

func TestLoadAssets(t *testing.T) {
	assets, err := LoadAssets()
	require.NoError(t, err)
	assert.NotEmpty(t, assets.Mesh(resource.Cursor).Indices)
	assert.NotEmpty(t, Version)
}
