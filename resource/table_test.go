package resource

import (
	"testing"
	"testing/fstest"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	table, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, []string{Bullet, Cursor, Enemy, Ship}, table.Names())

	ship := table.MustTemplate(Ship)
	require.NotNil(t, ship.Collider)
	assert.Len(t, ship.Collider.Vertices, 3)
	assert.Equal(t, "ships", ship.Attributes.CollisionGroup)

	point, ok := ship.FirePoint(0)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 32, Y: 0}, point)

	_, ok = ship.FirePoint(1)
	assert.False(t, ok)

	cursor := table.MustTemplate(Cursor)
	assert.Nil(t, cursor.Collider)
	assert.Equal(t, 1.0, cursor.Body.Mass)
}

func TestLoadRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/a.toml": {Data: []byte(`name = "rock"`)},
		"defs/b.toml": {Data: []byte(`name = "rock"`)},
	}

	_, err := Load(fsys, "defs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate template: rock")
}

func TestLoadSkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/rock.toml":  {Data: []byte(`name = "rock"`)},
		"defs/notes.txt":  {Data: []byte(`not a template`)},
		"defs/sub/x.toml": {Data: []byte(`name = "nested"`)},
	}

	table, err := Load(fsys, "defs")
	require.NoError(t, err)
	assert.Equal(t, []string{"rock"}, table.Names())
}

func TestParseRejectsMalformedTemplates(t *testing.T) {
	tests := map[string]string{
		"missing name": `width = 1.0`,
		"bad fire point": `
name = "gun"
[attributes]
fire_points = [[1.0, 2.0, 3.0]]`,
		"dangling index": `
name = "mesh"
[mesh]
vertices = [[0.0, 0.0], [1.0, 0.0], [0.0, 1.0]]
indices = [0, 1, 3]`,
		"partial triangle": `
name = "mesh"
[mesh]
vertices = [[0.0, 0.0], [1.0, 0.0], [0.0, 1.0]]
indices = [0, 1]`,
		"degenerate collider": `
name = "line"
[collider]
vertices = [[0.0, 0.0], [1.0, 0.0]]`,
		"empty collider": `
name = "ghost"
[collider]
friction = 0.5`,
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(contents))
			assert.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

func TestParseCircleCollider(t *testing.T) {
	template, err := Parse([]byte(`
name = "orb"
[collider]
radius = 6.0
`))
	require.NoError(t, err)
	require.NotNil(t, template.Collider)
	assert.True(t, template.Collider.IsCircle())
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, template.Mesh.Color)
}

func TestCollisionFilter(t *testing.T) {
	ships := CollisionFilter("Ships")
	bullets := CollisionFilter("bullets")
	global := CollisionFilter("")

	assert.Equal(t, categoryShips, ships.Categories)
	assert.Equal(t, categoryBullets, bullets.Categories)
	assert.Equal(t, cp.ALL_CATEGORIES, global.Categories)
	assert.NotZero(t, ships.Mask&bullets.Categories)
	assert.NotZero(t, bullets.Mask&ships.Categories)
}

func TestMustTemplatePanics(t *testing.T) {
	table := NewTable(&Template{Name: "only"})
	assert.Panics(t, func() { table.MustTemplate("missing") })
}
