package client

import (
	_ "embed"
	"fmt"

	"slay/resource"
)

//go:embed assets/version.txt
var Version string

// Assets is the template table the client draws from. Every template the game refers to by name must
// be present.
type Assets struct {
	*resource.Table
}

func LoadAssets() (*Assets, error) {
	table, err := resource.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	for _, name := range []string{resource.Ship, resource.Enemy, resource.Bullet, resource.Cursor} {
		if _, ok := table.Template(name); !ok {
			return nil, fmt.Errorf("missing template: %s", name)
		}
	}
	return &Assets{Table: table}, nil
}

func (a *Assets) Mesh(name string) *resource.Mesh {
	return &a.MustTemplate(name).Mesh
}
