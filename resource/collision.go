package resource

import (
	"strings"

	"github.com/jakecoffman/cp"
)

const (
	categoryShips uint = 1 << iota
	categoryBullets
)

var (
	filterGlobal  = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	filterShips   = cp.NewShapeFilter(cp.NO_GROUP, categoryShips, categoryShips|categoryBullets)
	filterBullets = cp.NewShapeFilter(cp.NO_GROUP, categoryBullets, categoryShips|categoryBullets)
)

// CollisionFilter maps a template's collision_group attribute to a shape filter.
// Unknown or empty groups collide with everything.
func CollisionFilter(group string) cp.ShapeFilter {
	switch strings.ToLower(group) {
	case "ships":
		return filterShips
	case "bullets":
		return filterBullets
	default:
		return filterGlobal
	}
}
