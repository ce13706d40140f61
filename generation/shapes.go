package generation

import (
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

// shapeVariant binds a building shape tag to the predicate that decides
// which footprint cells become wall tiles. Predicates take the cell
// position inside the footprint plus the footprint dimensions, so every
// shape works for both orientations of its size class.
type shapeVariant struct {
	tag      string
	occupied func(x, y, w, h int) bool
}

var (
	// Every footprint cell is a wall
	shapeSolid = shapeVariant{components.ShapeSolid, func(x, y, w, h int) bool {
		return true
	}}

	// Only the border cells of the footprint are walls
	shapeHollow = shapeVariant{components.ShapeHollow, func(x, y, w, h int) bool {
		return x == 0 || y == 0 || x == w-1 || y == h-1
	}}

	// Full rectangle minus the far corner cell
	shapeL = shapeVariant{components.ShapeL, func(x, y, w, h int) bool {
		return !(x == w-1 && y == h-1)
	}}

	// Side columns joined by the bottom row
	shapeU = shapeVariant{components.ShapeU, func(x, y, w, h int) bool {
		return x == 0 || x == w-1 || y == h-1
	}}

	// Side columns joined by the middle row
	shapeH = shapeVariant{components.ShapeH, func(x, y, w, h int) bool {
		return x == 0 || x == w-1 || y == h/2
	}}

	// Left column with top, middle and bottom rows
	shapeE = shapeVariant{components.ShapeE, func(x, y, w, h int) bool {
		return x == 0 || y == 0 || y == h-1 || y == h/2
	}}

	// Left column with top and bottom rows
	shapeC = shapeVariant{components.ShapeC, func(x, y, w, h int) bool {
		return x == 0 || y == 0 || y == h-1
	}}

	// Middle row and middle column
	shapePlus = shapeVariant{components.ShapePlus, func(x, y, w, h int) bool {
		return x == w/2 || y == h/2
	}}
)

// pickShape selects a shape variant for a footprint of the given tile
// count. Small buildings are mostly solid; the larger the footprint,
// the more elaborate the candidate shapes.
func (g *MissionMapGenerator) pickShape(size int) shapeVariant {
	switch size {
	case 4:
		if g.rng.Float64() < 0.7 {
			return shapeSolid
		}
		return shapeHollow
	case 6:
		if g.rng.Float64() < 0.6 {
			return shapeSolid
		}
		return shapeL
	case 8:
		switch g.rng.Intn(3) {
		case 0:
			return shapeSolid
		case 1:
			return shapeHollow
		default:
			if g.rng.Intn(2) == 0 {
				return shapeU
			}
			return shapeH
		}
	case 10:
		switch g.rng.Intn(4) {
		case 0:
			return shapeE
		case 1:
			return shapeC
		case 2:
			return shapePlus
		default:
			return shapeHollow
		}
	}
	return shapeSolid
}
