package generation

import (
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

// placeRoads stamps up to one horizontal and one vertical road onto the
// grid. A horizontal road appears with probability 0.7; the vertical
// road is forced when the horizontal roll fails, so at least one road
// always exists. Each road spans the whole grid, is two tiles wide and
// overwrites whatever terrain was there.
func (g *MissionMapGenerator) placeRoads(grid *components.TerrainGrid) {
	hasHorizontal := g.rng.Float64() < 0.7
	hasVertical := !hasHorizontal || g.rng.Float64() < 0.5

	if hasHorizontal {
		row := g.middleBandOffset(grid.TilesY)
		for x := 0; x < grid.TilesX; x++ {
			grid.SetTile(x, row, components.TerrainAsphalt)
			grid.SetTile(x, row+1, components.TerrainAsphalt)
		}
	}

	if hasVertical {
		col := g.middleBandOffset(grid.TilesX)
		for y := 0; y < grid.TilesY; y++ {
			grid.SetTile(col, y, components.TerrainAsphalt)
			grid.SetTile(col+1, y, components.TerrainAsphalt)
		}
	}
}

// middleBandOffset picks a random offset within the middle 30%-70%
// band of an axis, keeping roads away from the battlefield edges
func (g *MissionMapGenerator) middleBandOffset(axis int) int {
	return int(float64(axis) * (0.3 + 0.4*g.rng.Float64()))
}
