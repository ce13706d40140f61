package generation

import (
	"fmt"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

const (
	// mineSafetyRadius is the minimum tile distance a mine keeps from
	// both the start and the goal
	mineSafetyRadius = 3

	// mineAttempts is the rejection sampling budget per mine
	mineAttempts = 50
)

// placeMines stamps 1-2 mines onto interior tiles at a safe distance
// from start and goal. Each mine remembers the terrain it replaced so
// the renderer can paint the ground under the hazard overlay. A mine
// whose attempt budget runs out is simply omitted.
func (g *MissionMapGenerator) placeMines(grid *components.TerrainGrid, start, goal components.SpawnPosition, tileSize int) []components.Mine {
	numMines := 1 + g.rng.Intn(2)
	mines := make([]components.Mine, 0, numMines)

	for i := 0; i < numMines; i++ {
		placed := false

		for attempt := 0; attempt < mineAttempts; attempt++ {
			x := 1 + g.rng.Intn(grid.TilesX-2)
			y := 1 + g.rng.Intn(grid.TilesY-2)

			terrain := grid.Tiles[y][x]
			if terrain == components.TerrainWall || terrain == components.TerrainWater ||
				terrain == components.TerrainMine {
				continue
			}
			if tileDistance(start.TileX, start.TileY, x, y) < mineSafetyRadius ||
				tileDistance(goal.TileX, goal.TileY, x, y) < mineSafetyRadius {
				continue
			}

			mines = append(mines, components.Mine{
				TileX:           x,
				TileY:           y,
				X:               float64(x*tileSize) + float64(tileSize)/2,
				Y:               float64(y*tileSize) + float64(tileSize)/2,
				OriginalTerrain: terrain,
			})
			grid.SetTile(x, y, components.TerrainMine)
			placed = true
			break
		}

		if !placed {
			fmt.Printf("Skipped mine %d: no valid position after %d attempts\n", i+1, mineAttempts)
		}
	}

	return mines
}
