package generation

import (
	"fmt"
	"math"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

// goalAttempts is the rejection sampling budget for goal selection
const goalAttempts = 50

// pickStart chooses the mission start: one of the four corners picked
// uniformly, with the exact tile jittered inside a 3-tile window. Any
// walls around the start are cleared so the vehicle never spawns boxed
// in.
func (g *MissionMapGenerator) pickStart(grid *components.TerrainGrid, tileSize int) components.SpawnPosition {
	corner := g.rng.Intn(4)

	var tileX, tileY int
	for attempt := 0; attempt < 10; attempt++ {
		jitterX := g.rng.Intn(3)
		jitterY := g.rng.Intn(3)

		switch corner {
		case 0: // top-left
			tileX, tileY = jitterX, jitterY
		case 1: // top-right
			tileX, tileY = grid.TilesX-1-jitterX, jitterY
		case 2: // bottom-left
			tileX, tileY = jitterX, grid.TilesY-1-jitterY
		case 3: // bottom-right
			tileX, tileY = grid.TilesX-1-jitterX, grid.TilesY-1-jitterY
		}

		if grid.Tiles[tileY][tileX] != components.TerrainWater {
			break
		}
	}

	// A river may have flooded the whole corner window; drain the spawn
	// tile itself so the start is always passable
	if grid.Tiles[tileY][tileX] == components.TerrainWater {
		grid.SetTile(tileX, tileY, components.TerrainDirt)
	}

	g.clearWallsAround(grid, tileX, tileY, 2)

	return components.NewSpawnPosition(tileX, tileY, tileSize)
}

// pickGoal rejection-samples an interior goal tile far enough from the
// start. After the attempt budget is exhausted it falls back to the
// point reflection of the start through the grid center, nudged onto
// the 4-neighborhood if the reflected tile itself is blocked. The
// returned flag reports whether the fallback fired.
//
// The mission type is accepted for goal tuning but placement is
// currently identical for every mission.
func (g *MissionMapGenerator) pickGoal(grid *components.TerrainGrid, start components.SpawnPosition, tileSize int, missionType MissionType) (components.SpawnPosition, bool) {
	minDistance := 0.6 * float64(max(grid.TilesX, grid.TilesY))

	for attempt := 0; attempt < goalAttempts; attempt++ {
		x := 2 + g.rng.Intn(grid.TilesX-4)
		y := 2 + g.rng.Intn(grid.TilesY-4)

		terrain := grid.Tiles[y][x]
		if terrain == components.TerrainWall || terrain == components.TerrainWater {
			continue
		}
		if tileDistance(start.TileX, start.TileY, x, y) < minDistance {
			continue
		}

		g.clearWallsAround(grid, x, y, 2)
		return components.NewSpawnPosition(x, y, tileSize), false
	}

	fmt.Printf("Goal selection for %s mission fell back after %d attempts\n", missionType, goalAttempts)

	// Reflect the start through the grid center
	x := clamp(grid.TilesX-1-start.TileX, 0, grid.TilesX-1)
	y := clamp(grid.TilesY-1-start.TileY, 0, grid.TilesY-1)

	if blocked(grid.Tiles[y][x]) {
		for _, dir := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			nx, ny := x+dir[0], y+dir[1]
			if grid.InBounds(nx, ny) && !blocked(grid.Tiles[ny][nx]) {
				x, y = nx, ny
				break
			}
		}
	}

	// The neighborhood search can come up empty; walls are handled by
	// the clearing below, water is drained outright
	if grid.Tiles[y][x] == components.TerrainWater {
		grid.SetTile(x, y, components.TerrainDirt)
	}

	g.clearWallsAround(grid, x, y, 2)
	return components.NewSpawnPosition(x, y, tileSize), true
}

// blocked reports terrain a spawn point cannot sit on
func blocked(terrain components.TerrainType) bool {
	return terrain == components.TerrainWall || terrain == components.TerrainWater
}

// clearWallsAround converts walls near a spawn back to dirt. Asphalt
// and water are left alone; re-clearing an already clear area is a
// no-op.
func (g *MissionMapGenerator) clearWallsAround(grid *components.TerrainGrid, centerX, centerY, radius int) {
	for y := centerY - radius; y <= centerY+radius; y++ {
		for x := centerX - radius; x <= centerX+radius; x++ {
			if grid.InBounds(x, y) && grid.Tiles[y][x] == components.TerrainWall {
				grid.SetTile(x, y, components.TerrainDirt)
			}
		}
	}
}

// tileDistance is the Euclidean distance between two tiles in tile units
func tileDistance(x0, y0, x1, y1 int) float64 {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	return math.Sqrt(dx*dx + dy*dy)
}

// clamp limits v to the inclusive range [lo, hi]
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
