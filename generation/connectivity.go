package generation

import (
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

// carveCorridor clears an L-shaped corridor of walls between start and
// goal: along the row at the start's Y, then along the column at the
// goal's X. Asphalt and water on the corridor are left unchanged, so
// this is best-effort de-obstruction rather than a verified path.
func (g *MissionMapGenerator) carveCorridor(grid *components.TerrainGrid, start, goal components.SpawnPosition) {
	x0, x1 := min(start.TileX, goal.TileX), max(start.TileX, goal.TileX)
	for x := x0; x <= x1; x++ {
		if grid.TileAt(x, start.TileY) == components.TerrainWall {
			grid.SetTile(x, start.TileY, components.TerrainDirt)
		}
	}

	y0, y1 := min(start.TileY, goal.TileY), max(start.TileY, goal.TileY)
	for y := y0; y <= y1; y++ {
		if grid.TileAt(goal.TileX, y) == components.TerrainWall {
			grid.SetTile(goal.TileX, y, components.TerrainDirt)
		}
	}
}

// Reachable reports whether the goal can be reached from the start over
// non-wall, non-water tiles, using an orthogonal flood fill. The
// corridor carved during generation ignores water, so a generated map
// is not guaranteed reachable; this check is a diagnostic for tests and
// the preview HUD, and generation never regenerates on its result.
func Reachable(grid *components.TerrainGrid, start, goal components.SpawnPosition) bool {
	if !grid.InBounds(start.TileX, start.TileY) || !grid.InBounds(goal.TileX, goal.TileY) {
		return false
	}

	visited := make([][]bool, grid.TilesY)
	for y := range visited {
		visited[y] = make([]bool, grid.TilesX)
	}

	queue := [][2]int{{start.TileX, start.TileY}}
	visited[start.TileY][start.TileX] = true

	directions := [][2]int{
		{0, -1}, // North
		{1, 0},  // East
		{0, 1},  // South
		{-1, 0}, // West
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current[0] == goal.TileX && current[1] == goal.TileY {
			return true
		}

		for _, dir := range directions {
			nx, ny := current[0]+dir[0], current[1]+dir[1]
			if !grid.InBounds(nx, ny) || visited[ny][nx] {
				continue
			}
			terrain := grid.Tiles[ny][nx]
			if terrain == components.TerrainWall || terrain == components.TerrainWater {
				continue
			}
			visited[ny][nx] = true
			queue = append(queue, [2]int{nx, ny})
		}
	}

	return false
}
