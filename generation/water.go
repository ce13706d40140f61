package generation

import (
	"math"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

// placeLakes stamps 1-2 elliptical lakes onto the grid. The edge of
// each lake is roughened with per-cell noise so lakes read as organic
// rather than stamped ellipses. Asphalt keeps right of way: road tiles
// are never flooded.
func (g *MissionMapGenerator) placeLakes(grid *components.TerrainGrid) {
	// Lakes need a 5-tile margin on every side
	if grid.TilesX <= 10 || grid.TilesY <= 10 {
		return
	}

	numLakes := 1 + g.rng.Intn(2)
	for i := 0; i < numLakes; i++ {
		centerX := 5 + g.rng.Intn(grid.TilesX-10)
		centerY := 5 + g.rng.Intn(grid.TilesY-10)
		radiusX := 3 + g.rng.Intn(3)
		radiusY := 3 + g.rng.Intn(3)

		for y := centerY - radiusY; y <= centerY+radiusY; y++ {
			for x := centerX - radiusX; x <= centerX+radiusX; x++ {
				if !grid.InBounds(x, y) {
					continue
				}
				if grid.Tiles[y][x] == components.TerrainAsphalt {
					continue
				}

				// Normalized elliptical distance from the lake center
				dx := float64(x-centerX) / float64(radiusX)
				dy := float64(y-centerY) / float64(radiusY)
				distance := math.Sqrt(dx*dx + dy*dy)

				if distance <= 1+0.2*g.rng.Float64() {
					grid.SetTile(x, y, components.TerrainWater)
				}
			}
		}
	}
}

// placeRivers stamps 1-2 rivers that walk in from a battlefield edge
func (g *MissionMapGenerator) placeRivers(grid *components.TerrainGrid) {
	numRivers := 1 + g.rng.Intn(2)
	for i := 0; i < numRivers; i++ {
		g.placeRiver(grid)
	}
}

// placeRiver walks a single river across the grid. Each step stamps a
// width x width square of water centered on the current position, and
// every third step the river may meander 90 degrees. The walk stops
// early when it leaves the grid.
func (g *MissionMapGenerator) placeRiver(grid *components.TerrainGrid) {
	maxLength := min(grid.TilesX, grid.TilesY)
	if maxLength < 10 {
		return
	}

	width := 2 + g.rng.Intn(2)
	length := 10 + g.rng.Intn(maxLength-10+1)

	// Pick a starting edge and head perpendicular into the grid
	var x, y, dirX, dirY int
	switch g.rng.Intn(4) {
	case 0: // top
		x, y = g.rng.Intn(grid.TilesX), 0
		dirX, dirY = 0, 1
	case 1: // right
		x, y = grid.TilesX-1, g.rng.Intn(grid.TilesY)
		dirX, dirY = -1, 0
	case 2: // bottom
		x, y = g.rng.Intn(grid.TilesX), grid.TilesY-1
		dirX, dirY = 0, -1
	case 3: // left
		x, y = 0, g.rng.Intn(grid.TilesY)
		dirX, dirY = 1, 0
	}

	for step := 0; step < length; step++ {
		if !grid.InBounds(x, y) {
			break
		}

		// Stamp the river bed around the current position
		half := width / 2
		for offsetY := -half; offsetY < width-half; offsetY++ {
			for offsetX := -half; offsetX < width-half; offsetX++ {
				tileX, tileY := x+offsetX, y+offsetY
				if !grid.InBounds(tileX, tileY) {
					continue
				}
				if grid.Tiles[tileY][tileX] == components.TerrainAsphalt {
					continue
				}
				grid.SetTile(tileX, tileY, components.TerrainWater)
			}
		}

		// Every third step the river may turn 90 degrees, never reversing:
		// the active axis of travel is swapped and the new sign is random
		if step%3 == 2 && g.rng.Float64() < 0.6 {
			if dirX != 0 {
				dirX = 0
				dirY = 1
				if g.rng.Intn(2) == 0 {
					dirY = -1
				}
			} else {
				dirY = 0
				dirX = 1
				if g.rng.Intn(2) == 0 {
					dirX = -1
				}
			}
		}

		x += dirX
		y += dirY
	}
}
