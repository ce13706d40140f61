package generation

import (
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

const cityBlockSize = 10 // candidate block side next to a road intersection, in tiles

// placeBuildings populates the building list and stamps wall footprints
// onto the grid, respecting roads and water. Placement is driven by the
// road layout: blocks form around intersections, rows of buildings
// front standalone roads, and a coarse grid is used when no roads were
// detected at all.
func (g *MissionMapGenerator) placeBuildings(grid *components.TerrainGrid, tileSize int) []components.Building {
	horizontalRoads, verticalRoads := detectRoads(grid)

	buildings := make([]components.Building, 0, 16)

	if len(horizontalRoads) == 0 && len(verticalRoads) == 0 {
		g.placeFallbackGrid(grid, tileSize, &buildings)
	} else {
		g.placeCityBlocks(grid, tileSize, horizontalRoads, verticalRoads, &buildings)
	}

	// A few extra buildings anywhere space allows, for variety outside
	// the city blocks
	for i := 0; i < 3; i++ {
		size := buildingSizes[g.rng.Intn(len(buildingSizes))]
		width, height := g.footprintFor(size)
		if grid.TilesX <= width || grid.TilesY <= height {
			continue
		}
		x := g.rng.Intn(grid.TilesX - width)
		y := g.rng.Intn(grid.TilesY - height)
		if g.canPlaceBuilding(grid, x, y, width, height) {
			g.stampBuilding(grid, tileSize, x, y, width, height, &buildings)
		}
	}

	return buildings
}

// buildingSizes are the allowed footprint tile counts
var buildingSizes = []int{4, 6, 8, 10}

// footprintFor returns a randomly oriented footprint for a tile count:
// every building is 2 tiles on one axis and size/2 on the other
func (g *MissionMapGenerator) footprintFor(size int) (width, height int) {
	width, height = size/2, 2
	if g.rng.Intn(2) == 0 {
		width, height = height, width
	}
	return width, height
}

// detectRoads finds the full-span 2-tile-wide roads by scanning for
// row pairs that are asphalt across the entire grid, and analogous
// column pairs. Roads span the whole grid and nothing later overwrites
// asphalt, so a partial match never indicates a road.
func detectRoads(grid *components.TerrainGrid) (horizontal, vertical []int) {
	for y := 0; y < grid.TilesY-1; y++ {
		full := true
		for x := 0; x < grid.TilesX; x++ {
			if grid.Tiles[y][x] != components.TerrainAsphalt ||
				grid.Tiles[y+1][x] != components.TerrainAsphalt {
				full = false
				break
			}
		}
		if full {
			horizontal = append(horizontal, y)
			y++ // the second road row can't start another road
		}
	}

	for x := 0; x < grid.TilesX-1; x++ {
		full := true
		for y := 0; y < grid.TilesY; y++ {
			if grid.Tiles[y][x] != components.TerrainAsphalt ||
				grid.Tiles[y][x+1] != components.TerrainAsphalt {
				full = false
				break
			}
		}
		if full {
			vertical = append(vertical, x)
			x++
		}
	}

	return horizontal, vertical
}

// placeCityBlocks tiles buildable city blocks around every road
// intersection. When the road network is sparse (fewer than 4
// intersections), each road additionally gets rows of buildings
// fronting it directly.
func (g *MissionMapGenerator) placeCityBlocks(grid *components.TerrainGrid, tileSize int, horizontalRoads, verticalRoads []int, buildings *[]components.Building) {
	intersections := 0

	for _, roadY := range horizontalRoads {
		for _, roadX := range verticalRoads {
			intersections++

			// Four block corners around the intersection, each 2 tiles
			// clear of the 2-wide roads
			blockXs := [2]int{roadX - 2 - cityBlockSize, roadX + 4}
			blockYs := [2]int{roadY - 2 - cityBlockSize, roadY + 4}

			for _, blockX := range blockXs {
				for _, blockY := range blockYs {
					g.fillCityBlock(grid, tileSize, blockX, blockY, buildings)
				}
			}
		}
	}

	if intersections < 4 {
		for _, roadY := range horizontalRoads {
			g.placeRowAlongRoad(grid, tileSize, roadY-2, buildings) // flush above
			g.placeRowAlongRoad(grid, tileSize, roadY+2, buildings) // flush below
		}
		for _, roadX := range verticalRoads {
			g.placeColumnAlongRoad(grid, tileSize, roadX-2, buildings) // flush left
			g.placeColumnAlongRoad(grid, tileSize, roadX+2, buildings) // flush right
		}
	}
}

// fillCityBlock subdivides a block into building footprints. A fully
// clear block is packed row by row on a 3-tile pitch; a partially
// blocked block falls back to a couple of smaller buildings at random
// positions inside it.
func (g *MissionMapGenerator) fillCityBlock(grid *components.TerrainGrid, tileSize, blockX, blockY int, buildings *[]components.Building) {
	if blockX < 0 || blockY < 0 ||
		blockX+cityBlockSize > grid.TilesX || blockY+cityBlockSize > grid.TilesY {
		return
	}

	if g.isBlockClear(grid, blockX, blockY) {
		for y := blockY; y+2 <= blockY+cityBlockSize; y += 3 {
			x := blockX
			for x < blockX+cityBlockSize {
				width := g.pickFittingWidth(blockX + cityBlockSize - x)
				if width == 0 {
					break
				}
				if g.canPlaceBuilding(grid, x, y, width, 2) {
					g.stampBuilding(grid, tileSize, x, y, width, 2, buildings)
				}
				x += width + 1
			}
		}
		return
	}

	// Water or leftover asphalt inside the block: place up to 2 smaller
	// buildings wherever they fit
	for i := 0; i < 2; i++ {
		width := 2 + g.rng.Intn(2) // 4- or 6-tile footprint
		x := blockX + g.rng.Intn(cityBlockSize-width+1)
		y := blockY + g.rng.Intn(cityBlockSize-2+1)
		if g.canPlaceBuilding(grid, x, y, width, 2) {
			g.stampBuilding(grid, tileSize, x, y, width, 2, buildings)
		}
	}
}

// isBlockClear returns true if the whole block rectangle is plain dirt
func (g *MissionMapGenerator) isBlockClear(grid *components.TerrainGrid, blockX, blockY int) bool {
	for y := blockY; y < blockY+cityBlockSize; y++ {
		for x := blockX; x < blockX+cityBlockSize; x++ {
			if grid.Tiles[y][x] != components.TerrainDirt {
				return false
			}
		}
	}
	return true
}

// pickFittingWidth picks a random building width (2-5 tiles, always 2
// tiles tall) no wider than the remaining space; 0 when nothing fits
func (g *MissionMapGenerator) pickFittingWidth(remaining int) int {
	maxWidth := min(remaining, 5)
	if maxWidth < 2 {
		return 0
	}
	return 2 + g.rng.Intn(maxWidth-1)
}

// placeRowAlongRoad lays a row of 2-tile-tall buildings whose bottom or
// top edge sits flush against a horizontal road, with randomized gaps
func (g *MissionMapGenerator) placeRowAlongRoad(grid *components.TerrainGrid, tileSize, rowY int, buildings *[]components.Building) {
	if rowY < 0 || rowY+2 > grid.TilesY {
		return
	}

	x := g.rng.Intn(3)
	for x < grid.TilesX-1 {
		width := g.pickFittingWidth(grid.TilesX - x)
		if width == 0 {
			break
		}
		if g.canPlaceBuilding(grid, x, rowY, width, 2) {
			g.stampBuilding(grid, tileSize, x, rowY, width, 2, buildings)
		}
		x += width + 1 + g.rng.Intn(2)
	}
}

// placeColumnAlongRoad lays a column of 2-tile-wide buildings flush
// against a vertical road, with randomized gaps
func (g *MissionMapGenerator) placeColumnAlongRoad(grid *components.TerrainGrid, tileSize, colX int, buildings *[]components.Building) {
	if colX < 0 || colX+2 > grid.TilesX {
		return
	}

	y := g.rng.Intn(3)
	for y < grid.TilesY-1 {
		height := g.pickFittingWidth(grid.TilesY - y)
		if height == 0 {
			break
		}
		if g.canPlaceBuilding(grid, colX, y, 2, height) {
			g.stampBuilding(grid, tileSize, colX, y, 2, height, buildings)
		}
		y += height + 1 + g.rng.Intn(2)
	}
}

// placeFallbackGrid scatters buildings on a coarse 4-tile grid when no
// roads were detected, then tops up sparse results with random 2x2
// placements until at least 10 buildings exist or the attempt budget
// runs out.
func (g *MissionMapGenerator) placeFallbackGrid(grid *components.TerrainGrid, tileSize int, buildings *[]components.Building) {
	for y := 2; y+2 <= grid.TilesY-2; y += 4 {
		for x := 2; x+2 <= grid.TilesX-2; x += 4 {
			if g.rng.Float64() >= 0.7 {
				continue
			}

			width, height := 2, 2
			if g.rng.Intn(2) == 0 {
				// 6-tile footprint, randomly oriented
				if g.rng.Intn(2) == 0 {
					width = 3
				} else {
					height = 3
				}
			}

			if g.canPlaceBuilding(grid, x, y, width, height) {
				g.stampBuilding(grid, tileSize, x, y, width, height, buildings)
			}
		}
	}

	if len(*buildings) < 10 {
		attempts := (10 - len(*buildings)) * 3
		for attempt := 0; attempt < attempts && len(*buildings) < 10; attempt++ {
			x := g.rng.Intn(grid.TilesX - 2)
			y := g.rng.Intn(grid.TilesY - 2)
			if g.canPlaceBuilding(grid, x, y, 2, 2) {
				g.stampBuilding(grid, tileSize, x, y, 2, 2, buildings)
			}
		}
	}
}

// canPlaceBuilding checks that a footprint lies in bounds, is pure
// dirt, and keeps a 2-tile buffer free of walls and asphalt. The one
// exception: asphalt directly against a footprint edge is allowed when
// the building fronts a full 2-tile-wide road run flush along that
// whole side.
func (g *MissionMapGenerator) canPlaceBuilding(grid *components.TerrainGrid, x, y, width, height int) bool {
	if x < 0 || y < 0 || x+width > grid.TilesX || y+height > grid.TilesY {
		return false
	}

	// The footprint itself must be pure dirt
	for tileY := y; tileY < y+height; tileY++ {
		for tileX := x; tileX < x+width; tileX++ {
			if grid.Tiles[tileY][tileX] != components.TerrainDirt {
				return false
			}
		}
	}

	// Any wall in the 2-tile buffer blocks placement. Buffer cells
	// outside the grid are ignored so buildings can hug the map edge.
	for tileY := y - 2; tileY < y+height+2; tileY++ {
		for tileX := x - 2; tileX < x+width+2; tileX++ {
			if tileX >= x && tileX < x+width && tileY >= y && tileY < y+height {
				continue
			}
			if !grid.InBounds(tileX, tileY) {
				continue
			}
			if grid.Tiles[tileY][tileX] == components.TerrainWall {
				return false
			}
		}
	}

	// Asphalt in the buffer is checked side by side: the near line is
	// the cells directly against the footprint edge, the far line one
	// tile further out
	if !sideFrontsRoad(grid, x, y-1, x+width-1, y-1, x, y-2, x+width-1, y-2) { // top
		return false
	}
	if !sideFrontsRoad(grid, x, y+height, x+width-1, y+height, x, y+height+1, x+width-1, y+height+1) { // bottom
		return false
	}
	if !sideFrontsRoad(grid, x-1, y, x-1, y+height-1, x-2, y, x-2, y+height-1) { // left
		return false
	}
	if !sideFrontsRoad(grid, x+width, y, x+width, y+height-1, x+width+1, y, x+width+1, y+height-1) { // right
		return false
	}

	return true
}

// sideFrontsRoad validates asphalt along one footprint side. Either the
// two buffer lines hold no asphalt at all, or the near line is entirely
// asphalt together with the far line: the building then fronts a clean
// 2-tile-wide road run. Ragged or offset asphalt rejects the placement.
func sideFrontsRoad(grid *components.TerrainGrid, nearX0, nearY0, nearX1, nearY1, farX0, farY0, farX1, farY1 int) bool {
	nearAny, nearAll := asphaltSpan(grid, nearX0, nearY0, nearX1, nearY1)
	farAny, farAll := asphaltSpan(grid, farX0, farY0, farX1, farY1)

	if nearAny {
		return nearAll && farAll
	}
	return !farAny
}

// asphaltSpan reports whether any and all in-bounds cells of an
// inclusive line span are asphalt. A span fully outside the grid
// counts as neither.
func asphaltSpan(grid *components.TerrainGrid, x0, y0, x1, y1 int) (anyAsphalt, allAsphalt bool) {
	allAsphalt = true
	cells := 0

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !grid.InBounds(x, y) {
				allAsphalt = false
				continue
			}
			cells++
			if grid.Tiles[y][x] == components.TerrainAsphalt {
				anyAsphalt = true
			} else {
				allAsphalt = false
			}
		}
	}

	if cells == 0 {
		allAsphalt = false
	}
	return anyAsphalt, allAsphalt
}

// stampBuilding selects a shape for the footprint, stamps its wall
// cells onto the grid and records the building in pixel space
func (g *MissionMapGenerator) stampBuilding(grid *components.TerrainGrid, tileSize, x, y, width, height int, buildings *[]components.Building) {
	size := width * height
	variant := g.pickShape(size)

	for tileY := 0; tileY < height; tileY++ {
		for tileX := 0; tileX < width; tileX++ {
			if variant.occupied(tileX, tileY, width, height) {
				grid.SetTile(x+tileX, y+tileY, components.TerrainWall)
			}
		}
	}

	*buildings = append(*buildings, components.Building{
		X:      x * tileSize,
		Y:      y * tileSize,
		Width:  width * tileSize,
		Height: height * tileSize,
		Type:   sizeClass(size),
		Shape:  variant.tag,
		Size:   size,
	})
}

// sizeClass maps a footprint tile count to its size class tag
func sizeClass(size int) string {
	switch {
	case size <= 4:
		return components.BuildingSmall
	case size <= 6:
		return components.BuildingMedium
	case size <= 8:
		return components.BuildingLarge
	}
	return components.BuildingXLarge
}
