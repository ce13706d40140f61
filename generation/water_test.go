package generation

import (
	"testing"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

func TestWaterNeverFloodsRoads(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := NewMissionMapGenerator()
		g.SetSeed(seed)

		grid := components.NewTerrainGrid(25, 17)
		g.placeRoads(grid)

		// Remember where the asphalt ended up
		asphalt := make(map[[2]int]bool)
		for y := 0; y < grid.TilesY; y++ {
			for x := 0; x < grid.TilesX; x++ {
				if grid.Tiles[y][x] == components.TerrainAsphalt {
					asphalt[[2]int{x, y}] = true
				}
			}
		}

		g.placeLakes(grid)
		g.placeRivers(grid)

		for pos := range asphalt {
			if grid.Tiles[pos[1]][pos[0]] != components.TerrainAsphalt {
				t.Fatalf("seed %d: road tile (%d, %d) overwritten by water", seed, pos[0], pos[1])
			}
		}
	}
}

func TestPlaceLakesStampsWater(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := NewMissionMapGenerator()
		g.SetSeed(seed)

		grid := components.NewTerrainGrid(25, 17)
		g.placeLakes(grid)

		water := 0
		for y := 0; y < grid.TilesY; y++ {
			for x := 0; x < grid.TilesX; x++ {
				if grid.Tiles[y][x] == components.TerrainWater {
					water++
				}
			}
		}

		// Even the smallest lake (3x3 radii) floods a fair number of cells
		if water < 9 {
			t.Errorf("seed %d: only %d water tiles after lake placement", seed, water)
		}
	}
}

func TestPlaceLakesSkipsTinyGrids(t *testing.T) {
	g := NewMissionMapGenerator()
	g.SetSeed(1)

	grid := components.NewTerrainGrid(8, 8)
	g.placeLakes(grid)

	for y := 0; y < grid.TilesY; y++ {
		for x := 0; x < grid.TilesX; x++ {
			if grid.Tiles[y][x] == components.TerrainWater {
				t.Fatalf("lake stamped on a grid too small to hold one")
			}
		}
	}
}

func TestPlaceRiverStaysInBoundsAndStampsWater(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := NewMissionMapGenerator()
		g.SetSeed(seed)

		grid := components.NewTerrainGrid(25, 17)
		g.placeRiver(grid)

		water := 0
		for y := 0; y < grid.TilesY; y++ {
			for x := 0; x < grid.TilesX; x++ {
				if grid.Tiles[y][x] == components.TerrainWater {
					water++
				}
			}
		}

		// The walk starts on an edge, so at least the first stamp lands
		if water == 0 {
			t.Errorf("seed %d: river left no water on the grid", seed)
		}
	}
}
