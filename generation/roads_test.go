package generation

import (
	"testing"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

func TestPlaceRoadsAlwaysProducesARoad(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := NewMissionMapGenerator()
		g.SetSeed(seed)

		grid := components.NewTerrainGrid(25, 17)
		g.placeRoads(grid)

		horizontal, vertical := detectRoads(grid)
		if len(horizontal)+len(vertical) == 0 {
			t.Errorf("seed %d: no road detected", seed)
		}
		if len(horizontal) > 1 || len(vertical) > 1 {
			t.Errorf("seed %d: detected %d horizontal and %d vertical roads, expected at most 1 each",
				seed, len(horizontal), len(vertical))
		}

		// A horizontal road covers both of its rows across the full grid
		for _, roadY := range horizontal {
			for x := 0; x < grid.TilesX; x++ {
				if grid.Tiles[roadY][x] != components.TerrainAsphalt ||
					grid.Tiles[roadY+1][x] != components.TerrainAsphalt {
					t.Fatalf("seed %d: horizontal road at row %d not fully asphalt at x=%d", seed, roadY, x)
				}
			}
			// Road offset stays inside the middle 30%-70% band
			if roadY < 5 || roadY > 11 {
				t.Errorf("seed %d: horizontal road row %d outside the middle band", seed, roadY)
			}
		}

		for _, roadX := range vertical {
			for y := 0; y < grid.TilesY; y++ {
				if grid.Tiles[y][roadX] != components.TerrainAsphalt ||
					grid.Tiles[y][roadX+1] != components.TerrainAsphalt {
					t.Fatalf("seed %d: vertical road at column %d not fully asphalt at y=%d", seed, roadX, y)
				}
			}
			if roadX < 7 || roadX > 17 {
				t.Errorf("seed %d: vertical road column %d outside the middle band", seed, roadX)
			}
		}
	}
}

func TestDetectRoadsIgnoresPartialAsphalt(t *testing.T) {
	grid := components.NewTerrainGrid(25, 17)

	// A patch of asphalt that does not span the grid is not a road
	for x := 3; x < 12; x++ {
		grid.SetTile(x, 6, components.TerrainAsphalt)
		grid.SetTile(x, 7, components.TerrainAsphalt)
	}

	horizontal, vertical := detectRoads(grid)
	if len(horizontal) != 0 || len(vertical) != 0 {
		t.Errorf("partial asphalt detected as road: %v horizontal, %v vertical", horizontal, vertical)
	}
}
