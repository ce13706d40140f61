package generation

import (
	"testing"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

func TestCarveCorridorClearsWallsOnly(t *testing.T) {
	g := NewMissionMapGenerator()
	g.SetSeed(1)

	grid := components.NewTerrainGrid(25, 17)

	// A wall bar across the start row and the goal column, with one
	// water tile and one asphalt tile in the way
	for x := 5; x <= 15; x++ {
		grid.SetTile(x, 2, components.TerrainWall)
	}
	for y := 2; y <= 12; y++ {
		grid.SetTile(20, y, components.TerrainWall)
	}
	grid.SetTile(10, 2, components.TerrainWater)
	grid.SetTile(20, 8, components.TerrainAsphalt)

	start := components.NewSpawnPosition(2, 2, 32)
	goal := components.NewSpawnPosition(20, 12, 32)

	g.carveCorridor(grid, start, goal)

	// Walls along the start row between start.X and goal.X are gone
	for x := 5; x <= 15; x++ {
		if x == 10 {
			continue
		}
		if grid.Tiles[2][x] != components.TerrainDirt {
			t.Errorf("wall at (%d, 2) not carved", x)
		}
	}

	// Walls along the goal column between start.Y and goal.Y are gone
	for y := 2; y <= 12; y++ {
		if y == 8 {
			continue
		}
		if grid.Tiles[y][20] != components.TerrainDirt {
			t.Errorf("wall at (20, %d) not carved", y)
		}
	}

	// Water and asphalt on the corridor stay untouched
	if grid.Tiles[2][10] != components.TerrainWater {
		t.Error("corridor must not drain water")
	}
	if grid.Tiles[8][20] != components.TerrainAsphalt {
		t.Error("corridor must not touch asphalt")
	}
}

func TestReachable(t *testing.T) {
	cases := []struct {
		name  string
		setup func(grid *components.TerrainGrid)
		want  bool
	}{
		{
			name:  "open_grid",
			setup: func(grid *components.TerrainGrid) {},
			want:  true,
		},
		{
			name: "wall_bisection",
			setup: func(grid *components.TerrainGrid) {
				for y := 0; y < grid.TilesY; y++ {
					grid.SetTile(12, y, components.TerrainWall)
				}
			},
			want: false,
		},
		{
			name: "water_bisection",
			setup: func(grid *components.TerrainGrid) {
				for y := 0; y < grid.TilesY; y++ {
					grid.SetTile(12, y, components.TerrainWater)
				}
			},
			want: false,
		},
		{
			name: "bisection_with_gap",
			setup: func(grid *components.TerrainGrid) {
				for y := 0; y < grid.TilesY; y++ {
					grid.SetTile(12, y, components.TerrainWall)
				}
				grid.SetTile(12, 8, components.TerrainDirt)
			},
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid := components.NewTerrainGrid(25, 17)
			c.setup(grid)

			start := components.NewSpawnPosition(1, 1, 32)
			goal := components.NewSpawnPosition(23, 15, 32)

			if got := Reachable(grid, start, goal); got != c.want {
				t.Errorf("Reachable = %v, want %v", got, c.want)
			}
		})
	}
}
