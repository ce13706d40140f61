package generation

import (
	"testing"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

func TestPlaceMinesOnAsphaltRemembersTerrain(t *testing.T) {
	g := NewMissionMapGenerator()
	g.SetSeed(1)

	// An all-asphalt grid forces every mine onto asphalt
	grid := components.NewTerrainGrid(25, 17)
	for y := 0; y < grid.TilesY; y++ {
		for x := 0; x < grid.TilesX; x++ {
			grid.SetTile(x, y, components.TerrainAsphalt)
		}
	}

	start := components.NewSpawnPosition(0, 0, 32)
	goal := components.NewSpawnPosition(24, 16, 32)

	mines := g.placeMines(grid, start, goal, 32)

	if len(mines) == 0 {
		t.Fatal("expected at least one mine on an open grid")
	}

	for i, mine := range mines {
		if mine.OriginalTerrain != components.TerrainAsphalt {
			t.Errorf("mine %d original terrain = %s, want asphalt", i, mine.OriginalTerrain)
		}
		if grid.Tiles[mine.TileY][mine.TileX] != components.TerrainMine {
			t.Errorf("mine %d tile not stamped as mine", i)
		}
	}
}

func TestPlaceMinesOmittedWhenNowhereIsSafe(t *testing.T) {
	g := NewMissionMapGenerator()
	g.SetSeed(1)

	// Water everywhere: every attempt is rejected and the mines are
	// omitted rather than forced
	grid := components.NewTerrainGrid(25, 17)
	for y := 0; y < grid.TilesY; y++ {
		for x := 0; x < grid.TilesX; x++ {
			grid.SetTile(x, y, components.TerrainWater)
		}
	}

	start := components.NewSpawnPosition(0, 0, 32)
	goal := components.NewSpawnPosition(24, 16, 32)

	mines := g.placeMines(grid, start, goal, 32)
	if len(mines) != 0 {
		t.Errorf("expected no mines on a flooded grid, got %d", len(mines))
	}
}

func TestPlaceMinesSafetyRadius(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := NewMissionMapGenerator()
		g.SetSeed(seed)

		grid := components.NewTerrainGrid(25, 17)
		start := components.NewSpawnPosition(1, 1, 32)
		goal := components.NewSpawnPosition(23, 15, 32)

		mines := g.placeMines(grid, start, goal, 32)

		if len(mines) < 1 || len(mines) > 2 {
			t.Errorf("seed %d: %d mines placed, expected 1-2", seed, len(mines))
		}
		for i, mine := range mines {
			if tileDistance(start.TileX, start.TileY, mine.TileX, mine.TileY) < mineSafetyRadius ||
				tileDistance(goal.TileX, goal.TileY, mine.TileX, mine.TileY) < mineSafetyRadius {
				t.Errorf("seed %d: mine %d violates the safety radius", seed, i)
			}
		}
	}
}
