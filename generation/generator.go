package generation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
)

// MissionType identifies the objective flavor of a mission
type MissionType string

const (
	MissionDelivery MissionType = "delivery" // Bring the cargo to the goal
	MissionRescue   MissionType = "rescue"   // Pick up the survivor at the goal
	MissionAssault  MissionType = "assault"  // Destroy the target at the goal
)

// MissionMapGenerator handles procedural generation of mission maps
type MissionMapGenerator struct {
	rng *rand.Rand
}

// NewMissionMapGenerator creates a new mission map generator
func NewMissionMapGenerator() *MissionMapGenerator {
	return &MissionMapGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible maps
func (g *MissionMapGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate builds a complete mission map for the given battlefield
// dimensions. The pipeline runs in a fixed order on one grid instance:
// roads, water, buildings, spawn points, the connectivity corridor and
// finally mines. Every call returns a fresh MapData; nothing is shared
// with previous missions.
func (g *MissionMapGenerator) Generate(width, height, tileSize int, missionType MissionType) *components.MapData {
	tilesX := width / tileSize
	tilesY := height / tileSize
	grid := components.NewTerrainGrid(tilesX, tilesY)

	g.placeRoads(grid)
	g.placeLakes(grid)
	g.placeRivers(grid)

	buildings := g.placeBuildings(grid, tileSize)

	start := g.pickStart(grid, tileSize)
	goal, fellBack := g.pickGoal(grid, start, tileSize, missionType)

	g.carveCorridor(grid, start, goal)

	mines := g.placeMines(grid, start, goal, tileSize)

	fmt.Printf("Generated %s mission map: %d buildings, %d mines, start (%d, %d), goal (%d, %d)\n",
		missionType, len(buildings), len(mines), start.TileX, start.TileY, goal.TileX, goal.TileY)

	return &components.MapData{
		Grid:         grid,
		Buildings:    buildings,
		Start:        start,
		Goal:         goal,
		Mines:        mines,
		Width:        width,
		Height:       height,
		TileSize:     tileSize,
		GoalFallback: fellBack,
	}
}
