package components

// TerrainType classifies a battlefield tile by its passability and speed class
type TerrainType int

// Terrain types
const (
	TerrainAsphalt TerrainType = iota
	TerrainDirt
	TerrainWater
	TerrainWall
	TerrainMine
)

// String returns the terrain name used in logs and debug dumps
func (t TerrainType) String() string {
	switch t {
	case TerrainAsphalt:
		return "asphalt"
	case TerrainDirt:
		return "dirt"
	case TerrainWater:
		return "water"
	case TerrainWall:
		return "wall"
	case TerrainMine:
		return "mine"
	}
	return "unknown"
}

// IsBlocking returns true if vehicles cannot enter this terrain
func (t TerrainType) IsBlocking() bool {
	return t == TerrainWall
}

// SpeedModifier returns the speed multiplier applied to vehicles on this terrain.
// Movement code treats asphalt as full speed and water as the slowest passable tile.
func (t TerrainType) SpeedModifier() float64 {
	switch t {
	case TerrainAsphalt:
		return 1.0
	case TerrainDirt:
		return 0.7
	case TerrainWater:
		return 0.4
	case TerrainMine:
		return 0.7 // mines sit on passable ground; the hazard is handled elsewhere
	}
	return 0
}
