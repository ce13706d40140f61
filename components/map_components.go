package components

import (
	"image/color"
)

// TerrainGrid stores the battlefield terrain data
type TerrainGrid struct {
	TilesX int
	TilesY int
	Tiles  [][]TerrainType
}

// NewTerrainGrid creates a new grid with the given tile dimensions
func NewTerrainGrid(tilesX, tilesY int) *TerrainGrid {
	g := &TerrainGrid{
		TilesX: tilesX,
		TilesY: tilesY,
		Tiles:  make([][]TerrainType, tilesY),
	}

	// Initialize the tiles
	for y := 0; y < tilesY; y++ {
		g.Tiles[y] = make([]TerrainType, tilesX)
		for x := 0; x < tilesX; x++ {
			// Dirt is the default background terrain
			g.Tiles[y][x] = TerrainDirt
		}
	}

	return g
}

// InBounds returns true if the tile coordinates are inside the grid
func (g *TerrainGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.TilesX && y >= 0 && y < g.TilesY
}

// SetTile sets the terrain at the given tile position
func (g *TerrainGrid) SetTile(x, y int, terrain TerrainType) {
	if g.InBounds(x, y) {
		g.Tiles[y][x] = terrain
	}
}

// TileAt returns the terrain at the given tile position.
// Out-of-bounds positions read as walls so movement code treats the
// battlefield edge as impassable.
func (g *TerrainGrid) TileAt(x, y int) TerrainType {
	if !g.InBounds(x, y) {
		return TerrainWall
	}
	return g.Tiles[y][x]
}

// Building size classes
const (
	BuildingSmall  = "small"  // 4 tiles
	BuildingMedium = "medium" // 6 tiles
	BuildingLarge  = "large"  // 8 tiles
	BuildingXLarge = "xlarge" // 10 tiles
)

// Building shape tags
const (
	ShapeSolid  = "solid"
	ShapeHollow = "hollow"
	ShapeL      = "l-shape"
	ShapeU      = "u-shape"
	ShapeH      = "h-shape"
	ShapeE      = "e-shape"
	ShapeC      = "c-shape"
	ShapePlus   = "plus-shape"
)

// Building is an obstacle structure stamped onto the grid.
// Coordinates and dimensions are in pixels, tile-aligned.
type Building struct {
	X      int
	Y      int
	Width  int
	Height int
	Type   string // size class tag
	Shape  string // shape tag
	Size   int    // footprint tile count: 4, 6, 8 or 10
}

// SpawnPosition is a start or goal location in both tile and pixel space
type SpawnPosition struct {
	TileX int
	TileY int
	X     float64 // pixel center
	Y     float64 // pixel center
}

// NewSpawnPosition creates a spawn position from tile coordinates
func NewSpawnPosition(tileX, tileY, tileSize int) SpawnPosition {
	return SpawnPosition{
		TileX: tileX,
		TileY: tileY,
		X:     float64(tileX*tileSize) + float64(tileSize)/2,
		Y:     float64(tileY*tileSize) + float64(tileSize)/2,
	}
}

// Mine is a hazard tile. OriginalTerrain remembers what the tile held
// before the mine was stamped so the renderer can paint the ground
// under the hazard overlay.
type Mine struct {
	TileX           int
	TileY           int
	X               float64 // pixel center
	Y               float64 // pixel center
	OriginalTerrain TerrainType
}

// MapData is the complete generated mission map handed to the renderer,
// collision code and mission logic. A fresh MapData is built for every
// mission; callers must not keep references into a previous one.
type MapData struct {
	Grid      *TerrainGrid
	Buildings []Building
	Start     SpawnPosition
	Goal      SpawnPosition
	Mines     []Mine
	Width     int // battlefield width in pixels
	Height    int // battlefield height in pixels
	TileSize  int

	// GoalFallback reports that goal selection exhausted its attempt
	// budget and used the reflected fallback position
	GoalFallback bool
}

// TerrainAtPixel returns the terrain under a pixel position, or false
// when the position is outside the battlefield
func (m *MapData) TerrainAtPixel(px, py float64) (TerrainType, bool) {
	if px < 0 || py < 0 {
		return 0, false
	}
	tileX := int(px) / m.TileSize
	tileY := int(py) / m.TileSize
	if !m.Grid.InBounds(tileX, tileY) {
		return 0, false
	}
	return m.Grid.Tiles[tileY][tileX], true
}

// TileDefinition describes the visual appearance of a terrain type
type TileDefinition struct {
	FG color.Color // fill color for the tile
}

// TerrainPalette maps terrain types to their visual representation
type TerrainPalette struct {
	Definitions map[TerrainType]TileDefinition
}

// NewTerrainPalette creates the default terrain color mapping used by the preview
func NewTerrainPalette() *TerrainPalette {
	palette := &TerrainPalette{
		Definitions: make(map[TerrainType]TileDefinition),
	}

	palette.Definitions[TerrainAsphalt] = TileDefinition{FG: color.RGBA{85, 85, 85, 255}}  // Gray
	palette.Definitions[TerrainDirt] = TileDefinition{FG: color.RGBA{155, 118, 83, 255}}   // Brown
	palette.Definitions[TerrainWater] = TileDefinition{FG: color.RGBA{60, 110, 200, 255}}  // Blue
	palette.Definitions[TerrainWall] = TileDefinition{FG: color.RGBA{120, 100, 80, 255}}   // Masonry
	palette.Definitions[TerrainMine] = TileDefinition{FG: color.RGBA{200, 60, 60, 255}}    // Red overlay

	return palette
}

// GetTileDefinition returns the visual definition for a given terrain type
func (p *TerrainPalette) GetTileDefinition(terrain TerrainType) TileDefinition {
	if def, exists := p.Definitions[terrain]; exists {
		return def
	}

	// Magenta for undefined terrain
	return TileDefinition{FG: color.RGBA{255, 0, 255, 255}}
}
