package config

// Battlefield layout configuration
const (
	// Tile size in pixels
	TileSize = 32

	// Battlefield dimensions in pixels
	FieldWidth  = 800
	FieldHeight = 544

	// Battlefield dimensions in tiles (derived from pixel dimensions)
	TilesX = FieldWidth / TileSize  // 25
	TilesY = FieldHeight / TileSize // 17
)

// GetFieldDimensions returns the battlefield dimensions in pixels
func GetFieldDimensions() (width, height int) {
	return FieldWidth, FieldHeight
}

// GetWindowSize returns the recommended preview window size (may be different from field dimensions)
func GetWindowSize() (width, height int) {
	return FieldWidth, FieldHeight + 32 // extra strip for the HUD line
}
