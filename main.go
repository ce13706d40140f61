package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/config"
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/generation"
)

func main() {
	settings := config.DefaultSettings()

	// Check for command-line flags
	asciiMode := false
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "--ascii":
			asciiMode = true
		case strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml"):
			loaded, err := config.LoadSettings(arg)
			if err != nil {
				log.Fatal(err)
			}
			settings = loaded
		}
	}

	if asciiMode {
		// Dump one generated map to stdout and exit
		dumpASCIIMap(settings)
		return
	}

	// Run the interactive map preview
	preview := NewMapPreview(settings)
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Battle Cabriolet - Mission Map Preview")
	if err := ebiten.RunGame(preview); err != nil {
		log.Fatal(err)
	}
}

// terrainGlyphs maps terrain types to the characters used by the ASCII dump
var terrainGlyphs = map[components.TerrainType]rune{
	components.TerrainAsphalt: '=',
	components.TerrainDirt:    '.',
	components.TerrainWater:   '~',
	components.TerrainWall:    '#',
	components.TerrainMine:    '*',
}

// dumpASCIIMap generates a single mission map and prints it as text
func dumpASCIIMap(settings config.Settings) {
	generator := generation.NewMissionMapGenerator()
	if settings.Seed != 0 {
		generator.SetSeed(settings.Seed)
	}

	mission := generation.MissionDelivery
	if settings.Mission != "" {
		mission = generation.MissionType(settings.Mission)
	}

	mapData := generator.Generate(settings.Width, settings.Height, settings.TileSize, mission)

	grid := mapData.Grid
	for y := 0; y < grid.TilesY; y++ {
		line := make([]rune, grid.TilesX)
		for x := 0; x < grid.TilesX; x++ {
			line[x] = terrainGlyphs[grid.Tiles[y][x]]
		}
		if y == mapData.Start.TileY {
			line[mapData.Start.TileX] = 'S'
		}
		if y == mapData.Goal.TileY {
			line[mapData.Goal.TileX] = 'G'
		}
		fmt.Println(string(line))
	}

	fmt.Printf("reachable: %v\n", generation.Reachable(grid, mapData.Start, mapData.Goal))
}
