package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/components"
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/config"
	"github.com/Vitalii-Barkatov/battle-cabriolet-sub000/generation"
)

// MapPreview implements ebiten.Game interface for inspecting generated
// mission maps.
type MapPreview struct {
	generator *generation.MissionMapGenerator
	palette   *components.TerrainPalette
	settings  config.Settings
	mission   generation.MissionType
	seed      int64
	mapData   *components.MapData
	reachable bool
}

// NewMapPreview creates a new map preview window state
func NewMapPreview(settings config.Settings) *MapPreview {
	preview := &MapPreview{
		generator: generation.NewMissionMapGenerator(),
		palette:   components.NewTerrainPalette(),
		settings:  settings,
		mission:   generation.MissionDelivery,
		seed:      settings.Seed,
	}

	if settings.Mission != "" {
		preview.mission = generation.MissionType(settings.Mission)
	}
	if preview.seed == 0 {
		preview.seed = time.Now().UnixNano()
	}

	preview.regenerate()
	return preview
}

// regenerate builds a fresh mission map and refreshes the diagnostics
func (p *MapPreview) regenerate() {
	p.generator.SetSeed(p.seed)
	p.mapData = p.generator.Generate(p.settings.Width, p.settings.Height, p.settings.TileSize, p.mission)
	p.reachable = generation.Reachable(p.mapData.Grid, p.mapData.Start, p.mapData.Goal)
}

// Update handles the preview keys
func (p *MapPreview) Update() error {
	// R or Space rolls a new seed and regenerates
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.seed = time.Now().UnixNano()
		p.regenerate()
	}

	// N cycles the mission type (placement is currently identical, the
	// key exists to eyeball that)
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		switch p.mission {
		case generation.MissionDelivery:
			p.mission = generation.MissionRescue
		case generation.MissionRescue:
			p.mission = generation.MissionAssault
		default:
			p.mission = generation.MissionDelivery
		}
		p.regenerate()
	}

	// Handle fullscreen toggle
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	return nil
}

// Draw paints the terrain grid, mines and the spawn markers
func (p *MapPreview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	grid := p.mapData.Grid
	tileSize := float32(p.settings.TileSize)

	for y := 0; y < grid.TilesY; y++ {
		for x := 0; x < grid.TilesX; x++ {
			def := p.palette.GetTileDefinition(grid.Tiles[y][x])
			vector.DrawFilledRect(screen, float32(x)*tileSize, float32(y)*tileSize, tileSize, tileSize, def.FG, false)
		}
	}

	// Mines draw their original ground with a hazard marker on top
	for _, mine := range p.mapData.Mines {
		ground := p.palette.GetTileDefinition(mine.OriginalTerrain)
		vector.DrawFilledRect(screen, float32(mine.TileX)*tileSize, float32(mine.TileY)*tileSize, tileSize, tileSize, ground.FG, false)
		hazard := p.palette.GetTileDefinition(components.TerrainMine)
		vector.DrawFilledCircle(screen, float32(mine.X), float32(mine.Y), tileSize/4, hazard.FG, false)
	}

	// Start marker in green, goal marker in yellow
	vector.DrawFilledCircle(screen, float32(p.mapData.Start.X), float32(p.mapData.Start.Y), tileSize/3, color.RGBA{80, 220, 80, 255}, false)
	vector.DrawFilledCircle(screen, float32(p.mapData.Goal.X), float32(p.mapData.Goal.Y), tileSize/3, color.RGBA{240, 220, 60, 255}, false)

	hud := fmt.Sprintf("mission=%s seed=%d buildings=%d mines=%d reachable=%v | [R]egenerate [N]ext mission [F]ullscreen",
		p.mission, p.seed, len(p.mapData.Buildings), len(p.mapData.Mines), p.reachable)
	ebitenutil.DebugPrintAt(screen, hud, 4, p.settings.Height+8)
}

// Layout implements ebiten.Game's Layout
func (p *MapPreview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.settings.Width, p.settings.Height + 32
}
