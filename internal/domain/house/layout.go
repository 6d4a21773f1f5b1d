package house

import (
	"purrhaven/internal/domain/geom"
	"purrhaven/internal/domain/nav"
)

const (
	GameWidth  = 1024.0
	GameHeight = 768.0
	TileSize   = 32.0
)

// Wander bounds keep the cat off the walls and out of the top HUD band.
var catBounds = geom.Rect{X: 80, Y: 180, Width: 780, Height: 340}

var (
	PlayerSpawn = geom.Vec2{X: 520, Y: 560}
	CatSpawn    = geom.Vec2{X: 420, Y: 520}
)

func CatBounds() geom.Rect {
	return catBounds
}

// BuildGrid derives the walkability grid from the fixed floor plan:
// border walls, two room dividers, and a handful of furniture tiles.
func BuildGrid() *nav.Grid {
	width := int(GameWidth / TileSize)
	height := int(GameHeight / TileSize)
	grid := nav.NewGrid(width, height, TileSize)

	for x := 0; x < width; x++ {
		grid.SetBlocked(nav.Tile{X: x, Y: 0}, true)
		grid.SetBlocked(nav.Tile{X: x, Y: height - 1}, true)
	}
	for y := 0; y < height; y++ {
		grid.SetBlocked(nav.Tile{X: 0, Y: y}, true)
		grid.SetBlocked(nav.Tile{X: width - 1, Y: y}, true)
	}

	// Room dividers with a doorway gap at the bottom.
	for y := 1; y < 12; y++ {
		grid.SetBlocked(nav.Tile{X: 10, Y: y}, true)
		grid.SetBlocked(nav.Tile{X: 20, Y: y}, true)
	}

	for _, t := range []nav.Tile{{X: 6, Y: 15}, {X: 8, Y: 15}, {X: 24, Y: 14}, {X: 25, Y: 14}, {X: 27, Y: 14}} {
		grid.SetBlocked(t, true)
	}

	return grid
}
