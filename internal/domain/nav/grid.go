package nav

import (
	"math"

	"purrhaven/internal/domain/geom"
)

// Tile addresses one walkability cell of the house floor plan.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is the boolean walkability model the pathfinder searches over.
// Static geometry is fixed at build time; the temporary overlay is
// replaced wholesale on every update, never patched incrementally.
type Grid struct {
	width    int
	height   int
	tileSize float64
	blocked  []bool
	overlay  map[int]struct{}
}

func NewGrid(width, height int, tileSize float64) *Grid {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if tileSize <= 0 {
		tileSize = 32
	}
	return &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		blocked:  make([]bool, width*height),
	}
}

func (g *Grid) Width() int        { return g.width }
func (g *Grid) Height() int       { return g.height }
func (g *Grid) TileSize() float64 { return g.tileSize }

func (g *Grid) index(t Tile) int {
	return t.Y*g.width + t.X
}

func (g *Grid) InBounds(t Tile) bool {
	return g != nil && t.X >= 0 && t.Y >= 0 && t.X < g.width && t.Y < g.height
}

// SetBlocked marks static geometry at build time.
func (g *Grid) SetBlocked(t Tile, blocked bool) {
	if !g.InBounds(t) {
		return
	}
	g.blocked[g.index(t)] = blocked
}

// Blocked reports whether a tile is impassable, counting both static
// geometry and the temporary overlay. Out-of-bounds tiles are blocked.
func (g *Grid) Blocked(t Tile) bool {
	if !g.InBounds(t) {
		return true
	}
	if g.blocked[g.index(t)] {
		return true
	}
	if g.overlay != nil {
		if _, ok := g.overlay[g.index(t)]; ok {
			return true
		}
	}
	return false
}

// SetTemporaryBlocked replaces the dynamic overlay with exactly the
// given tiles. Callers pass the full current set each time.
func (g *Grid) SetTemporaryBlocked(tiles []Tile) {
	if g == nil {
		return
	}
	if len(tiles) == 0 {
		g.overlay = nil
		return
	}
	overlay := make(map[int]struct{}, len(tiles))
	for _, t := range tiles {
		if g.InBounds(t) {
			overlay[g.index(t)] = struct{}{}
		}
	}
	g.overlay = overlay
}

func (g *Grid) WorldToTile(p geom.Vec2) Tile {
	return Tile{
		X: int(math.Floor(p.X / g.tileSize)),
		Y: int(math.Floor(p.Y / g.tileSize)),
	}
}

// TileToWorld returns the world-space center of a tile.
func (g *Grid) TileToWorld(t Tile) geom.Vec2 {
	return geom.Vec2{
		X: float64(t.X)*g.tileSize + g.tileSize/2,
		Y: float64(t.Y)*g.tileSize + g.tileSize/2,
	}
}
