package nav

import (
	"testing"

	"purrhaven/internal/domain/geom"
)

func TestGrid_BlockedTracksStaticAndOverlay(t *testing.T) {
	g := NewGrid(4, 4, 32)

	tile := Tile{X: 1, Y: 2}
	if g.Blocked(tile) {
		t.Fatalf("fresh grid should be walkable at %v", tile)
	}

	g.SetBlocked(tile, true)
	if !g.Blocked(tile) {
		t.Fatalf("expected %v blocked after SetBlocked", tile)
	}
	g.SetBlocked(tile, false)
	if g.Blocked(tile) {
		t.Fatalf("expected %v walkable after unblocking", tile)
	}

	g.SetTemporaryBlocked([]Tile{tile})
	if !g.Blocked(tile) {
		t.Fatalf("expected %v blocked by overlay", tile)
	}

	g.SetTemporaryBlocked([]Tile{{X: 0, Y: 0}})
	if g.Blocked(tile) {
		t.Fatalf("overlay replacement should have cleared %v", tile)
	}
}

func TestGrid_OutOfBoundsIsBlocked(t *testing.T) {
	g := NewGrid(4, 4, 32)
	for _, tile := range []Tile{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 0}, {X: 0, Y: 4}} {
		if !g.Blocked(tile) {
			t.Fatalf("expected out-of-bounds tile %v to read as blocked", tile)
		}
	}
}

func TestGrid_WorldTileRoundTrip(t *testing.T) {
	g := NewGrid(10, 10, 32)

	tile := g.WorldToTile(geom.Vec2{X: 95, Y: 32})
	if tile != (Tile{X: 2, Y: 1}) {
		t.Fatalf("WorldToTile = %v, want {2 1}", tile)
	}

	center := g.TileToWorld(Tile{X: 2, Y: 1})
	if center != (geom.Vec2{X: 80, Y: 48}) {
		t.Fatalf("TileToWorld = %v, want tile center {80 48}", center)
	}

	if got := g.WorldToTile(center); got != (Tile{X: 2, Y: 1}) {
		t.Fatalf("round trip landed on %v", got)
	}
}
