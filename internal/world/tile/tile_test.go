package tile

import "testing"

func TestWorldToTileBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		world    float64
		expected int
	}{
		{"origin", 0, 1},
		{"inside first tile", 31.9, 1},
		{"first pixel of second tile", 32, 2},
		{"last pixel of second tile", 63.99, 2},
		{"negative world", -0.5, 0},
		{"one tile left of origin", -32, 0},
		{"just past one tile left", -32.1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WorldToTile(tc.world, 32); got != tc.expected {
				t.Errorf("WorldToTile(%v) = %d, expected %d", tc.world, got, tc.expected)
			}
		})
	}
}

func TestTileWorldRoundTrip(t *testing.T) {
	for tileIdx := -3; tileIdx <= 40; tileIdx++ {
		world := TileToWorld(tileIdx, 32)
		if got := WorldToTile(world, 32); got != tileIdx {
			t.Errorf("round trip of tile %d via %v gave %d", tileIdx, world, got)
		}
		// Last pixel of the tile must still map back to the same tile.
		if got := WorldToTile(world+31, 32); got != tileIdx {
			t.Errorf("last pixel of tile %d mapped to %d", tileIdx, got)
		}
	}
}

func TestGridDefaultsAndBounds(t *testing.T) {
	g := NewGrid(4, 3)

	if g.At(1, 1) != Empty {
		t.Error("Expected new cells to point at the shared empty tile")
	}
	if g.Walkable(0, 1) || g.Walkable(5, 1) || g.Walkable(1, 4) {
		t.Error("Expected out of bounds cells to be non-walkable")
	}
	if g.Set(5, 1, New(true, 1, 1)) {
		t.Error("Expected out of bounds Set to be rejected")
	}
	if !g.Set(4, 3, New(true, 1, 1)) {
		t.Fatal("Expected Set on last cell to succeed")
	}
	if !g.Walkable(4, 3) {
		t.Error("Expected (4,3) to be walkable after Set")
	}
	if g.WalkableCount() != 1 {
		t.Errorf("Expected 1 walkable cell, got %d", g.WalkableCount())
	}
}

func TestGridReplacementDoesNotLeakIntoEmpty(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 2, NewBridge(1, 9))

	if Empty.Walkable || Empty.IsBridge {
		t.Fatal("Shared empty tile was modified")
	}
	if g.At(1, 1) != Empty || g.At(3, 3) != Empty {
		t.Error("Expected untouched cells to still alias the empty tile")
	}
	if g.At(2, 2) == Empty {
		t.Error("Expected replaced cell to hold a new record")
	}
}

func TestGridEqualAndClone(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 2, New(true, 2, 5))

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("Expected clone to equal original")
	}
	c.Set(2, 2, New(true, 2, 5))
	if g.Equal(c) {
		t.Error("Expected grids to differ after modifying the clone")
	}
	if g.Walkable(2, 2) {
		t.Error("Clone modification leaked into the original")
	}
}
