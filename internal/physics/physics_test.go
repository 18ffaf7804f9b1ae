package physics

import (
	"testing"

	"github.com/solarlune/resolv"

	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// strip returns a 5x3 grid with a walkable run at (2..4, 2).
func strip() *tile.Grid {
	g := tile.NewGrid(5, 3)
	sand := tile.New(true, 1, 2)
	for x := 2; x <= 4; x++ {
		g.Set(x, 2, sand)
	}
	return g
}

func TestBlockerRegions(t *testing.T) {
	regions := BlockerRegions(strip(), 32)

	expected := []Region{
		{X: 32, Y: 0, W: 96, H: 32},
		{X: 0, Y: 32, W: 32, H: 32},
		{X: 128, Y: 32, W: 32, H: 32},
		{X: 32, Y: 64, W: 96, H: 32},
	}
	if len(regions) != len(expected) {
		t.Fatalf("Expected %d regions, got %d: %+v", len(expected), len(regions), regions)
	}
	for i := range expected {
		if regions[i] != expected[i] {
			t.Errorf("Region %d: expected %+v, got %+v", i, expected[i], regions[i])
		}
	}
}

func TestSyncKeepsUnchangedBodies(t *testing.T) {
	g := strip()
	w := NewWorld(g.Width, g.Height, 32, diag.Discard())

	first := w.Build(g)
	if len(first.Added) != 4 || len(first.Removed) != 0 {
		t.Fatalf("Expected 4 bodies on build, got +%d -%d", len(first.Added), len(first.Removed))
	}
	left := w.Bodies()[1]

	// Opening the east end turns the cells above and below into blockers.
	g.Set(5, 2, tile.NewBridge(1, 9))
	res := w.Sync(g)

	if len(res.Removed) != 3 {
		t.Errorf("Expected 3 bodies removed, got %d", len(res.Removed))
	}
	if len(res.Added) != 2 {
		t.Errorf("Expected 2 bodies added, got %d", len(res.Added))
	}
	if w.Len() != 3 {
		t.Errorf("Expected 3 bodies after sync, got %d", w.Len())
	}
	if w.Bodies()[1] != left {
		t.Error("Expected the west blocker body to be kept")
	}
	if w.Covers(5, 2) {
		t.Error("Expected the opened cell to be free of collision")
	}

	again := w.Sync(g)
	if len(again.Added) != 0 || len(again.Removed) != 0 {
		t.Errorf("Expected a second sync to be a no-op, got +%d -%d", len(again.Added), len(again.Removed))
	}
}

func TestCollisionAgreesWithGrid(t *testing.T) {
	g := strip()
	w := NewWorld(g.Width, g.Height, 32, diag.Discard())
	w.Build(g)

	g.Each(func(x, y int, tl *tile.Tile) {
		if tl.Walkable && w.Covers(x, y) {
			t.Errorf("Walkable tile (%d,%d) is covered by a body", x, y)
		}
	})
}

func TestCreateStaticBodyDoesNotDuplicate(t *testing.T) {
	w := NewWorld(4, 4, 32, diag.Discard())
	r := Region{X: 0, Y: 0, W: 32, H: 32}

	a := w.CreateStaticBody(r)
	b := w.CreateStaticBody(r)
	if a != b || w.Len() != 1 {
		t.Errorf("Expected a single body for a region, got %d", w.Len())
	}
	if !a.HasTags(TagSolid) {
		t.Error("Expected static bodies to be tagged solid")
	}
}

func TestMoveStopsAtBlockers(t *testing.T) {
	g := strip()
	w := NewWorld(g.Width, g.Height, 32, diag.Discard())
	w.Build(g)

	player := resolv.NewObject(40, 40, 16, 16, TagPlayer)
	w.AddBody(player)

	dx, _ := w.Move(player, -20, 0)
	if dx != 0 {
		t.Errorf("Expected westward move into a blocker to be cancelled, moved %v", dx)
	}

	dx, _ = w.Move(player, 20, 0)
	if dx != 20 || player.X != 60 {
		t.Errorf("Expected eastward move along the strip, moved %v to x=%v", dx, player.X)
	}

	_, dy := w.Move(player, 0, -12)
	if dy != 0 {
		t.Errorf("Expected northward move into a blocker to be cancelled, moved %v", dy)
	}
}
