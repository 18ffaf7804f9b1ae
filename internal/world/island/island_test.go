package island

import (
	"errors"
	"testing"

	"chosenoffset.com/archipelago/internal/world/tile"
)

func TestNewDerivesBoundsFromGrid(t *testing.T) {
	isl := New("a", 64, 32, 32, tile.NewGrid(10, 5))

	if isl.Bounds.W != 320 || isl.Bounds.H != 160 {
		t.Errorf("Expected 320x160, got %.0fx%.0f", isl.Bounds.W, isl.Bounds.H)
	}
	if err := isl.Validate(); err != nil {
		t.Errorf("Expected valid island, got %v", err)
	}

	minX, minY, maxX, maxY := isl.TileRange()
	if minX != 3 || minY != 2 || maxX != 12 || maxY != 6 {
		t.Errorf("Unexpected tile range (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)
	}
}

func TestValidateSizeMismatch(t *testing.T) {
	isl := New("a", 0, 0, 32, tile.NewGrid(10, 10))
	isl.Bounds.W = 300

	if err := isl.Validate(); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Expected ErrSizeMismatch, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add(New("a", 0, 0, 32, tile.NewGrid(2, 2))); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Add(New("b", 128, 0, 32, tile.NewGrid(2, 2))); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Add(New("a", 256, 0, 32, tile.NewGrid(2, 2))); err == nil {
		t.Error("Expected duplicate id to be rejected")
	}

	if idx, ok := r.Index("b"); !ok || idx != 1 {
		t.Errorf("Expected b at index 1, got %d (%v)", idx, ok)
	}
	if idx, ok := r.IndexAtTile(5, 1); !ok || idx != 1 {
		t.Errorf("Expected tile (5,1) on island 1, got %d (%v)", idx, ok)
	}
	if _, ok := r.IndexAtTile(3, 1); ok {
		t.Error("Expected tile (3,1) to be between islands")
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Expected empty registry after Clear, got %d", r.Len())
	}
}

func TestTrackerEvents(t *testing.T) {
	r := NewRegistry()
	r.Add(New("a", 0, 0, 32, tile.NewGrid(2, 2)))
	r.Add(New("b", 128, 0, 32, tile.NewGrid(2, 2)))

	var got []Event
	tr := NewTracker(r)
	tr.OnEvent = func(e Event) { got = append(got, e) }

	tr.Update(1, 1) // enter a
	tr.Update(2, 1) // still a
	tr.Update(3, 1) // bridge gap
	tr.Update(5, 1) // enter b
	tr.Update(3, 1) // leave b
	tr.Update(1, 1) // re-enter a

	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	if got[0].Type != Entered || got[0].Index != 0 || !got[0].IsFirst {
		t.Errorf("Unexpected first event %+v", got[0])
	}
	if got[1].Type != Left || got[1].Index != 0 {
		t.Errorf("Unexpected leave event %+v", got[1])
	}
	if got[2].Type != Entered || got[2].Island.ID != "b" {
		t.Errorf("Unexpected enter event %+v", got[2])
	}
	if got[4].Type != Entered || got[4].IsFirst {
		t.Errorf("Expected revisit of a not to be first, got %+v", got[4])
	}
}
