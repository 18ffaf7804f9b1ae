package maploader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"chosenoffset.com/archipelago/internal/diag"
)

const tilesetJSON = `{
	"name": "test",
	"image_path": "tiles.png",
	"tile_width": 16,
	"tile_height": 16,
	"tiles": [
		{"name": "water", "atlas_x": 0, "atlas_y": 0, "properties": {"walkable": false}},
		{"name": "sand", "atlas_x": 1, "atlas_y": 0, "properties": {"walkable": true, "type": 1}}
	]
}`

const smallMapJSON = `{
	"name": "small",
	"width": 3,
	"height": 2,
	"tile_size": 32,
	"tiles": [
		["water", "sand", "sand"],
		["", "sand", "water"]
	]
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeWorld(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tileset.json"), tilesetJSON)
	writeFile(t, filepath.Join(dir, "islands", "a.json"), smallMapJSON)
	writeFile(t, filepath.Join(dir, "islands", "broken.json"), `{"name": "broken", "width": `)
	writeFile(t, filepath.Join(dir, ManifestFile), `
name: Test World
tileset: tileset.json
player_spawn:
  island: a
  x: 2
  y: 1
islands:
  - id: a
    map: islands/a.json
    x: 0
    y: 0
  - id: b
    map: islands/a.json
    x: 140
    y: 10
  - id: broken
    map: islands/broken.json
    x: 400
    y: 0
  - id: missing
    map: islands/missing.json
    x: 800
    y: 0
`)
	return dir
}

func TestLoadWorldExcludesFailedIslands(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dir := writeWorld(t)

	w, err := LoadWorld(dir, 32, nil, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("LoadWorld failed: %v", err)
	}

	if len(w.Islands) != 2 {
		t.Fatalf("Expected 2 islands, got %d", len(w.Islands))
	}
	if _, ok := w.Failed["broken"]; !ok {
		t.Error("Expected broken island to be reported as failed")
	}
	if _, ok := w.Failed["missing"]; !ok {
		t.Error("Expected missing island to be reported as failed")
	}

	failures := 0
	for _, e := range hook.AllEntries() {
		if diag.Of(e) == diag.LoadFailed {
			failures++
			if e.Level != logrus.ErrorLevel {
				t.Errorf("Expected load failures at error level, got %v", e.Level)
			}
		}
	}
	if failures != 2 {
		t.Errorf("Expected 2 load_failed diagnostics, got %d", failures)
	}
}

func TestLoadIslandSnapsToTileGrid(t *testing.T) {
	dir := writeWorld(t)
	w, err := LoadWorld(dir, 32, nil, diag.Discard())
	if err != nil {
		t.Fatal(err)
	}

	b := w.Islands[1]
	if b.Bounds.X != 128 || b.Bounds.Y != 0 {
		t.Errorf("Expected island b snapped to (128,0), got (%.0f,%.0f)", b.Bounds.X, b.Bounds.Y)
	}
	if b.Bounds.W != 96 || b.Bounds.H != 64 {
		t.Errorf("Expected 96x64 bounds, got %.0fx%.0f", b.Bounds.W, b.Bounds.H)
	}
}

func TestParseLocalGridInternsRecords(t *testing.T) {
	dir := writeWorld(t)
	w, err := LoadWorld(dir, 32, nil, diag.Discard())
	if err != nil {
		t.Fatal(err)
	}

	g := w.Islands[0].Local
	if g.Walkable(1, 1) {
		t.Error("Expected water at (1,1) to be blocked")
	}
	if !g.Walkable(2, 1) || !g.Walkable(2, 2) {
		t.Error("Expected sand to be walkable")
	}
	if g.At(2, 1) != g.At(3, 1) {
		t.Error("Expected cells with the same tileset entry to share a record")
	}
	if g.At(2, 1).Type != 1 || g.At(2, 1).GID != 2 {
		t.Errorf("Unexpected sand record %+v", *g.At(2, 1))
	}
}

func TestLoadWorldAllIslandsFail(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tileset.json"), tilesetJSON)
	writeFile(t, filepath.Join(dir, ManifestFile), `
name: Empty
tileset: tileset.json
islands:
  - id: gone
    map: nope.json
`)

	_, err := LoadWorld(dir, 32, nil, diag.Discard())
	if !errors.Is(err, ErrNoIslands) {
		t.Errorf("Expected ErrNoIslands, got %v", err)
	}
}

func TestValidateMapData(t *testing.T) {
	tests := []struct {
		name string
		data MapData
	}{
		{"zero size", MapData{Width: 0, Height: 1, Tiles: [][]string{{}}}},
		{"tile size mismatch", MapData{Width: 1, Height: 1, TileSize: 16, Tiles: [][]string{{"sand"}}}},
		{"row count", MapData{Width: 1, Height: 2, Tiles: [][]string{{"sand"}}}},
		{"row width", MapData{Width: 2, Height: 1, Tiles: [][]string{{"sand"}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateMapData(&tc.data, 32); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
