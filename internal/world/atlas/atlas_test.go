package atlas

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/archipelago/internal/render/rendertest"
)

const testAtlasJSON = `{
	"name": "islands",
	"image_path": "tiles.png",
	"tile_width": 16,
	"tile_height": 16,
	"tiles": [
		{
			"name": "water",
			"atlas_x": 0,
			"atlas_y": 0,
			"properties": {"walkable": false, "type": 0}
		},
		{
			"name": "sand",
			"atlas_x": 1,
			"atlas_y": 0,
			"properties": {"walkable": true, "type": 1}
		},
		{
			"name": "plank",
			"atlas_x": 2,
			"atlas_y": 0,
			"properties": {"walkable": true, "type": 1, "gid": 7}
		}
	]
}`

func TestAtlasConfigParsing(t *testing.T) {
	config, err := ParseConfig([]byte(testAtlasJSON))
	if err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if config.Name != "islands" {
		t.Errorf("Expected name 'islands', got '%s'", config.Name)
	}
	if config.TileWidth != 16 || config.TileHeight != 16 {
		t.Errorf("Expected 16x16 tiles, got %dx%d", config.TileWidth, config.TileHeight)
	}
	if len(config.Tiles) != 3 {
		t.Fatalf("Expected 3 tiles, got %d", len(config.Tiles))
	}

	sand := config.Tiles[1]
	if !sand.GetTilePropertyBool("walkable", false) {
		t.Error("Expected sand to be walkable")
	}
	if sand.GetTilePropertyInt("type", -1) != 1 {
		t.Errorf("Expected sand type 1, got %d", sand.GetTilePropertyInt("type", -1))
	}
}

func TestParseConfigRejectsBadTileSize(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"name":"x","tile_width":0,"tile_height":16}`)); err == nil {
		t.Error("Expected error for zero tile width")
	}
}

func TestGIDAssignment(t *testing.T) {
	config, err := ParseConfig([]byte(testAtlasJSON))
	if err != nil {
		t.Fatal(err)
	}
	a, err := New(config, nil)
	if err != nil {
		t.Fatal(err)
	}

	water, _ := a.GetTile("water")
	if water.GID() != 1 {
		t.Errorf("Expected implicit gid 1 for water, got %d", water.GID())
	}
	plank, ok := a.GetTileByGID(7)
	if !ok || plank.Name != "plank" {
		t.Errorf("Expected explicit gid 7 to resolve to plank, got %v", plank)
	}
}

func TestDuplicateGIDRejected(t *testing.T) {
	config := &AtlasConfig{
		Name:       "dup",
		TileWidth:  16,
		TileHeight: 16,
		Tiles: []TileDefinition{
			{Name: "a", Properties: map[string]interface{}{"gid": 2.0}},
			{Name: "b"}, // implicit gid 2
		},
	}
	if _, err := New(config, nil); err == nil {
		t.Error("Expected duplicate gid error")
	}
}

func TestTileDefinitionDefaults(t *testing.T) {
	tile := TileDefinition{Name: "bare"}

	if !tile.GetTilePropertyBool("missing", true) {
		t.Error("Expected default value true for missing property")
	}
	if tile.GetTilePropertyInt("missing", 99) != 99 {
		t.Error("Expected default value 99 for missing property")
	}
}

func TestLoadAtlasWithLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.json")
	if err := os.WriteFile(path, []byte(testAtlasJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &rendertest.Renderer{}
	loader := &rendertest.Loader{R: r, Images: map[string][2]int{
		filepath.Join(dir, "tiles.png"): {48, 16},
	}}

	a, err := LoadAtlas(path, loader)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if a.Image == nil {
		t.Fatal("Expected atlas image to be loaded")
	}

	screen := r.NewImage(320, 240)
	if !a.DrawGID(screen, 7, 64, 32, 32) {
		t.Fatal("Expected plank to be drawn")
	}
	if r.Count("image") != 1 {
		t.Errorf("Expected one image draw, got %d", r.Count("image"))
	}
	if a.DrawGID(screen, 42, 0, 0, 32) {
		t.Error("Expected unknown gid to report false")
	}
}

func TestLoadAtlasHeadless(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.json")
	if err := os.WriteFile(path, []byte(testAtlasJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadAtlas(path, nil)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if a.Image != nil {
		t.Error("Expected no image without a loader")
	}
	r := &rendertest.Renderer{}
	if a.DrawGID(r.NewImage(10, 10), 2, 0, 0, 32) {
		t.Error("Expected DrawGID to fail without an image")
	}
}
