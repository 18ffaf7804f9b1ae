package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/archipelago/internal/world/atlas"
	"chosenoffset.com/archipelago/internal/world/maploader"
)

// Tile names of the placeholder tileset.
const (
	Water = "water"
	Sand  = "sand"
	Grass = "grass"
	Rock  = "rock"
	Plank = "plank"
)

// TilesetConfig describes the placeholder tileset. GIDs follow the order of
// the tiles; plank (gid 5) is the bridge visual.
func TilesetConfig() *atlas.AtlasConfig {
	tile := func(name string, x int, walkable bool, groundType int) atlas.TileDefinition {
		return atlas.TileDefinition{
			Name:   name,
			AtlasX: x,
			Properties: map[string]interface{}{
				"walkable": walkable,
				"type":     groundType,
			},
		}
	}
	return &atlas.AtlasConfig{
		Name:       "placeholder",
		ImagePath:  "tiles.png",
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Tiles: []atlas.TileDefinition{
			tile(Water, 0, false, 0),
			tile(Sand, 1, true, 1),
			tile(Grass, 2, true, 2),
			tile(Rock, 3, false, 0),
			tile(Plank, 4, true, 1),
		},
	}
}

// TilesetImage renders the placeholder tileset, one tile per column.
func TilesetImage() *image.RGBA {
	p := ColorPalette
	return CreateAtlas([]*image.RGBA{
		CreatePatternedTile(p.Water, Lighten(p.Water, 0.3), "waves"),
		CreatePatternedTile(p.Sand, Darken(p.Sand, 0.85), "dots"),
		CreatePatternedTile(p.Grass, Darken(p.Grass, 0.8), "dots"),
		CreatePatternedTile(p.Rock, Darken(p.Rock, 0.7), "cross"),
		CreatePatternedTile(p.Plank, Darken(p.Plank, 0.6), "planks"),
	}, 5)
}

// IslandMap builds a map by asking fill for the tile name of every cell
// (1-based local coordinates).
func IslandMap(name string, width, height int, fill func(x, y int) string) maploader.MapData {
	tiles := make([][]string, height)
	for y := range tiles {
		tiles[y] = make([]string, width)
		for x := range tiles[y] {
			tiles[y][x] = fill(x+1, y+1)
		}
	}
	return maploader.MapData{Name: name, Width: width, Height: height, TileSize: TileSize, Tiles: tiles}
}

// beach is a sand ring around a grass interior with open corners.
func beach(width, height int, rocks ...[2]int) func(x, y int) string {
	return func(x, y int) string {
		for _, r := range rocks {
			if r[0] == x && r[1] == y {
				return Rock
			}
		}
		edgeX := x == 1 || x == width
		edgeY := y == 1 || y == height
		switch {
		case edgeX && edgeY:
			return ""
		case edgeX || edgeY:
			return Sand
		default:
			return Grass
		}
	}
}

// DemoIsland is one island of the demo world.
type DemoIsland struct {
	Entry maploader.IslandEntry
	Map   maploader.MapData
}

// DemoWorld returns the demo manifest and islands. harbor is bridged east to
// grove and south to cliffs; reef is adjacent to grove but all water; far is
// out of reach of everything.
func DemoWorld() (*maploader.Manifest, []DemoIsland) {
	islands := []DemoIsland{
		{
			Entry: maploader.IslandEntry{ID: "harbor", Map: "islands/harbor.json", X: 0, Y: 0},
			Map:   IslandMap("harbor", 10, 8, beach(10, 8, [2]int{4, 6}, [2]int{7, 6})),
		},
		{
			Entry: maploader.IslandEntry{ID: "grove", Map: "islands/grove.json", X: 384, Y: 0},
			Map:   IslandMap("grove", 10, 8, beach(10, 8, [2]int{5, 5})),
		},
		{
			Entry: maploader.IslandEntry{ID: "cliffs", Map: "islands/cliffs.json", X: 0, Y: 320},
			Map:   IslandMap("cliffs", 8, 8, beach(8, 8, [2]int{3, 3}, [2]int{6, 6})),
		},
		{
			Entry: maploader.IslandEntry{ID: "reef", Map: "islands/reef.json", X: 384, Y: 320},
			Map:   IslandMap("reef", 6, 6, func(int, int) string { return Water }),
		},
		{
			Entry: maploader.IslandEntry{ID: "far", Map: "islands/far.json", X: 1200, Y: 0},
			Map:   IslandMap("far", 6, 6, beach(6, 6)),
		},
	}

	manifest := &maploader.Manifest{
		Name:        "Demo Archipelago",
		Tileset:     "tileset.json",
		PlayerSpawn: maploader.SpawnPoint{Island: "harbor", X: 5, Y: 4},
	}
	for _, isl := range islands {
		manifest.Islands = append(manifest.Islands, isl.Entry)
	}
	return manifest, islands
}

// WriteDemoWorld writes the demo world, tileset included, into dir.
func WriteDemoWorld(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "islands"), 0o755); err != nil {
		return fmt.Errorf("failed to create world directory: %w", err)
	}

	if err := SavePNG(TilesetImage(), filepath.Join(dir, "tiles.png")); err != nil {
		return fmt.Errorf("failed to save tileset image: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, "tileset.json"), TilesetConfig()); err != nil {
		return err
	}

	manifest, islands := DemoWorld()
	for _, isl := range islands {
		if err := writeJSON(filepath.Join(dir, isl.Entry.Map), isl.Map); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, maploader.ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
