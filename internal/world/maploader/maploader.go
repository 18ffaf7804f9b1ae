package maploader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/render"
	"chosenoffset.com/archipelago/internal/world/atlas"
	"chosenoffset.com/archipelago/internal/world/island"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// ErrNoIslands is returned when a world ends up with no loadable island.
var ErrNoIslands = errors.New("world has no loadable islands")

// ManifestFile is the file name of a world manifest inside a world directory.
const ManifestFile = "world.yaml"

// SpawnPoint is a player spawn in tiles, relative to an island.
type SpawnPoint struct {
	Island string `yaml:"island"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// IslandEntry places one island map in world space.
type IslandEntry struct {
	ID  string  `yaml:"id"`
	Map string  `yaml:"map"` // path relative to the manifest
	X   float64 `yaml:"x"`   // world pixels, snapped down to the tile grid
	Y   float64 `yaml:"y"`
}

// Manifest describes a world: its tileset and the islands it is made of.
type Manifest struct {
	Name        string        `yaml:"name"`
	Tileset     string        `yaml:"tileset"`
	PlayerSpawn SpawnPoint    `yaml:"player_spawn"`
	Islands     []IslandEntry `yaml:"islands"`
}

// MapData is the on-disk format of a single island map.
type MapData struct {
	Name     string     `json:"name"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	TileSize int        `json:"tile_size"`
	Tiles    [][]string `json:"tiles"` // 2D array of tile names [y][x], "" = nothing
}

// World is the result of loading a manifest.
type World struct {
	Dir      string
	Manifest *Manifest
	Atlas    *atlas.Atlas
	Islands  []*island.Island
	Failed   map[string]error // island id -> reason it was excluded
}

// LoadManifest reads and parses a world manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if m.Tileset == "" {
		return nil, fmt.Errorf("manifest %s: tileset is required", path)
	}
	if len(m.Islands) == 0 {
		return nil, fmt.Errorf("manifest %s: %w", path, ErrNoIslands)
	}
	return &m, nil
}

// LoadWorld loads the manifest in dir, its tileset and every island map.
// Islands whose map cannot be loaded are logged and left out; the load only
// fails when the manifest or tileset is unusable or no island survives.
func LoadWorld(dir string, tileSize int, loader render.ResourceLoader, log *logrus.Entry) (*World, error) {
	log = diag.OrDiscard(log)
	manifest, err := LoadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}

	tileset, err := atlas.LoadAtlas(filepath.Join(dir, manifest.Tileset), loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset: %w", err)
	}

	w := &World{
		Dir:      dir,
		Manifest: manifest,
		Atlas:    tileset,
		Failed:   make(map[string]error),
	}

	seen := make(map[string]bool)
	for _, entry := range manifest.Islands {
		isl, err := LoadIsland(dir, entry, tileSize, tileset)
		if err == nil && seen[entry.ID] {
			err = fmt.Errorf("duplicate island id %q", entry.ID)
		}
		if err != nil {
			w.Failed[entry.ID] = err
			diag.With(log, diag.LoadFailed).
				WithField("island", entry.ID).
				WithError(err).
				Error("Island excluded from world")
			continue
		}
		seen[entry.ID] = true
		w.Islands = append(w.Islands, isl)
	}

	if len(w.Islands) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoIslands)
	}

	log.WithFields(logrus.Fields{
		"world":   manifest.Name,
		"islands": len(w.Islands),
		"failed":  len(w.Failed),
	}).Info("World loaded")
	return w, nil
}

// LoadIsland loads one island map and places it at its manifest position,
// snapped down to the tile grid.
func LoadIsland(dir string, entry IslandEntry, tileSize int, tileset *atlas.Atlas) (*island.Island, error) {
	if entry.ID == "" {
		return nil, fmt.Errorf("island entry for %s has no id", entry.Map)
	}
	path := filepath.Join(dir, entry.Map)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}
	if err := validateMapData(&mapData, tileSize); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}

	local, err := ParseLocalGrid(&mapData, tileset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	x := tile.TileToWorld(tile.WorldToTile(entry.X, tileSize), tileSize)
	y := tile.TileToWorld(tile.WorldToTile(entry.Y, tileSize), tileSize)
	return island.New(entry.ID, x, y, tileSize, local), nil
}

// ParseLocalGrid turns tile names into a local collision grid. Cells using the
// same tileset entry share one tile record.
func ParseLocalGrid(data *MapData, tileset *atlas.Atlas) (*tile.Grid, error) {
	grid := tile.NewGrid(data.Width, data.Height)
	interned := make(map[string]*tile.Tile)

	for y, row := range data.Tiles {
		for x, name := range row {
			if name == "" {
				continue
			}
			rec, ok := interned[name]
			if !ok {
				def, found := tileset.GetTile(name)
				if !found {
					return nil, fmt.Errorf("tile not found in tileset: %s (at %d,%d)", name, x, y)
				}
				rec = tile.New(
					def.GetTilePropertyBool("walkable", false),
					def.GetTilePropertyInt("type", 0),
					def.GID(),
				)
				interned[name] = rec
			}
			grid.Set(x+1, y+1, rec)
		}
	}
	return grid, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData, tileSize int) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileSize != 0 && data.TileSize != tileSize {
		return fmt.Errorf("map tile size %d does not match world tile size %d", data.TileSize, tileSize)
	}

	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tiles array height mismatch: expected %d, got %d", data.Height, len(data.Tiles))
	}

	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}

	return nil
}
