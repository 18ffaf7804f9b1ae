package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/archipelago/internal/render"
)

// TileDefinition defines a single tile within an atlas
type TileDefinition struct {
	Name       string                 `json:"name"`       // Semantic name (e.g., "sand", "plank_h")
	AtlasX     int                    `json:"atlas_x"`    // X position in atlas (in tiles)
	AtlasY     int                    `json:"atlas_y"`    // Y position in atlas (in tiles)
	Properties map[string]interface{} `json:"properties"` // walkable, type, gid, ...

	gid int
}

// GID returns the visual id of the tile. It comes from the "gid" property,
// or the 1-based position of the tile in the atlas file when absent.
func (td *TileDefinition) GID() int {
	return td.gid
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name       string           `json:"name"`        // Atlas name
	ImagePath  string           `json:"image_path"`  // Path to the atlas image file, relative to the config
	TileWidth  int              `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int              `json:"tile_height"` // Height of each tile in pixels
	Tiles      []TileDefinition `json:"tiles"`       // Array of tile definitions
}

// Atlas represents a loaded sprite atlas. Image is nil when the atlas was
// loaded without a resource loader (headless tools and tests).
type Atlas struct {
	Config      *AtlasConfig
	Image       render.Image
	TilesByName map[string]*TileDefinition
	TilesByGID  map[int]*TileDefinition
}

// ParseConfig parses and validates an atlas JSON document.
func ParseConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}

	return &config, nil
}

// New indexes a parsed configuration. img may be nil.
func New(config *AtlasConfig, img render.Image) (*Atlas, error) {
	tilesByName := make(map[string]*TileDefinition)
	tilesByGID := make(map[int]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		tile.gid = tile.GetTilePropertyInt("gid", i+1)
		if tile.Name != "" {
			tilesByName[tile.Name] = tile
		}
		if other, dup := tilesByGID[tile.gid]; dup {
			return nil, fmt.Errorf("tiles %q and %q share gid %d", other.Name, tile.Name, tile.gid)
		}
		tilesByGID[tile.gid] = tile
	}

	return &Atlas{
		Config:      config,
		Image:       img,
		TilesByName: tilesByName,
		TilesByGID:  tilesByGID,
	}, nil
}

// LoadAtlas loads a sprite atlas from a JSON configuration file. The image is
// only loaded when loader is non-nil.
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	var img render.Image
	if loader != nil {
		if config.ImagePath == "" {
			return nil, fmt.Errorf("image_path is required in atlas config %s", configPath)
		}
		imgPath := config.ImagePath
		if !filepath.IsAbs(imgPath) {
			imgPath = filepath.Join(filepath.Dir(configPath), imgPath)
		}
		img, err = loader.LoadImage(imgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load atlas image %s: %w", imgPath, err)
		}
	}

	return New(config, img)
}

// GetTile returns a tile definition by name
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// GetTileByGID returns a tile definition by visual id
func (a *Atlas) GetTileByGID(gid int) (*TileDefinition, bool) {
	tile, ok := a.TilesByGID[gid]
	return tile, ok
}

// GetTileSubImage returns the sub-image for a specific tile, or nil when the
// atlas has no image.
func (a *Atlas) GetTileSubImage(tile *TileDefinition) render.Image {
	if a.Image == nil {
		return nil
	}
	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	rect := image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight)
	return a.Image.SubImage(rect)
}

// DrawGID draws the tile with the given visual id at screen coordinates,
// scaled to size pixels. It reports false when nothing could be drawn.
func (a *Atlas) DrawGID(screen render.Image, gid int, x, y float64, size int) bool {
	tile, ok := a.GetTileByGID(gid)
	if !ok {
		return false
	}
	subImg := a.GetTileSubImage(tile)
	if subImg == nil {
		return false
	}

	geoM := render.NewGeoM()
	geoM.Scale(float64(size)/float64(a.Config.TileWidth), float64(size)/float64(a.Config.TileHeight))
	geoM.Translate(x, y)
	screen.DrawImage(subImg, &render.DrawImageOptions{GeoM: geoM})
	return true
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (interface{}, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyBool retrieves a boolean property
func (td *TileDefinition) GetTilePropertyBool(key string, defaultVal bool) bool {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetTilePropertyInt retrieves an integer property
func (td *TileDefinition) GetTilePropertyInt(key string, defaultVal int) int {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case float64: // JSON numbers
		return int(v)
	case int:
		return v
	}
	return defaultVal
}
