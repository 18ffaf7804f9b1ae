// Package config provides YAML-based configuration loading for the world,
// bridge and screen settings.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all runtime configuration.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Bridge BridgeConfig `yaml:"bridge"`
	Screen ScreenConfig `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
}

// WorldConfig defines where worlds live and how they are laid out.
type WorldConfig struct {
	DataDir  string  `yaml:"data_dir"`
	Default  string  `yaml:"default"`
	TileSize int     `yaml:"tile_size"`
	Padding  float64 `yaml:"padding"`
}

// BridgeConfig defines bridge detection and appearance.
type BridgeConfig struct {
	AdjacencyDistanceTiles float64 `yaml:"adjacency_distance_tiles"`
	MaxDistanceTiles       float64 `yaml:"max_distance_tiles"`
	VisualGID              int     `yaml:"visual_gid"`
	WalkableGroundType     int     `yaml:"walkable_ground_type"`
	FallbackColor          string  `yaml:"fallback_color"`
}

// ScreenConfig defines the window size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// Validate checks the values that would break world assembly or detection.
func (c *Config) Validate() error {
	switch {
	case c.World.TileSize <= 0:
		return fmt.Errorf("%w: world.tile_size must be positive, got %d", ErrInvalid, c.World.TileSize)
	case c.World.Padding < 0:
		return fmt.Errorf("%w: world.padding must not be negative, got %v", ErrInvalid, c.World.Padding)
	case c.Bridge.AdjacencyDistanceTiles < 0:
		return fmt.Errorf("%w: bridge.adjacency_distance_tiles must not be negative", ErrInvalid)
	case c.Bridge.MaxDistanceTiles < 0:
		return fmt.Errorf("%w: bridge.max_distance_tiles must not be negative", ErrInvalid)
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Player.Size <= 0 || c.Player.Size > float64(c.World.TileSize):
		return fmt.Errorf("%w: player.size must be in (0, tile_size], got %v", ErrInvalid, c.Player.Size)
	}
	if _, err := c.Bridge.Color(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Color parses the fallback colour.
func (b BridgeConfig) Color() (color.Color, error) {
	c, err := colorful.Hex(b.FallbackColor)
	if err != nil {
		return nil, fmt.Errorf("bridge.fallback_color %q: %w", b.FallbackColor, err)
	}
	return c, nil
}
