package config

import (
	_ "embed"
)

//go:embed defaults/archipelago.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			DataDir:  "data",
			Default:  "demo",
			TileSize: 32,
			Padding:  500,
		},
		Bridge: BridgeConfig{
			AdjacencyDistanceTiles: 3,
			MaxDistanceTiles:       5,
			VisualGID:              5,
			WalkableGroundType:     1,
			FallbackColor:          "#8b5e3c",
		},
		Screen: ScreenConfig{
			Width:  960,
			Height: 640,
		},
		Player: PlayerConfig{
			Speed: 3,
			Size:  20,
		},
	}
}
