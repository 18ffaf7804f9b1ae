// Package main provides the CLI entry point for Archipelago.
//
// Usage:
//
//	archipelago                  # Play the default world
//	archipelago play [world]     # Play a world by directory or name
//	archipelago inspect [world]  # Print islands, adjacency and bridges
//	archipelago list             # List worlds in the data directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/archipelago/internal/config"
	"chosenoffset.com/archipelago/internal/gamescanner"
)

var (
	configPath string
	dataDir    string
)

var rootCmd = &cobra.Command{
	Use:   "archipelago",
	Short: "Explore worlds built from islands joined by bridges",
	Long: `Archipelago loads a set of island maps, places them in one world,
detects which islands are close enough to bridge and lays walkable bridge
tiles between them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dataDir != "" {
		cfg.World.DataDir = dataDir
	}
	return cfg, nil
}

// resolveWorld finds the world named in args, or the configured default.
func resolveWorld(cfg config.Config, args []string) (gamescanner.WorldEntry, error) {
	want := cfg.World.Default
	if len(args) > 0 {
		want = args[0]
	}
	entry, err := gamescanner.Find(cfg.World.DataDir, want)
	if err != nil {
		return entry, fmt.Errorf("%w (run genplaceholders to create the demo world)", err)
	}
	return entry, nil
}
