package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/archipelago/internal/world/maploader"
)

// WorldEntry represents a discoverable world in the data directory
type WorldEntry struct {
	Name    string // Display name from the manifest, or the directory name
	Dir     string // Directory name relative to the data directory
	Path    string // Full path to the world directory
	Islands int    // Number of islands listed in the manifest
}

// ScanDataDirectory scans the data directory for world directories.
// A directory counts as a world when it holds a readable world manifest.
func ScanDataDirectory(dataPath string) ([]WorldEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var worlds []WorldEntry
	for _, entry := range entries {
		// Skip non-directories and hidden directories
		dirName := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(dirName, ".") {
			continue
		}

		worldPath := filepath.Join(dataPath, dirName)
		manifest, err := maploader.LoadManifest(filepath.Join(worldPath, maploader.ManifestFile))
		if err != nil {
			continue
		}

		name := manifest.Name
		if name == "" {
			name = dirName
		}
		worlds = append(worlds, WorldEntry{
			Name:    name,
			Dir:     dirName,
			Path:    worldPath,
			Islands: len(manifest.Islands),
		})
	}

	sort.Slice(worlds, func(i, j int) bool { return worlds[i].Dir < worlds[j].Dir })
	return worlds, nil
}

// Find returns the world in dataPath whose directory or name matches.
func Find(dataPath, want string) (WorldEntry, error) {
	worlds, err := ScanDataDirectory(dataPath)
	if err != nil {
		return WorldEntry{}, err
	}
	for _, w := range worlds {
		if w.Dir == want || strings.EqualFold(w.Name, want) {
			return w, nil
		}
	}
	return WorldEntry{}, fmt.Errorf("world %q not found in %s", want, dataPath)
}
