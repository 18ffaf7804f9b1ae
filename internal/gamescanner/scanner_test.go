package gamescanner

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/archipelago/internal/placeholders"
)

func TestScanDataDirectory(t *testing.T) {
	data := t.TempDir()
	if err := placeholders.WriteDemoWorld(filepath.Join(data, "demo")); err != nil {
		t.Fatal(err)
	}
	// Directories without a manifest are not worlds.
	if err := os.MkdirAll(filepath.Join(data, "atlases"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(data, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	worlds, err := ScanDataDirectory(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(worlds) != 1 {
		t.Fatalf("Expected 1 world, got %d: %+v", len(worlds), worlds)
	}
	if worlds[0].Dir != "demo" || worlds[0].Name != "Demo Archipelago" || worlds[0].Islands != 5 {
		t.Errorf("Unexpected entry %+v", worlds[0])
	}

	if _, err := Find(data, "demo archipelago"); err != nil {
		t.Errorf("Expected lookup by name to work: %v", err)
	}
	if _, err := Find(data, "missing"); err == nil {
		t.Error("Expected an error for an unknown world")
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := ScanDataDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected an error for a missing data directory")
	}
}
