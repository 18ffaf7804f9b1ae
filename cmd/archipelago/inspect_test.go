package main

import (
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/archipelago/internal/config"
	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/game"
	"chosenoffset.com/archipelago/internal/placeholders"
)

func TestRenderReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	if err := placeholders.WriteDemoWorld(dir); err != nil {
		t.Fatal(err)
	}
	w, err := game.LoadWorld(dir, config.Default(), nil, diag.Discard())
	if err != nil {
		t.Fatal(err)
	}

	report := renderReport(w)
	for _, want := range []string{
		"Demo Archipelago",
		"harbor -> grove",
		"harbor -> cliffs",
		"next to grove, cliffs",
		"5 islands",
		"2 bridges",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Expected report to contain %q:\n%s", want, report)
		}
	}
}

func TestResolveWorld(t *testing.T) {
	data := t.TempDir()
	if err := placeholders.WriteDemoWorld(filepath.Join(data, "demo")); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.World.DataDir = data

	entry, err := resolveWorld(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if entry.Dir != "demo" {
		t.Errorf("Expected the default world, got %+v", entry)
	}
	if _, err := resolveWorld(cfg, []string{"atlantis"}); err == nil {
		t.Error("Expected an error for an unknown world")
	}
}
