package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"chosenoffset.com/archipelago/internal/bridge"
	"chosenoffset.com/archipelago/internal/components"
	"chosenoffset.com/archipelago/internal/config"
	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/physics"
	"chosenoffset.com/archipelago/internal/render"
	"chosenoffset.com/archipelago/internal/world/assembly"
	"chosenoffset.com/archipelago/internal/world/atlas"
	"chosenoffset.com/archipelago/internal/world/island"
	"chosenoffset.com/archipelago/internal/world/maploader"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// World is everything built for one load of a world directory. A reload
// builds a new World from scratch.
type World struct {
	Name     string
	Dir      string
	TileSize int
	Atlas    *atlas.Atlas
	Registry *island.Registry
	Layout   assembly.Layout
	Grid     *tile.Grid
	Bridges  *bridge.System
	Physics  *physics.World
	ECS      donburi.World
	Failed   map[string]error
	Spawn    tile.Point
}

// BridgeOptions converts the bridge config section.
func BridgeOptions(cfg config.Config) (bridge.Options, error) {
	clr, err := cfg.Bridge.Color()
	if err != nil {
		return bridge.Options{}, err
	}
	return bridge.Options{
		AdjacencyDistanceTiles: cfg.Bridge.AdjacencyDistanceTiles,
		MaxDistanceTiles:       cfg.Bridge.MaxDistanceTiles,
		VisualGID:              cfg.Bridge.VisualGID,
		WalkableGroundType:     cfg.Bridge.WalkableGroundType,
		FallbackColor:          clr,
	}, nil
}

// LoadWorld runs the load pipeline: islands are loaded and composited into the
// shared grid, island collision is built, then bridges are detected and
// applied to both the grid and the collision geometry. loader may be nil for
// headless use.
func LoadWorld(dir string, cfg config.Config, loader render.ResourceLoader, log *logrus.Entry) (*World, error) {
	log = diag.OrDiscard(log)
	ts := cfg.World.TileSize
	opts, err := BridgeOptions(cfg)
	if err != nil {
		return nil, err
	}

	loaded, err := maploader.LoadWorld(dir, ts, loader, log)
	if err != nil {
		return nil, err
	}

	assembled, err := assembly.Build(loaded.Islands, ts, cfg.World.Padding, log)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble world %s: %w", dir, err)
	}

	registry := island.NewRegistry()
	for _, isl := range assembled.Islands {
		if _, err := registry.Add(isl); err != nil {
			return nil, fmt.Errorf("failed to register island %s: %w", isl.ID, err)
		}
	}

	w := &World{
		Name:     loaded.Manifest.Name,
		Dir:      dir,
		TileSize: ts,
		Atlas:    loaded.Atlas,
		Registry: registry,
		Layout:   assembled.Layout,
		Grid:     assembled.Grid,
		Physics:  physics.NewWorld(assembled.Grid.Width, assembled.Grid.Height, ts, log),
		ECS:      donburi.NewWorld(),
		Failed:   loaded.Failed,
	}

	for i, isl := range registry.All() {
		components.CreateIsland(w.ECS, i, isl)
	}
	components.SyncWalls(w.ECS, w.Physics.Build(w.Grid))

	w.Bridges = bridge.Initialize(registry.All(), ts, w.Grid, opts, log)
	components.SyncWalls(w.ECS, w.Bridges.Apply(w.Grid, w.Physics))

	w.Spawn = w.resolveSpawn(loaded.Manifest.PlayerSpawn, log)

	log.WithFields(logrus.Fields{
		"world":   w.Name,
		"islands": registry.Len(),
		"bridges": len(w.Bridges.Bridges()),
		"bodies":  w.Physics.Len(),
	}).Info("World ready")
	return w, nil
}

// resolveSpawn turns the manifest spawn into a shared-grid tile. A missing or
// blocked spawn falls back to the first walkable tile of the first island.
func (w *World) resolveSpawn(sp maploader.SpawnPoint, log *logrus.Entry) tile.Point {
	if idx, ok := w.Registry.Index(sp.Island); ok {
		isl, _ := w.Registry.Get(idx)
		minX, minY, _, _ := isl.TileRange()
		p := tile.Point{X: minX + sp.X - 1, Y: minY + sp.Y - 1}
		if isl.ContainsTile(p.X, p.Y) && w.Grid.Walkable(p.X, p.Y) {
			return p
		}
	}

	for _, isl := range w.Registry.All() {
		if pts := bridge.WalkableTiles(isl, w.Grid); len(pts) > 0 {
			log.WithField("island", isl.ID).Warn("Player spawn unusable, using first walkable tile")
			return pts[0]
		}
	}
	log.Warn("World has no walkable tiles")
	return tile.Point{X: 1, Y: 1}
}

// PixelSize returns the shared grid size in pixels.
func (w *World) PixelSize() (float64, float64) {
	return float64(w.Grid.Width * w.TileSize), float64(w.Grid.Height * w.TileSize)
}

// Unload drops the bridge state and every body.
func (w *World) Unload() {
	w.Bridges.Unload()
	w.Physics.Clear()
	w.Registry.Clear()
}
