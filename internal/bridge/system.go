package bridge

import (
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/physics"
	"chosenoffset.com/archipelago/internal/world/island"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// Options are the bridge tunables.
type Options struct {
	AdjacencyDistanceTiles float64
	MaxDistanceTiles       float64
	VisualGID              int
	WalkableGroundType     int
	FallbackColor          color.Color
}

// DefaultOptions returns the stock tunables.
func DefaultOptions() Options {
	return Options{
		AdjacencyDistanceTiles: 3,
		MaxDistanceTiles:       5,
		VisualGID:              0,
		WalkableGroundType:     1,
		FallbackColor:          color.RGBA{R: 139, G: 94, B: 60, A: 255},
	}
}

// System holds the bridge state for one loaded world. Build a new one on every
// load and drop it on unload.
type System struct {
	opts      Options
	tileSize  int
	islands   []*island.Island
	adjacency *Adjacency
	bridges   []Bridge
	positions []tile.Point
	onBridge  mapset.Set[tile.Point]

	log          *logrus.Entry
	warnedRender bool
}

// Initialize builds the adjacency map and detects bridges. The islands must
// already be in shared-grid space and the grid assembled.
func Initialize(islands []*island.Island, tileSize int, grid *tile.Grid, opts Options, log *logrus.Entry) *System {
	s := &System{
		opts:     opts,
		tileSize: tileSize,
		islands:  islands,
		log:      diag.OrDiscard(log).WithField("component", "bridge"),
	}

	tolerance := opts.AdjacencyDistanceTiles * float64(tileSize)
	s.adjacency = BuildAdjacency(islands, tolerance)

	detector := &Detector{MaxDistanceTiles: opts.MaxDistanceTiles, Log: s.log}
	s.bridges = detector.Detect(islands, grid, s.adjacency)

	s.positions = TilePositions(s.bridges)
	s.onBridge = mapset.New[tile.Point]()
	for _, p := range s.positions {
		s.onBridge.Put(p)
	}

	s.log.WithFields(logrus.Fields{
		"islands": len(islands),
		"pairs":   len(s.adjacency.Pairs()),
		"bridges": len(s.bridges),
	}).Info("Bridges detected")
	return s
}

// Bridges returns the detected bridges in detection order.
func (s *System) Bridges() []Bridge {
	return s.bridges
}

// Adjacency returns the island neighbour relation.
func (s *System) Adjacency() *Adjacency {
	return s.adjacency
}

// AdjacencyMap returns the neighbour lists keyed by island index.
func (s *System) AdjacencyMap() map[int][]int {
	return s.adjacency.Map()
}

// BridgeTilePositions returns each bridge tile once.
func (s *System) BridgeTilePositions() []tile.Point {
	return s.positions
}

// IsBridgeTile reports whether a tile lies on a bridge.
func (s *System) IsBridgeTile(x, y int) bool {
	return s.onBridge.Has(tile.Point{X: x, Y: y})
}

// MarkBridgeTilesWalkable patches the grid. Safe to call more than once.
func (s *System) MarkBridgeTilesWalkable(grid *tile.Grid) {
	n := MarkWalkable(grid, s.bridges, s.opts.WalkableGroundType, s.opts.VisualGID)
	s.log.WithField("tiles", n).Debug("Bridge tiles marked walkable")
}

// Apply marks the bridge tiles and resyncs the collision geometry, returning
// the bodies that changed.
func (s *System) Apply(grid *tile.Grid, world *physics.World) physics.SyncResult {
	res := ApplyBridges(s.bridges, grid, world, s.opts.WalkableGroundType, s.opts.VisualGID)
	s.log.WithFields(logrus.Fields{
		"added":   len(res.Added),
		"removed": len(res.Removed),
	}).Debug("Bridge collision applied")
	return res
}

// Unload drops all bridge state.
func (s *System) Unload() {
	s.islands = nil
	s.adjacency = &Adjacency{}
	s.bridges = nil
	s.positions = nil
	s.onBridge = mapset.New[tile.Point]()
}
