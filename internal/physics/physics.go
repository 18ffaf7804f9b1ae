// Package physics owns the static collision geometry of the shared world grid.
//
// Blockers are the non-walkable cells that touch a walkable cell. Each row's
// blockers are merged into horizontal runs and every run becomes one immovable
// resolv body tagged TagSolid. Sync rebuilds the desired runs from the grid
// and only touches bodies whose run changed, so re-running it after bridges
// are marked never duplicates geometry.
package physics

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"

	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/world/tile"
)

const (
	// TagSolid marks static blocker bodies.
	TagSolid = "solid"
	// TagPlayer marks the player body.
	TagPlayer = "player"
)

// Region is a rectangle in shared-grid world space, in pixels.
type Region struct {
	X, Y, W, H float64
}

// Overlaps reports whether two regions share any area.
func (r Region) Overlaps(o Region) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// TileRegion returns the pixel rectangle covered by a 1-based tile.
func TileRegion(x, y, tileSize int) Region {
	ts := float64(tileSize)
	return Region{X: tile.TileToWorld(x, tileSize), Y: tile.TileToWorld(y, tileSize), W: ts, H: ts}
}

// SyncResult lists the bodies changed by a Build or Sync.
type SyncResult struct {
	Added   []*resolv.Object
	Removed []*resolv.Object
}

// World is a resolv space plus the index of static bodies by region.
type World struct {
	space    *resolv.Space
	tileSize int
	bodies   map[Region]*resolv.Object
	log      *logrus.Entry
}

// NewWorld creates a space covering a grid of the given size.
func NewWorld(widthTiles, heightTiles, tileSize int, log *logrus.Entry) *World {
	return &World{
		space:    resolv.NewSpace(widthTiles*tileSize, heightTiles*tileSize, tileSize, tileSize),
		tileSize: tileSize,
		bodies:   make(map[Region]*resolv.Object),
		log:      diag.OrDiscard(log),
	}
}

// Space exposes the underlying resolv space.
func (w *World) Space() *resolv.Space {
	return w.space
}

// TileSize returns the cell size the world was built with.
func (w *World) TileSize() int {
	return w.tileSize
}

// CreateStaticBody adds one immovable collision volume. Creating a body for a
// region that already has one returns the existing body.
func (w *World) CreateStaticBody(r Region) *resolv.Object {
	if obj, ok := w.bodies[r]; ok {
		return obj
	}
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	w.space.Add(obj)
	w.bodies[r] = obj
	return obj
}

func (w *World) removeStaticBody(r Region) *resolv.Object {
	obj, ok := w.bodies[r]
	if !ok {
		return nil
	}
	w.space.Remove(obj)
	delete(w.bodies, r)
	return obj
}

// BlockerRegions derives the collision runs for a grid, in row-major order.
func BlockerRegions(grid *tile.Grid, tileSize int) []Region {
	ts := float64(tileSize)
	var regions []Region

	for y := 1; y <= grid.Height; y++ {
		runStart := 0
		flush := func(end int) {
			if runStart == 0 {
				return
			}
			regions = append(regions, Region{
				X: tile.TileToWorld(runStart, tileSize),
				Y: tile.TileToWorld(y, tileSize),
				W: float64(end-runStart+1) * ts,
				H: ts,
			})
			runStart = 0
		}

		for x := 1; x <= grid.Width; x++ {
			if isBlocker(grid, x, y) {
				if runStart == 0 {
					runStart = x
				}
				continue
			}
			flush(x - 1)
		}
		flush(grid.Width)
	}
	return regions
}

func isBlocker(grid *tile.Grid, x, y int) bool {
	if grid.Walkable(x, y) {
		return false
	}
	return grid.Walkable(x-1, y) || grid.Walkable(x+1, y) ||
		grid.Walkable(x, y-1) || grid.Walkable(x, y+1)
}

// Build creates the initial static bodies for a grid.
func (w *World) Build(grid *tile.Grid) SyncResult {
	return w.Sync(grid)
}

// Sync brings the static bodies in line with the grid. Bodies whose region is
// still wanted are kept as they are.
func (w *World) Sync(grid *tile.Grid) SyncResult {
	wanted := make(map[Region]bool)
	desired := BlockerRegions(grid, w.tileSize)
	for _, r := range desired {
		wanted[r] = true
	}

	var res SyncResult
	for _, r := range w.sortedRegions() {
		if !wanted[r] {
			res.Removed = append(res.Removed, w.removeStaticBody(r))
		}
	}
	for _, r := range desired {
		if _, ok := w.bodies[r]; ok {
			continue
		}
		res.Added = append(res.Added, w.CreateStaticBody(r))
	}

	w.log.WithFields(logrus.Fields{
		"added":   len(res.Added),
		"removed": len(res.Removed),
		"bodies":  len(w.bodies),
	}).Debug("Static collision synced")
	return res
}

func (w *World) sortedRegions() []Region {
	regions := make([]Region, 0, len(w.bodies))
	for r := range w.bodies {
		regions = append(regions, r)
	}
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Y != regions[j].Y {
			return regions[i].Y < regions[j].Y
		}
		return regions[i].X < regions[j].X
	})
	return regions
}

// Bodies returns the static bodies in row-major order.
func (w *World) Bodies() []*resolv.Object {
	regions := w.sortedRegions()
	out := make([]*resolv.Object, len(regions))
	for i, r := range regions {
		out[i] = w.bodies[r]
	}
	return out
}

// Regions returns the static body rectangles in row-major order.
func (w *World) Regions() []Region {
	return w.sortedRegions()
}

// Len returns the number of static bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Covers reports whether any static body overlaps the given tile.
func (w *World) Covers(x, y int) bool {
	cell := TileRegion(x, y, w.tileSize)
	for r := range w.bodies {
		if r.Overlaps(cell) {
			return true
		}
	}
	return false
}

// AddBody adds a dynamic body, such as the player.
func (w *World) AddBody(obj *resolv.Object) {
	w.space.Add(obj)
}

// RemoveBody removes a dynamic body.
func (w *World) RemoveBody(obj *resolv.Object) {
	w.space.Remove(obj)
}

// Move displaces a dynamic body one axis at a time, cancelling any axis whose
// step would hit a solid body. It returns the applied displacement.
func (w *World) Move(obj *resolv.Object, dx, dy float64) (float64, float64) {
	if dx != 0 && obj.Check(dx, 0, TagSolid) != nil {
		dx = 0
	}
	obj.X += dx
	obj.Update()

	if dy != 0 && obj.Check(0, dy, TagSolid) != nil {
		dy = 0
	}
	obj.Y += dy
	obj.Update()

	return dx, dy
}

// Clear removes every static body.
func (w *World) Clear() {
	for r := range w.bodies {
		w.removeStaticBody(r)
	}
}
