package bridge

import (
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/world/island"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// PrimaryDirection returns the direction from a's center to b's center. When
// |dx| <= |dy| the vertical axis wins, so exact diagonals resolve to north or
// south.
func PrimaryDirection(a, b island.Rect) Direction {
	ax, ay := a.Center()
	bx, by := b.Center()
	dx, dy := bx-ax, by-ay

	if math.Abs(dx) <= math.Abs(dy) {
		if dy > 0 {
			return South
		}
		return North
	}
	if dx > 0 {
		return East
	}
	return West
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// WalkableTiles scans the island's tile range against the shared grid and
// returns every walkable tile in row-major order.
func WalkableTiles(isl *island.Island, grid *tile.Grid) []tile.Point {
	minX, minY, maxX, maxY := isl.TileRange()
	var pts []tile.Point
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if grid.Walkable(x, y) {
				pts = append(pts, tile.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// FacingEdge keeps the tiles on the extreme row or column facing d.
// Order is preserved.
func FacingEdge(tiles []tile.Point, d Direction) []tile.Point {
	if len(tiles) == 0 {
		return nil
	}

	key := func(p tile.Point) int {
		switch d {
		case East:
			return p.X
		case West:
			return -p.X
		case South:
			return p.Y
		default:
			return -p.Y
		}
	}

	best := key(tiles[0])
	for _, p := range tiles[1:] {
		if k := key(p); k > best {
			best = k
		}
	}

	var edge []tile.Point
	for _, p := range tiles {
		if key(p) == best {
			edge = append(edge, p)
		}
	}
	return edge
}

// closestAligned returns the nearest pair that shares exactly one axis. The
// first minimal pair found wins.
func closestAligned(from, to []tile.Point) (tile.Point, tile.Point, float64, bool) {
	var bestFrom, bestTo tile.Point
	bestDist := math.Inf(1)
	found := false

	for _, a := range from {
		for _, b := range to {
			if (a.X == b.X) == (a.Y == b.Y) {
				// diagonal, or the same tile
				continue
			}
			if d := tileDistance(a, b); d < bestDist {
				bestFrom, bestTo, bestDist = a, b, d
				found = true
			}
		}
	}
	return bestFrom, bestTo, bestDist, found
}

// Detector searches adjacent island pairs for bridge placements.
type Detector struct {
	MaxDistanceTiles float64
	Log              *logrus.Entry
}

// Detect runs over each adjacent pair (i, j) with i < j exactly once, in
// ascending order, and returns at most one bridge per pair. Non-adjacent
// pairs are never examined.
func (d *Detector) Detect(islands []*island.Island, grid *tile.Grid, adj *Adjacency) []Bridge {
	walkable := make([][]tile.Point, len(islands))
	for i, isl := range islands {
		walkable[i] = WalkableTiles(isl, grid)
	}

	var bridges []Bridge
	for _, pair := range adj.Pairs() {
		i, j := pair[0], pair[1]
		if b, ok := d.detectPair(islands, walkable, i, j); ok {
			bridges = append(bridges, b)
		}
	}
	return bridges
}

func (d *Detector) detectPair(islands []*island.Island, walkable [][]tile.Point, i, j int) (Bridge, bool) {
	a, b := islands[i], islands[j]
	fields := logrus.Fields{"from": a.ID, "to": b.ID}

	if len(walkable[i]) == 0 || len(walkable[j]) == 0 {
		diag.With(d.Log, diag.NoWalkableTiles).WithFields(fields).Debug("Skipping pair without walkable tiles")
		return Bridge{}, false
	}

	dir := PrimaryDirection(a.Bounds, b.Bounds)
	fromEdge := FacingEdge(walkable[i], dir)
	toEdge := FacingEdge(walkable[j], dir.Opposite())

	from, to, dist, ok := closestAligned(fromEdge, toEdge)
	if !ok || dist > d.MaxDistanceTiles {
		diag.With(d.Log, diag.NoAlignedPair).WithFields(fields).WithField("direction", dir.String()).
			Debug("No aligned edge tiles within bridge span")
		return Bridge{}, false
	}

	br := Bridge{From: from, To: to, FromIsland: i, ToIsland: j, Direction: dir}
	diag.With(d.Log, diag.BridgeCreated).WithFields(fields).WithFields(logrus.Fields{
		"direction": dir.String(),
		"from_tile": from,
		"to_tile":   to,
		"length":    dist,
	}).Info("Bridge created")
	return br, true
}
