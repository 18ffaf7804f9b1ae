// Package assembly composites the local grids of every island into the single
// shared world grid used for navigation and bridge detection.
package assembly

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/world/island"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// ErrNoIslands is returned when there is nothing to assemble.
var ErrNoIslands = errors.New("assembly: no islands")

// Layout describes how islands were shifted into shared-grid space.
type Layout struct {
	TileSize int
	Padding  float64
	OffsetX  float64 // added to every island x; a multiple of TileSize
	OffsetY  float64
	Width    int // shared grid width in tiles
	Height   int
}

// WorldToShared converts an original world position into shared-grid space.
func (l Layout) WorldToShared(x, y float64) (float64, float64) {
	return x + l.OffsetX, y + l.OffsetY
}

// Result is the assembled world.
type Result struct {
	Grid    *tile.Grid
	Islands []*island.Island // islands translated into shared-grid space, same order as input
	Layout  Layout
	Dropped int // tile writes that fell outside the grid
}

// ComputeLayout sizes the shared grid to the union bounds of the islands plus
// padding. The offset is snapped so island tiles stay on tile boundaries.
func ComputeLayout(islands []*island.Island, tileSize int, padding float64) (Layout, error) {
	if len(islands) == 0 {
		return Layout{}, ErrNoIslands
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, isl := range islands {
		minX = math.Min(minX, isl.Bounds.X)
		minY = math.Min(minY, isl.Bounds.Y)
		maxX = math.Max(maxX, isl.Bounds.Right())
		maxY = math.Max(maxY, isl.Bounds.Bottom())
	}
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding

	ts := float64(tileSize)
	offsetX := math.Ceil(-minX/ts) * ts
	offsetY := math.Ceil(-minY/ts) * ts

	return Layout{
		TileSize: tileSize,
		Padding:  padding,
		OffsetX:  offsetX,
		OffsetY:  offsetY,
		Width:    int(math.Ceil((maxX + offsetX) / ts)),
		Height:   int(math.Ceil((maxY + offsetY) / ts)),
	}, nil
}

// Build assembles the shared grid. Islands are translated by the layout
// offset and their local tiles copied at their tile offset. Writes outside the
// grid are dropped and reported.
func Build(islands []*island.Island, tileSize int, padding float64, log *logrus.Entry) (*Result, error) {
	layout, err := ComputeLayout(islands, tileSize, padding)
	if err != nil {
		return nil, err
	}
	return BuildWithLayout(islands, layout, log), nil
}

// BuildWithLayout assembles the shared grid using a precomputed layout.
func BuildWithLayout(islands []*island.Island, layout Layout, log *logrus.Entry) *Result {
	log = diag.OrDiscard(log)
	res := &Result{
		Grid:    tile.NewGrid(layout.Width, layout.Height),
		Islands: make([]*island.Island, 0, len(islands)),
		Layout:  layout,
	}

	for _, isl := range islands {
		placed := isl.Translated(layout.OffsetX, layout.OffsetY)
		res.Islands = append(res.Islands, placed)

		originX, originY, _, _ := placed.TileRange()
		dropped := 0
		placed.Local.Each(func(lx, ly int, t *tile.Tile) {
			if t == tile.Empty {
				return
			}
			if !res.Grid.Set(originX+lx-1, originY+ly-1, t) {
				dropped++
			}
		})

		if dropped > 0 {
			res.Dropped += dropped
			diag.With(log, diag.OutOfBounds).WithFields(logrus.Fields{
				"island":  placed.ID,
				"dropped": dropped,
			}).Warn("Island tiles outside shared grid; padding is likely too small")
		}
	}

	log.WithFields(logrus.Fields{
		"width":    layout.Width,
		"height":   layout.Height,
		"offset_x": layout.OffsetX,
		"offset_y": layout.OffsetY,
		"walkable": res.Grid.WalkableCount(),
	}).Debug("Shared grid assembled")
	return res
}
