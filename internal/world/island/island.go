// Package island holds the loaded island regions of a world and tracks which
// island an entity is standing on.
package island

import (
	"errors"
	"fmt"

	"chosenoffset.com/archipelago/internal/world/tile"
)

// ErrSizeMismatch is returned when an island's pixel bounds disagree with its
// local grid dimensions.
var ErrSizeMismatch = errors.New("island bounds do not match local grid size")

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the world point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Island is one loaded sub-map placed in world space.
type Island struct {
	ID       string
	Bounds   Rect
	TileSize int
	Local    *tile.Grid
}

// New creates an island at (x, y) whose size is derived from its local grid.
func New(id string, x, y float64, tileSize int, local *tile.Grid) *Island {
	return &Island{
		ID: id,
		Bounds: Rect{
			X: x,
			Y: y,
			W: float64(local.Width * tileSize),
			H: float64(local.Height * tileSize),
		},
		TileSize: tileSize,
		Local:    local,
	}
}

// WidthTiles returns the island width in tiles.
func (i *Island) WidthTiles() int { return i.Local.Width }

// HeightTiles returns the island height in tiles.
func (i *Island) HeightTiles() int { return i.Local.Height }

// Validate checks the bounds/grid invariant.
func (i *Island) Validate() error {
	if i.TileSize <= 0 {
		return fmt.Errorf("island %s: invalid tile size %d", i.ID, i.TileSize)
	}
	if i.Local == nil {
		return fmt.Errorf("island %s: missing local grid", i.ID)
	}
	if i.Bounds.W != float64(i.Local.Width*i.TileSize) || i.Bounds.H != float64(i.Local.Height*i.TileSize) {
		return fmt.Errorf("island %s: %.0fx%.0f px vs %dx%d tiles: %w",
			i.ID, i.Bounds.W, i.Bounds.H, i.Local.Width, i.Local.Height, ErrSizeMismatch)
	}
	return nil
}

// Translated returns a copy moved by (dx, dy). The local grid is shared.
func (i *Island) Translated(dx, dy float64) *Island {
	c := *i
	c.Bounds.X += dx
	c.Bounds.Y += dy
	return &c
}

// TileRange returns the inclusive shared-grid tile range covered by the island.
func (i *Island) TileRange() (minX, minY, maxX, maxY int) {
	minX = tile.WorldToTile(i.Bounds.X, i.TileSize)
	minY = tile.WorldToTile(i.Bounds.Y, i.TileSize)
	return minX, minY, minX + i.Local.Width - 1, minY + i.Local.Height - 1
}

// ContainsTile reports whether the shared-grid tile lies within the island.
func (i *Island) ContainsTile(x, y int) bool {
	minX, minY, maxX, maxY := i.TileRange()
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}
