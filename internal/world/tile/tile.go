// Package tile holds the tile records and tile grids shared by the island
// loader, world assembly, bridge detection and movement code.
//
// Tile coordinates are 1-based: the tile covering world pixel x is
// floor(x/tileSize)+1 and tile t starts at world pixel (t-1)*tileSize.
package tile

import "math"

// Tile is a single grid cell. Tiles are treated as immutable once placed in a
// grid; changing a cell means replacing its pointer with a new Tile.
type Tile struct {
	Walkable bool
	Type     int
	GID      int // visual id in the tileset, 0 = nothing to draw
	IsBridge bool
}

// Empty is the canonical non-walkable tile. Many grid cells point at it, so it
// must never be modified.
var Empty = &Tile{}

// New creates a tile record.
func New(walkable bool, tileType, gid int) *Tile {
	return &Tile{Walkable: walkable, Type: tileType, GID: gid}
}

// NewBridge creates a fresh walkable bridge tile.
func NewBridge(groundType, gid int) *Tile {
	return &Tile{Walkable: true, Type: groundType, GID: gid, IsBridge: true}
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// WorldToTile converts a world pixel coordinate to a 1-based tile index.
func WorldToTile(world float64, tileSize int) int {
	return int(math.Floor(world/float64(tileSize))) + 1
}

// TileToWorld returns the world pixel coordinate of the top/left edge of a tile.
func TileToWorld(t int, tileSize int) float64 {
	return float64((t - 1) * tileSize)
}

// WorldToTilePoint converts a world position into a tile point.
func WorldToTilePoint(x, y float64, tileSize int) Point {
	return Point{X: WorldToTile(x, tileSize), Y: WorldToTile(y, tileSize)}
}
