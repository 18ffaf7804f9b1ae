package bridge

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/archipelago/internal/physics"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// MarkWalkable writes a fresh bridge tile into every cell the bridges cross
// and returns the number of cells written. Cells are replaced, never mutated,
// so tiles shared between cells are left alone. Running it again on the same
// grid writes equal records and leaves the grid unchanged.
func MarkWalkable(grid *tile.Grid, bridges []Bridge, groundType, gid int) int {
	written := 0
	for _, b := range bridges {
		for _, p := range b.Tiles() {
			if grid.Set(p.X, p.Y, tile.NewBridge(groundType, gid)) {
				written++
			}
		}
	}
	return written
}

// TilePositions returns every tile crossed by the bridges. A tile shared by
// several bridges is listed once, at its first occurrence.
func TilePositions(bridges []Bridge) []tile.Point {
	seen := mapset.New[tile.Point]()
	var out []tile.Point
	for _, b := range bridges {
		for _, p := range b.Tiles() {
			if seen.Has(p) {
				continue
			}
			seen.Put(p)
			out = append(out, p)
		}
	}
	return out
}

// ApplyBridges marks the bridge tiles walkable and brings the static
// collision geometry in line with the patched grid. Island geometry built
// before bridges were known is kept where it still applies.
func ApplyBridges(bridges []Bridge, grid *tile.Grid, world *physics.World, groundType, gid int) physics.SyncResult {
	MarkWalkable(grid, bridges, groundType, gid)
	return world.Sync(grid)
}
