package tile

// Grid is a fixed-size 2D array of tiles addressed with 1-based coordinates.
// Cells outside the grid read as non-walkable.
type Grid struct {
	Width  int
	Height int
	cells  []*Tile
}

// NewGrid allocates a grid where every cell points at Empty.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]*Tile, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 1 && y >= 1 && x <= g.Width && y <= g.Height
}

func (g *Grid) index(x, y int) int {
	return (y-1)*g.Width + (x - 1)
}

// At returns the tile at (x, y), or Empty when out of bounds.
func (g *Grid) At(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.index(x, y)]
}

// Walkable reports whether the tile at (x, y) can be walked on.
func (g *Grid) Walkable(x, y int) bool {
	return g.At(x, y).Walkable
}

// Set replaces the tile at (x, y). It returns false and leaves the grid
// untouched when the coordinate is out of bounds.
func (g *Grid) Set(x, y int, t *Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	if t == nil {
		t = Empty
	}
	g.cells[g.index(x, y)] = t
	return true
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, t *Tile)) {
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			fn(x, y, g.cells[g.index(x, y)])
		}
	}
}

// WalkableCount returns how many cells are walkable.
func (g *Grid) WalkableCount() int {
	n := 0
	for _, t := range g.cells {
		if t.Walkable {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same size and tile values.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		if *g.cells[i] != *other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy. Tile records are shared because they are
// never modified in place.
func (g *Grid) Clone() *Grid {
	cells := make([]*Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}
