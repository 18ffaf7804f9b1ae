package bridge

import (
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/archipelago/internal/world/island"
)

// Adjacency is the symmetric neighbour relation between islands, indexed by
// island position in the registry.
type Adjacency struct {
	neighbors []mapset.Set[int]
}

// BuildAdjacency tests every unordered pair of islands. Two islands are
// neighbours when the gap between them on one axis is within tolerance
// (in pixels) and their extents overlap on the other axis.
//
// This is O(n²) in the number of islands, which is fine for the tens of
// islands a world holds.
func BuildAdjacency(islands []*island.Island, tolerance float64) *Adjacency {
	adj := &Adjacency{neighbors: make([]mapset.Set[int], len(islands))}
	for i := range adj.neighbors {
		adj.neighbors[i] = mapset.New[int]()
	}

	for i := 0; i < len(islands); i++ {
		for j := i + 1; j < len(islands); j++ {
			if Adjacent(islands[i].Bounds, islands[j].Bounds, tolerance) {
				adj.neighbors[i].Put(j)
				adj.neighbors[j].Put(i)
			}
		}
	}
	return adj
}

// Adjacent reports whether two bounding boxes are neighbours under tolerance.
func Adjacent(a, b island.Rect, tolerance float64) bool {
	horizontalGap := math.Max(a.X-b.Right(), b.X-a.Right())
	verticalGap := math.Max(a.Y-b.Bottom(), b.Y-a.Bottom())

	yOverlap := a.Y < b.Bottom() && b.Y < a.Bottom()
	xOverlap := a.X < b.Right() && b.X < a.Right()

	horizontal := horizontalGap >= 0 && horizontalGap <= tolerance && yOverlap
	vertical := verticalGap >= 0 && verticalGap <= tolerance && xOverlap
	return horizontal || vertical
}

// Len returns the number of islands covered.
func (a *Adjacency) Len() int {
	return len(a.neighbors)
}

// Adjacent reports whether islands i and j are neighbours.
func (a *Adjacency) Adjacent(i, j int) bool {
	if i < 0 || i >= len(a.neighbors) {
		return false
	}
	return a.neighbors[i].Has(j)
}

// Neighbors returns the sorted neighbour indices of island i.
func (a *Adjacency) Neighbors(i int) []int {
	if i < 0 || i >= len(a.neighbors) {
		return nil
	}
	out := make([]int, 0, a.neighbors[i].Size())
	a.neighbors[i].Each(func(j int) {
		out = append(out, j)
	})
	sort.Ints(out)
	return out
}

// Pairs returns each adjacent pair once as (i, j) with i < j, in ascending order.
func (a *Adjacency) Pairs() [][2]int {
	var pairs [][2]int
	for i := range a.neighbors {
		for _, j := range a.Neighbors(i) {
			if i < j {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// Map returns the adjacency as a plain map. Islands without neighbours map
// to an empty list.
func (a *Adjacency) Map() map[int][]int {
	m := make(map[int][]int, len(a.neighbors))
	for i := range a.neighbors {
		m[i] = a.Neighbors(i)
	}
	return m
}
