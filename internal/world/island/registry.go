package island

import "fmt"

// Registry is the ordered set of islands for one world load. Island indices
// are positions in this list and are what adjacency and bridges refer to.
type Registry struct {
	islands []*Island
	byID    map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]int)}
}

// Add validates and appends an island, returning its index.
func (r *Registry) Add(isl *Island) (int, error) {
	if err := isl.Validate(); err != nil {
		return -1, err
	}
	if _, exists := r.byID[isl.ID]; exists {
		return -1, fmt.Errorf("duplicate island id %q", isl.ID)
	}
	r.islands = append(r.islands, isl)
	r.byID[isl.ID] = len(r.islands) - 1
	return len(r.islands) - 1, nil
}

// Replace swaps every island for its placed counterpart, keeping indices.
func (r *Registry) Replace(placed []*Island) {
	r.islands = placed
	r.byID = make(map[string]int, len(placed))
	for i, isl := range placed {
		r.byID[isl.ID] = i
	}
}

// All returns the islands in index order.
func (r *Registry) All() []*Island {
	return r.islands
}

// Get returns the island at index i.
func (r *Registry) Get(i int) (*Island, bool) {
	if i < 0 || i >= len(r.islands) {
		return nil, false
	}
	return r.islands[i], true
}

// Index returns the index of the island with the given id.
func (r *Registry) Index(id string) (int, bool) {
	i, ok := r.byID[id]
	return i, ok
}

// Len returns the number of islands.
func (r *Registry) Len() int {
	return len(r.islands)
}

// Clear drops every island. Called on world unload.
func (r *Registry) Clear() {
	r.islands = nil
	r.byID = make(map[string]int)
}

// IndexAtTile returns the index of the island covering the shared-grid tile.
func (r *Registry) IndexAtTile(x, y int) (int, bool) {
	for i, isl := range r.islands {
		if isl.ContainsTile(x, y) {
			return i, true
		}
	}
	return -1, false
}
