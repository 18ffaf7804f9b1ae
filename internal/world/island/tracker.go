package island

// EventType identifies a tracker transition.
type EventType int

const (
	// Entered is emitted when the tracked position moves onto an island.
	Entered EventType = iota
	// Left is emitted when the tracked position leaves an island for open ground
	// such as a bridge.
	Left
)

// Event describes an island transition.
type Event struct {
	Type    EventType
	Index   int
	Island  *Island
	IsFirst bool // first visit to this island during the load
}

// Tracker follows a tile position across the islands of a registry.
type Tracker struct {
	registry *Registry
	visited  map[int]bool
	current  int
	last     int

	// OnEvent is called for every transition.
	OnEvent func(Event)
}

// NewTracker creates a tracker positioned nowhere.
func NewTracker(registry *Registry) *Tracker {
	return &Tracker{
		registry: registry,
		visited:  make(map[int]bool),
		current:  -1,
		last:     -1,
	}
}

// Current returns the island index under the tracked position, or -1.
func (t *Tracker) Current() int {
	return t.current
}

// CurrentIsland returns the island under the tracked position.
func (t *Tracker) CurrentIsland() *Island {
	isl, _ := t.registry.Get(t.current)
	return isl
}

// Visited reports whether the island was entered at least once.
func (t *Tracker) Visited(index int) bool {
	return t.visited[index]
}

// Update moves the tracked position and returns the transition, if any.
func (t *Tracker) Update(tileX, tileY int) *Event {
	idx, ok := t.registry.IndexAtTile(tileX, tileY)
	if !ok {
		idx = -1
	}
	if idx == t.current {
		return nil
	}

	t.last = t.current
	t.current = idx

	var ev Event
	switch {
	case idx >= 0:
		first := !t.visited[idx]
		t.visited[idx] = true
		isl, _ := t.registry.Get(idx)
		ev = Event{Type: Entered, Index: idx, Island: isl, IsFirst: first}
	case t.last >= 0:
		isl, _ := t.registry.Get(t.last)
		ev = Event{Type: Left, Index: t.last, Island: isl}
	default:
		return nil
	}

	if t.OnEvent != nil {
		t.OnEvent(ev)
	}
	return &ev
}
