package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"chosenoffset.com/archipelago/internal/physics"
	"chosenoffset.com/archipelago/internal/world/island"
)

// CreateIsland spawns an entity for an island.
func CreateIsland(w donburi.World, index int, isl *island.Island) *donburi.Entry {
	entry := w.Entry(w.Create(Island))
	Island.SetValue(entry, IslandData{Index: index, ID: isl.ID, Bounds: isl.Bounds})
	return entry
}

// CreateWall spawns an entity for a static body already in the physics world.
func CreateWall(w donburi.World, obj *resolv.Object) *donburi.Entry {
	entry := w.Entry(w.Create(Wall, Object))
	Object.SetValue(entry, ObjectData{Object: obj})
	obj.Data = entry.Entity()
	return entry
}

// CreatePlayer spawns the player and adds its body to the physics world.
func CreatePlayer(w donburi.World, space *physics.World, x, y, size, speed float64) *donburi.Entry {
	entry := w.Entry(w.Create(Player, Object))

	obj := resolv.NewObject(x, y, size, size, physics.TagPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry.Entity()
	space.AddBody(obj)

	Object.SetValue(entry, ObjectData{Object: obj})
	Player.SetValue(entry, PlayerData{Speed: speed})
	return entry
}

// SyncWalls mirrors a physics sync into wall entities.
func SyncWalls(w donburi.World, res physics.SyncResult) {
	for _, obj := range res.Removed {
		if e, ok := obj.Data.(donburi.Entity); ok && w.Valid(e) {
			w.Remove(e)
		}
	}
	for _, obj := range res.Added {
		CreateWall(w, obj)
	}
}

// CountWalls returns the number of wall entities.
func CountWalls(w donburi.World) int {
	return donburi.NewQuery(filter.Contains(Wall)).Count(w)
}

// EachIsland visits every island entity.
func EachIsland(w donburi.World, fn func(*IslandData)) {
	donburi.NewQuery(filter.Contains(Island)).Each(w, func(entry *donburi.Entry) {
		fn(Island.Get(entry))
	})
}
