// Package components declares the ECS component types of the game world.
package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"chosenoffset.com/archipelago/internal/world/island"
)

// IslandData links an entity to an island of the registry.
type IslandData struct {
	Index  int
	ID     string
	Bounds island.Rect
}

// ObjectData holds a collision body.
type ObjectData struct {
	Object *resolv.Object
}

// PlayerData holds player movement state.
type PlayerData struct {
	Speed    float64
	OnBridge bool
}

var (
	Island = donburi.NewComponentType[IslandData]()
	Object = donburi.NewComponentType[ObjectData]()
	Player = donburi.NewComponentType[PlayerData]()

	// Wall tags static blocker bodies.
	Wall = donburi.NewTag()
)
