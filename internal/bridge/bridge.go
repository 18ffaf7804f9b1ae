// Package bridge finds where neighbouring islands can be joined by a straight
// run of tiles and patches the shared grid and collision geometry so those
// runs can be walked.
package bridge

import (
	"fmt"
	"math"

	"chosenoffset.com/archipelago/internal/world/tile"
)

// Direction is the primary direction from one island to another.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Orientation is the axis a bridge runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Bridge is a straight run of tiles between an edge tile of one island and an
// edge tile of a neighbouring island. From and To share exactly one axis.
type Bridge struct {
	From       tile.Point
	To         tile.Point
	FromIsland int
	ToIsland   int
	Direction  Direction // from FromIsland towards ToIsland
}

// Orientation returns the bridge axis. It panics when the record is neither
// horizontal nor vertical, which can only come from a detection bug.
func (b Bridge) Orientation() Orientation {
	sameY := b.From.Y == b.To.Y
	sameX := b.From.X == b.To.X
	switch {
	case sameY && !sameX:
		return Horizontal
	case sameX && !sameY:
		return Vertical
	default:
		panic(fmt.Sprintf("bridge: invalid bridge %v -> %v: endpoints must differ on exactly one axis", b.From, b.To))
	}
}

// Length returns the Euclidean tile distance between the endpoints.
func (b Bridge) Length() float64 {
	return tileDistance(b.From, b.To)
}

// Tiles returns every tile from min to max along the bridge axis, endpoints
// included.
func (b Bridge) Tiles() []tile.Point {
	var pts []tile.Point
	if b.Orientation() == Horizontal {
		lo, hi := minMax(b.From.X, b.To.X)
		for x := lo; x <= hi; x++ {
			pts = append(pts, tile.Point{X: x, Y: b.From.Y})
		}
		return pts
	}
	lo, hi := minMax(b.From.Y, b.To.Y)
	for y := lo; y <= hi; y++ {
		pts = append(pts, tile.Point{X: b.From.X, Y: y})
	}
	return pts
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

func tileDistance(a, b tile.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
