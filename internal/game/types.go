package game

import "image/color"

// Camera tracks the viewport position for scrolling large worlds.
type Camera struct {
	X, Y float64 // top-left corner of the viewport in world coords
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

var (
	colorWater    = color.RGBA{24, 56, 96, 255}
	colorGround   = color.RGBA{194, 178, 128, 255}
	colorBlocked  = color.RGBA{70, 70, 70, 255}
	colorPlayer   = color.RGBA{230, 60, 60, 255}
	colorBody     = color.RGBA{255, 0, 255, 160}
	colorIslandBB = color.RGBA{255, 255, 255, 120}
)
