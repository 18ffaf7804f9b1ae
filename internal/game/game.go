package game

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"chosenoffset.com/archipelago/internal/components"
	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/render"
	"chosenoffset.com/archipelago/internal/world/island"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// Game holds the state of one loaded world being played.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	World        *World
	Player       *donburi.Entry
	Camera       Camera
	Tracker      *island.Tracker
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// UI state
	Messages    []Message
	ShowOverlay bool

	log *logrus.Entry
}

// NewGame spawns the player on the world's spawn tile.
func NewGame(w *World, r render.Renderer, input render.InputManager, width, height int, speed, size float64, log *logrus.Entry) *Game {
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		World:        w,
		Renderer:     r,
		InputMgr:     input,
		Tracker:      island.NewTracker(w.Registry),
		log:          diag.OrDiscard(log),
	}

	// Centre the player body in the spawn tile.
	inset := (float64(w.TileSize) - size) / 2
	x := tile.TileToWorld(w.Spawn.X, w.TileSize) + inset
	y := tile.TileToWorld(w.Spawn.Y, w.TileSize) + inset
	g.Player = components.CreatePlayer(w.ECS, w.Physics, x, y, size, speed)

	g.Tracker.OnEvent = g.onIslandEvent
	g.updateTracking()
	g.UpdateCamera()
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyB) {
		g.ShowOverlay = !g.ShowOverlay
	}

	var dx, dy float64
	if g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp) {
		dy--
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		dy++
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft) {
		dx--
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight) {
		dx++
	}

	if dx != 0 || dy != 0 {
		speed := components.Player.Get(g.Player).Speed
		if dx != 0 && dy != 0 {
			speed /= math.Sqrt2
		}
		g.MovePlayer(dx*speed, dy*speed)
	}

	g.UpdateCamera()
	return nil
}

// MovePlayer moves the player body. Each axis must keep the body on walkable
// tiles and clear of static bodies.
func (g *Game) MovePlayer(dx, dy float64) (float64, float64) {
	obj := components.Object.Get(g.Player).Object

	if dx != 0 && !g.rectWalkable(obj.X+dx, obj.Y, obj.W, obj.H) {
		dx = 0
	}
	dx, _ = g.World.Physics.Move(obj, dx, 0)

	// y is checked from where x actually ended up.
	if dy != 0 && !g.rectWalkable(obj.X, obj.Y+dy, obj.W, obj.H) {
		dy = 0
	}
	_, dy = g.World.Physics.Move(obj, 0, dy)

	g.updateTracking()
	return dx, dy
}

func (g *Game) rectWalkable(x, y, w, h float64) bool {
	ts := g.World.TileSize
	// Right and bottom edges are exclusive.
	const eps = 1e-6
	minX, minY := tile.WorldToTile(x, ts), tile.WorldToTile(y, ts)
	maxX, maxY := tile.WorldToTile(x+w-eps, ts), tile.WorldToTile(y+h-eps, ts)
	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if !g.World.Grid.Walkable(tx, ty) {
				return false
			}
		}
	}
	return true
}

// PlayerTile returns the tile under the centre of the player body.
func (g *Game) PlayerTile() tile.Point {
	obj := components.Object.Get(g.Player).Object
	return tile.WorldToTilePoint(obj.X+obj.W/2, obj.Y+obj.H/2, g.World.TileSize)
}

func (g *Game) updateTracking() {
	p := g.PlayerTile()
	components.Player.Get(g.Player).OnBridge = g.World.Bridges.IsBridgeTile(p.X, p.Y)
	g.Tracker.Update(p.X, p.Y)
}

func (g *Game) onIslandEvent(ev island.Event) {
	switch {
	case ev.Type == island.Entered && ev.IsFirst:
		g.ShowMessage(fmt.Sprintf("Discovered %s", ev.Island.ID))
	case ev.Type == island.Entered:
		g.ShowMessage(fmt.Sprintf("Back on %s", ev.Island.ID))
	case ev.Type == island.Left && components.Player.Get(g.Player).OnBridge:
		g.ShowMessage(fmt.Sprintf("Crossing from %s", ev.Island.ID))
	}
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	g.log.WithField("message", text).Debug("Message shown")
}

// UpdateCamera updates the camera to follow the player.
func (g *Game) UpdateCamera() {
	obj := components.Object.Get(g.Player).Object
	g.Camera.X = obj.X + obj.W/2 - float64(g.ScreenWidth)/2
	g.Camera.Y = obj.Y + obj.H/2 - float64(g.ScreenHeight)/2

	// Clamp camera to world bounds
	mapWidth, mapHeight := g.World.PixelSize()
	g.Camera.X = math.Max(0, math.Min(g.Camera.X, mapWidth-float64(g.ScreenWidth)))
	g.Camera.Y = math.Max(0, math.Min(g.Camera.Y, mapHeight-float64(g.ScreenHeight)))
}

// Resize updates the viewport size.
func (g *Game) Resize(width, height int) {
	g.ScreenWidth = width
	g.ScreenHeight = height
	g.UpdateCamera()
}

// Close removes the player body from the physics world.
func (g *Game) Close() {
	if g.Player == nil || !g.Player.Valid() {
		return
	}
	g.World.Physics.RemoveBody(components.Object.Get(g.Player).Object)
	g.World.ECS.Remove(g.Player.Entity())
}
