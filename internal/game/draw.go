package game

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"chosenoffset.com/archipelago/internal/components"
	"chosenoffset.com/archipelago/internal/render"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colorWater)

	g.drawTiles(screen)
	g.World.Bridges.Draw(screen, g.Renderer, g.World.Atlas, g.Camera.X, g.Camera.Y)
	g.drawPlayer(screen)

	if g.ShowOverlay {
		g.drawOverlay(screen)
	}
	g.drawUI(screen)
}

// visibleTiles returns the inclusive tile range inside the viewport.
func (g *Game) visibleTiles() (minX, minY, maxX, maxY int) {
	ts := g.World.TileSize
	minX = max(1, tile.WorldToTile(g.Camera.X, ts))
	minY = max(1, tile.WorldToTile(g.Camera.Y, ts))
	maxX = min(g.World.Grid.Width, tile.WorldToTile(g.Camera.X+float64(g.ScreenWidth), ts))
	maxY = min(g.World.Grid.Height, tile.WorldToTile(g.Camera.Y+float64(g.ScreenHeight), ts))
	return minX, minY, maxX, maxY
}

func (g *Game) drawTiles(screen render.Image) {
	ts := g.World.TileSize
	size := float32(ts)
	minX, minY, maxX, maxY := g.visibleTiles()

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			t := g.World.Grid.At(x, y)
			// Bridges are drawn by the bridge system.
			if t == tile.Empty || t.IsBridge {
				continue
			}
			sx := tile.TileToWorld(x, ts) - g.Camera.X
			sy := tile.TileToWorld(y, ts) - g.Camera.Y
			if g.World.Atlas != nil && g.World.Atlas.DrawGID(screen, t.GID, sx, sy, ts) {
				continue
			}
			clr := colorBlocked
			if t.Walkable {
				clr = colorGround
			}
			g.Renderer.FillRect(screen, float32(sx), float32(sy), size, size, clr)
		}
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	obj := components.Object.Get(g.Player).Object
	cx := obj.X + obj.W/2 - g.Camera.X
	cy := obj.Y + obj.H/2 - g.Camera.Y
	g.Renderer.FillCircle(screen, float32(cx), float32(cy), float32(obj.W/2), colorPlayer)
}

// drawOverlay outlines collision bodies and island bounds.
func (g *Game) drawOverlay(screen render.Image) {
	donburi.NewQuery(filter.Contains(components.Wall, components.Object)).Each(g.World.ECS, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		g.Renderer.StrokeRect(screen, float32(obj.X-g.Camera.X), float32(obj.Y-g.Camera.Y), float32(obj.W), float32(obj.H), 1, colorBody)
	})

	components.EachIsland(g.World.ECS, func(d *components.IslandData) {
		b := d.Bounds
		g.Renderer.StrokeRect(screen, float32(b.X-g.Camera.X), float32(b.Y-g.Camera.Y), float32(b.W), float32(b.H), 2, colorIslandBB)
		g.Renderer.DrawText(screen, fmt.Sprintf("%s %v", d.ID, g.World.Bridges.Adjacency().Neighbors(d.Index)),
			int(b.X-g.Camera.X)+4, int(b.Y-g.Camera.Y)+4)
	})
}

func (g *Game) drawUI(screen render.Image) {
	p := g.PlayerTile()
	where := "open water"
	if isl := g.Tracker.CurrentIsland(); isl != nil {
		where = isl.ID
	}
	if components.Player.Get(g.Player).OnBridge {
		where = "bridge"
	}
	g.Renderer.DrawText(screen, fmt.Sprintf("%s | tile (%d,%d) | %s", g.World.Name, p.X, p.Y, where), 8, 8)
	g.Renderer.DrawText(screen, "WASD move  B overlay  R reload", 8, g.ScreenHeight-20)

	for i, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, 8, 28+i*16)
	}
}
