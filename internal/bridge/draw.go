package bridge

import (
	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/render"
	"chosenoffset.com/archipelago/internal/world/atlas"
	"chosenoffset.com/archipelago/internal/world/tile"
)

// Draw renders every bridge tile, offset by the camera. Tiles come from the
// atlas when it has the bridge visual id; otherwise each tile is a flat
// rectangle in the fallback colour and a warning is logged the first time.
func (s *System) Draw(screen render.Image, r render.Renderer, tiles *atlas.Atlas, camX, camY float64) {
	size := float32(s.tileSize)
	for _, p := range s.positions {
		x := tile.TileToWorld(p.X, s.tileSize) - camX
		y := tile.TileToWorld(p.Y, s.tileSize) - camY

		if tiles != nil && tiles.DrawGID(screen, s.opts.VisualGID, x, y, s.tileSize) {
			continue
		}
		s.warnFallback()
		r.FillRect(screen, float32(x), float32(y), size, size, s.opts.FallbackColor)
	}
}

func (s *System) warnFallback() {
	if s.warnedRender {
		return
	}
	s.warnedRender = true
	diag.With(s.log, diag.RenderFallback).WithField("gid", s.opts.VisualGID).
		Warn("Bridge tile image unavailable, drawing flat colour")
}
