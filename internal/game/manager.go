package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/archipelago/internal/config"
	"chosenoffset.com/archipelago/internal/diag"
	"chosenoffset.com/archipelago/internal/render"
)

// Manager owns the current world and rebuilds it on reload.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       config.Config
	WorldDir     string
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Loader       render.ResourceLoader

	log *logrus.Entry
}

// NewManager creates a new game manager.
func NewManager(cfg config.Config, r render.Renderer, input render.InputManager, loader render.ResourceLoader, log *logrus.Entry) *Manager {
	return &Manager{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Loader:       loader,
		log:          diag.OrDiscard(log),
	}
}

// Load loads the world in dir, replacing the current one.
func (m *Manager) Load(dir string) error {
	m.log.WithField("dir", dir).Info("Loading world")

	w, err := LoadWorld(dir, m.Config, m.Loader, m.log)
	if err != nil {
		return fmt.Errorf("failed to load world %s: %w", dir, err)
	}

	m.unload()
	m.WorldDir = dir
	m.Game = NewGame(w, m.Renderer, m.InputMgr, m.ScreenWidth, m.ScreenHeight,
		m.Config.Player.Speed, m.Config.Player.Size, m.log.WithField("component", "game"))
	m.Game.ShowMessage(fmt.Sprintf("%s: %d islands, %d bridges", w.Name, w.Registry.Len(), len(w.Bridges.Bridges())))
	return nil
}

// Reload rebuilds the current world from disk. On failure the old world is kept.
func (m *Manager) Reload() error {
	if m.WorldDir == "" {
		return nil
	}
	return m.Load(m.WorldDir)
}

func (m *Manager) unload() {
	if m.Game == nil {
		return
	}
	m.Game.Close()
	m.Game.World.Unload()
	m.Game = nil
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyR) {
		if err := m.Reload(); err != nil {
			m.log.WithError(err).Error("Reload failed")
			if m.Game != nil {
				m.Game.ShowMessage("Reload failed, see log")
			}
		}
	}
	if m.Game != nil {
		return m.Game.Update()
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	if m.Game != nil {
		m.Game.Draw(screen)
		return
	}
	m.Renderer.DrawText(screen, "No world loaded", 8, 8)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.Game != nil {
			m.Game.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
