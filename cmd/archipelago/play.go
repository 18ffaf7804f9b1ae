package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/archipelago/internal/game"
	"chosenoffset.com/archipelago/internal/logger"
	ebitenrender "chosenoffset.com/archipelago/internal/render/ebiten"
)

var playCmd = &cobra.Command{
	Use:   "play [world]",
	Short: "Open a world in a window",
	Long: `Open a world in a window. Move with WASD or the arrow keys, press B to
toggle the debug overlay and R to reload the world from disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger.Init()
	log := logger.Component("main")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	entry, err := resolveWorld(cfg, args)
	if err != nil {
		return err
	}

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(cfg, renderer, inputMgr, loader, logger.Component("world"))
	if err := manager.Load(entry.Path); err != nil {
		return err
	}

	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(fmt.Sprintf("Archipelago - %s", entry.Name))
	engine.SetWindowResizable(true)

	log.WithField("world", entry.Name).Info("Starting game")
	return engine.RunGame(manager)
}
