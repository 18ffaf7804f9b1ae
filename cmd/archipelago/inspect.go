package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"chosenoffset.com/archipelago/internal/game"
	"chosenoffset.com/archipelago/internal/logger"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [world]",
	Short: "Load a world headless and print its islands and bridges",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DCFFF"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func runInspect(cmd *cobra.Command, args []string) error {
	logger.Init()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	entry, err := resolveWorld(cfg, args)
	if err != nil {
		return err
	}

	w, err := game.LoadWorld(entry.Path, cfg, nil, logger.Component("world"))
	if err != nil {
		return err
	}
	defer w.Unload()

	fmt.Fprintln(cmd.OutOrStdout(), renderReport(w))
	return nil
}

// renderReport formats a loaded world for the terminal.
func renderReport(w *game.World) string {
	var b strings.Builder

	gw, gh := w.Grid.Width, w.Grid.Height
	b.WriteString(titleStyle.Render(w.Name))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%dx%d tiles of %dpx, spawn at (%d,%d)",
		gw, gh, w.TileSize, w.Spawn.X, w.Spawn.Y)))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Islands"))
	b.WriteString("\n")
	adj := w.Bridges.AdjacencyMap()
	for i, isl := range w.Registry.All() {
		minX, minY, maxX, maxY := isl.TileRange()
		var names []string
		for _, n := range adj[i] {
			if other, ok := w.Registry.Get(n); ok {
				names = append(names, other.ID)
			}
		}
		neighbours := "none"
		if len(names) > 0 {
			neighbours = strings.Join(names, ", ")
		}
		fmt.Fprintf(&b, "  %-10s tiles (%d,%d)-(%d,%d)  walkable %-4d next to %s\n",
			isl.ID, minX, minY, maxX, maxY, isl.Local.WalkableCount(), neighbours)
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Bridges"))
	b.WriteString("\n")
	bridges := w.Bridges.Bridges()
	if len(bridges) == 0 {
		b.WriteString(dimStyle.Render("  none"))
		b.WriteString("\n")
	}
	for _, br := range bridges {
		from, _ := w.Registry.Get(br.FromIsland)
		to, _ := w.Registry.Get(br.ToIsland)
		fmt.Fprintf(&b, "  %s -> %s  %-5s (%d,%d)-(%d,%d)  %d tiles\n",
			from.ID, to.ID, br.Direction, br.From.X, br.From.Y, br.To.X, br.To.Y, len(br.Tiles()))
	}

	if len(w.Failed) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Failed"))
		b.WriteString("\n")
		ids := make([]string, 0, len(w.Failed))
		for id := range w.Failed {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			b.WriteString(errorStyle.Render(fmt.Sprintf("  %s: %v", id, w.Failed[id])))
			b.WriteString("\n")
		}
	}

	summary := fmt.Sprintf("%d islands  %d bridges  %d collision bodies",
		w.Registry.Len(), len(bridges), w.Physics.Len())
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(summary))
	return b.String()
}
