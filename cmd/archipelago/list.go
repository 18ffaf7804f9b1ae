package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/archipelago/internal/gamescanner"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List worlds in the data directory",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	worlds, err := gamescanner.ScanDataDirectory(cfg.World.DataDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(worlds) == 0 {
		fmt.Fprintf(out, "No worlds found in %s\n", cfg.World.DataDir)
		return nil
	}

	fmt.Fprintln(out, "Available worlds:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s %-28s %s\n", "DIR", "NAME", "ISLANDS")
	fmt.Fprintf(out, "  %-16s %-28s %s\n", "---", "----", "-------")
	for _, w := range worlds {
		marker := " "
		if w.Dir == cfg.World.Default {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-16s %-28s %d\n", marker, w.Dir, w.Name, w.Islands)
	}
	return nil
}
