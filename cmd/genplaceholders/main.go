package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/archipelago/internal/placeholders"
)

func main() {
	out := flag.String("out", "data/demo", "directory to write the demo world into")
	flag.Parse()

	fmt.Println("Archipelago Demo World Generator")
	fmt.Println("================================")
	fmt.Println()

	if err := placeholders.WriteDemoWorld(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote tileset, island maps and manifest to %s\n", *out)
	fmt.Println("Run `archipelago play` to explore it.")
}
