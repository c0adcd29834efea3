package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List grid size presets",
	Long:  `Shows the grid size presets accepted by --mode and the config "mode" key.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range config.Modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Name", "Cells")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "----", "-----")

	for _, m := range config.Modes {
		fmt.Printf("  %-*s  %-8s  %d\n", maxIDLen, m.ID, m.Name, m.Length*m.Length)
	}

	fmt.Println()
	fmt.Println("Run 'slide2048 play --mode <id>' to play on a preset.")
}
