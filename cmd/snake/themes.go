package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long:  `Shows all glyph and color themes that can be passed to --theme.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := registry.List()

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, t := range themes {
		maxNameLen = max(maxNameLen, len(t.Name))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Sample", "Description")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "------", "-----------")

	for _, t := range themes {
		sample := fmt.Sprintf("%c%c%c %c", t.Style.Head, t.Style.Body, t.Style.Body, t.Style.Food)
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, t.Name, sample, t.Description)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --theme <name>' to use one.")
}
