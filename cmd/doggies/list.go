package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/all-my-doggies/internal/config"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
)

var listCmd = &cobra.Command{
	Use:       "list [breeds|foods|animations|difficulties]",
	Short:     "List breeds, foods, animations or difficulties",
	Long:      `Shows the values the configuration accepts. Without an argument, lists breeds.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"breeds", "foods", "animations", "difficulties"},
	Run:       runList,
}

func runList(_ *cobra.Command, args []string) {
	what := "breeds"
	if len(args) > 0 {
		what = args[0]
	}

	switch what {
	case "breeds":
		fmt.Println("Available breeds:")
		fmt.Println()
		for _, b := range dog.Breeds() {
			fmt.Printf("  %s\n", b)
		}
		fmt.Println()
		fmt.Println("Run 'doggies play --breed <name>' to adopt one.")

	case "foods":
		cfg := loadConfig()
		foods := cfg.Foods()

		// Calculate column widths
		maxNameLen := 4 // "Name" header
		for _, f := range foods {
			maxNameLen = max(maxNameLen, len(f.Name))
		}

		fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Fills")
		fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")
		for _, f := range foods {
			marker := ""
			if f.Name == cfg.Feeding.DefaultFood {
				marker = "  (default)"
			}
			fmt.Printf("  %-*s  %s%s\n", maxNameLen, f.Name, f.Nutrition, marker)
		}

	case "animations":
		cfg := loadConfig()
		fmt.Printf("  %-28s  %-28s  %6s  %s\n", "Strip", "File", "Frames", "Frame time")
		fmt.Printf("  %-28s  %-28s  %6s  %s\n", "-----", "----", "------", "----------")
		for _, s := range cfg.Animations.Strips {
			name := strings.Join([]string{s.Pose, s.Emotion, s.Facing}, "/")
			fmt.Printf("  %-28s  %-28s  %6d  %s\n", name, s.File, s.Frames, s.FrameDuration)
		}

	case "difficulties":
		for _, p := range config.Presets() {
			fmt.Printf("  %-10s  needs drain %.1fx as fast\n", p, p.DrainMultiplier())
		}
	}
}
