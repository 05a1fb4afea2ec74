package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/all-my-doggies/internal/platform/tui"
	"github.com/vovakirdan/all-my-doggies/internal/storage"
)

var (
	flagStatsLimit       int
	flagStatsInteractive bool
	flagStatsClear       bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions and overall totals.

Examples:
  doggies stats
  doggies stats --limit 25
  doggies stats -i          # Browse interactively
  doggies stats --clear     # Forget all sessions`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&flagStatsLimit, "limit", "n", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVarP(&flagStatsInteractive, "interactive", "i", false, "Browse sessions in a table")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all recorded sessions")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening session database: %v", err)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearSessions(); err != nil {
			fail("clearing sessions: %v", err)
		}
		fmt.Println("All sessions deleted.")
		return
	}

	if flagStatsInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunStats(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fail("retrieving sessions: %v", err)
	}
	totals, err := store.Totals()
	if err != nil {
		fail("retrieving totals: %v", err)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'doggies play' to meet your dog!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-10s  %-6s  %8s  %4s  %5s  %5s\n",
		"Started", "Dog", "Player", "Via", "Played", "Fed", "Food", "Water")
	fmt.Printf("  %-16s  %-12s  %-10s  %-6s  %8s  %4s  %5s  %5s\n",
		"-------", "---", "------", "---", "------", "---", "----", "-----")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %-10s  %-6s  %8s  %4d  %4.0f%%  %4.0f%%\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.DogName, s.Player, s.Frontend,
			s.Duration().Round(time.Second), s.Feedings, s.FinalFood, s.FinalWater)
	}

	fmt.Println()
	fmt.Printf("Total: %d sessions, %s played, %d feedings\n",
		totals.Sessions, totals.PlayTime.Round(time.Second), totals.Feedings)
}
