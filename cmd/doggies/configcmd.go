package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/all-my-doggies/internal/config"
)

var (
	flagFormat   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search
order and command-line overrides are applied.

Examples:
  doggies config show > ~/.doggies/config.yaml
  doggies config show --format toml --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the files searched for a configuration",
	Args:  cobra.NoArgs,
	Run:   runConfigPaths,
}

func init() {
	configShowCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configShowCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathsCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fail("%v", err)
	}

	cfg := config.Default()
	if !flagDefaults {
		cfg = loadConfig()
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}

func runConfigPaths(_ *cobra.Command, _ []string) {
	for _, p := range config.SearchPaths() {
		status := "missing"
		if _, err := os.Stat(p); err == nil {
			status = "found"
		}
		fmt.Printf("  %-40s  %s\n", p, status)
	}
	fmt.Println("  (embedded defaults)")
}
