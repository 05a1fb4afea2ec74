// doggies is a small pet-dog simulation you can play in a window, in the
// terminal or over SSH.
//
// Usage:
//
//	doggies play             - Play in a desktop window
//	doggies play --tui       - Play in the terminal
//	doggies serve            - Start SSH server for remote play
//	doggies stats            - Show recorded sessions
//	doggies list <what>      - List breeds, foods, animations or difficulties
//	doggies config show      - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Config file (YAML or TOML)
//	--db <path>           - Session database (default: from config)
//	--difficulty <name>   - relaxed, normal or demanding
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/all-my-doggies/internal/config"
	"github.com/vovakirdan/all-my-doggies/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doggies",
	Short: "All My Doggies - look after a dog",
	Long: `All My Doggies is a small simulation of a pet dog. Walk it around,
feed it and keep an eye on its needs while the in-game days go by.

Available commands:
  play     - Play in a window (or the terminal with --tui)
  serve    - Start SSH server for remote play
  stats    - View recorded sessions
  list     - List breeds, foods, animations or difficulties
  config   - Inspect the configuration

Examples:
  doggies play
  doggies play --tui --difficulty relaxed
  doggies serve --ssh :2222
  doggies stats -i`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: relaxed, normal, demanding")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fail("%v", err)
		}
		config.ApplyDifficulty(&cfg, preset)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg
}

// newLogger builds the logger. Without --log-file, logs go to fallback;
// the terminal frontends pass io.Discard so logs cannot tear the screen.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("bad log level %q", flagLogLevel)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			fail("%v", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "doggies",
		Level:           level,
	})
	return logger, closeFn
}

// openStore opens the session database. Statistics are optional, so
// failures only warn.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open session database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}
