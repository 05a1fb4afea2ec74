package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/all-my-doggies/internal/app"
	"github.com/vovakirdan/all-my-doggies/internal/platform/tui"
	"github.com/vovakirdan/all-my-doggies/internal/platform/window"
)

var (
	flagTUI     bool
	flagDogName string
	flagBreed   string
	flagPlayer  string
	flagNoSpin  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with your dog",
	Long: `Start a session. A desktop window opens unless --tui is given.

Controls:
  WASD/Arrows  - Walk
  F            - Feed
  Space/P      - Pause
  Enter        - Start from the main menu
  Q            - Quit

Examples:
  doggies play
  doggies play --tui
  doggies play --name Rex --breed husky
  doggies play --config ./my-dog.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Play in the terminal instead of a window")
	playCmd.Flags().StringVar(&flagDogName, "name", "", "Dog name (overrides config)")
	playCmd.Flags().StringVar(&flagBreed, "breed", "", "Dog breed (overrides config)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (overrides config)")
	playCmd.Flags().BoolVar(&flagNoSpin, "no-spin", false, "Sleep instead of busy-waiting between ticks")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagDogName != "" {
		cfg.Dog.Name = flagDogName
	}
	if flagBreed != "" {
		cfg.Dog.Breed = flagBreed
	}
	if flagPlayer != "" {
		cfg.Player.Name = flagPlayer
	}
	if flagNoSpin {
		cfg.Loop.Spin = false
	}

	frontend := app.FrontendWindow
	var logOut io.Writer = os.Stderr
	if flagTUI {
		frontend = app.FrontendTUI
		logOut = io.Discard
	}
	logger, closeLog := newLogger(logOut)
	defer closeLog()

	bank, err := app.LoadBank(cfg)
	if err != nil {
		fail("%v", err)
	}
	sess, err := app.NewSession(cfg, bank, app.Options{
		Frontend: frontend,
		Logger:   logger,
	})
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		err = tui.Run(ctx, sess, tui.Options{
			World:  cfg.World(),
			Width:  width,
			Height: height,
		})
	} else {
		err = window.Run(ctx, sess, cfg, logger)
	}

	if store := openStore(cfg, logger); store != nil {
		sess.Save(store, logger)
		store.Close()
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		fail("%v", err)
	}
}
