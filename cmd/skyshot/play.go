package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/platform/tui"
	"github.com/okarlsen/skyshot/internal/shooter"
	"github.com/okarlsen/skyshot/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the balloon shooter",
	Long: `Start the balloon shooter.

Shoot once to join, shoot again to start the round.

Controls:
  Left/A, Right/D  - Turn the bow
  Space/Enter      - Shoot
  Esc              - Leave the lobby
  Q/Ctrl+C         - Quit

Examples:
  skyshot play
  skyshot play --seed 42
  skyshot play --config ./my-skyshot.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Terminal size for the cell buffer
	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols = w
		rows = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := shooter.New(cfg, seed)
	backend := tui.NewBackend(cols, rows)
	runErr := tui.Run(game, backend, engine.Config{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		FPS:    cfg.Screen.FPS,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	score := game.Score()
	if score == 0 {
		return
	}
	fmt.Printf("Final score: %d\n", score)

	if store != nil {
		if _, saveErr := store.SaveScore(shooter.GameID, score, len(game.Players())); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save score: %v\n", saveErr)
		} else if high, highErr := store.HighScore(shooter.GameID); highErr == nil {
			fmt.Printf("Best: %d\n", high)
		}
	}
}
