// skyshot is a terminal balloon shooter: steer a bow, pop drifting
// balloons, and chase the high score — locally or over SSH.
//
// Usage:
//
//	skyshot play             - Play the balloon shooter
//	skyshot start            - Launcher: pick a program with the cursor
//	skyshot scores           - Show high scores
//	skyshot serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible balloon spawns
//	--db <path>     - Scores database path (default: ~/.skyshot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyshot",
	Short: "Skyshot - Shoot balloons in your terminal",
	Long: `Skyshot is a terminal balloon shooter. Aim your bow with the arrow
keys or a joystick, shoot with space, and pop balloons before they
drift away. Friends can join from their own controllers, or remotely
over SSH.

Available commands:
  play     - Play the balloon shooter
  start    - Launcher screen for picking a program
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  skyshot play
  skyshot play --seed 42
  skyshot scores --plain
  skyshot serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyshot/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
