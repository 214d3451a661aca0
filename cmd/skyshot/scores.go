package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okarlsen/skyshot/internal/platform/tui"
	"github.com/okarlsen/skyshot/internal/shooter"
	"github.com/okarlsen/skyshot/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display recorded balloon shooter scores in a scrollable table,
or as plain text with --plain.

Examples:
  skyshot scores
  skyshot scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text instead of the table UI")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, shooter.GameID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(shooter.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Balloon Shooter")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyshot play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "Rank", "Score", "Players", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "----", "-----", "-------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-7d  %s\n",
			i+1, entry.Score, entry.Players, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(shooter.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Rounds: %d   Best: %d   Average: %.1f\n", stats.Rounds, stats.HighScore, stats.AvgScore)
}
