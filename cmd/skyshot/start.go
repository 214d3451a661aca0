package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
	"github.com/okarlsen/skyshot/internal/launcher"
	"github.com/okarlsen/skyshot/internal/platform/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launcher: pick a program with the cursor",
	Long: `Show the launcher screen. Steer the cursor toward an entry and shoot
to run it; when the program exits, the launcher comes back.

Controls:
  Left/Right or joystick  - Move the cursor
  Space/Enter             - Run the highlighted entry
  Esc, Q/Ctrl+C           - Leave the launcher`,
	Args: cobra.NoArgs,
	Run:  runStart,
}

func runStart(cmd *cobra.Command, args []string) {
	self, err := os.Executable()
	if err != nil {
		self = "skyshot"
	}

	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols = w
		rows = h
	}

	scene := launcher.NewScene([]launcher.Entry{
		{
			Name:     "Balloon Shooter",
			Position: geom.Pt(100, 200),
			Command:  []string{self, "play"},
		},
		{
			Name:     "High Scores",
			Position: geom.Pt(100, 300),
			Command:  []string{self, "scores", "--plain"},
		},
	})

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "skyshot"})
	runner := launcher.NewExecRunner(logger)

	// Each cycle owns the terminal for the select screen only, so the
	// launched program gets it back for its own UI.
	for {
		command, selErr := selectOnce(scene, cols, rows)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if len(command) == 0 {
			return
		}
		if runErr := runner.Run(command); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		}
	}
}

// selectOnce shows one select-screen cycle and returns the chosen
// command, or nil when the user cancelled.
func selectOnce(scene *launcher.Scene, cols, rows int) ([]string, error) {
	backend := tui.NewBackend(cols, rows)
	loop := engine.New(backend, engine.DefaultConfig())

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(scene) }()

	if err := tui.Show(backend); err != nil {
		<-errc
		return nil, err
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	if scene.Cancelled() {
		return nil, nil
	}
	return scene.Command(), nil
}
