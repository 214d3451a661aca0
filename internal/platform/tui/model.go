package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarlsen/skyshot/internal/engine"
)

// frameMsg carries one rendered frame from the game loop.
type frameMsg string

// doneMsg signals that the game loop has finished.
type doneMsg struct{}

// Model is the Bubble Tea model displaying the running game. The engine
// loop runs in a separate goroutine; the model forwards key presses to the
// backend and re-subscribes for the next frame after every one it shows.
type Model struct {
	backend  *Backend
	frame    string
	quitting bool
}

// NewModel creates a model displaying frames from the given backend.
func NewModel(backend *Backend) Model {
	return Model{backend: backend}
}

// Init subscribes to the first frame.
func (m Model) Init() tea.Cmd {
	return waitFrame(m.backend)
}

// Update handles key presses, resizes, and frame/done messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		event, ok := MapKey(msg)
		if !ok {
			return m, nil
		}
		m.backend.Send(event)
		if event.IsQuit() {
			// The loop exits on the quit event and closes done, which
			// resolves the pending waitFrame into doneMsg.
			m.quitting = true
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.backend.SendResize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, waitFrame(m.backend)

	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View shows the latest rendered frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

// waitFrame blocks until the next frame or until the game loop finishes.
func waitFrame(b *Backend) tea.Cmd {
	return func() tea.Msg {
		select {
		case frame := <-b.frames:
			return frameMsg(frame)
		case <-b.done:
			return doneMsg{}
		}
	}
}

// Show runs a Bubble Tea program displaying the backend's frames until
// the loop producing them finishes (or the program itself fails, in
// which case the loop is released).
func Show(backend *Backend) error {
	p := tea.NewProgram(NewModel(backend), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		backend.Quit()
		return err
	}
	// The program quit first (e.g. terminal closed): release the loop.
	backend.Send(engine.QuitEvent())
	return nil
}

// Run drives a game on the terminal: the engine loop runs in a goroutine
// against the backend while the Bubble Tea program owns the terminal.
// It returns when the game exits or the user quits.
func Run(game engine.Game, backend *Backend, cfg engine.Config) error {
	loop := engine.New(backend, cfg)

	errc := make(chan error, 1)
	go func() {
		errc <- loop.Run(game)
	}()

	if err := Show(backend); err != nil {
		<-errc
		return err
	}
	return <-errc
}
