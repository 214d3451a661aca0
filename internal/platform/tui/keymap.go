package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarlsen/skyshot/internal/engine"
)

// MapKey translates a Bubble Tea key message to an engine event.
// It returns false for keys the game does not use. This centralizes the
// bindings and keeps them testable without a terminal.
func MapKey(msg tea.KeyMsg) (engine.Event, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return engine.QuitEvent(), true
	case "left", "a", "h":
		return engine.KeyDownEvent(engine.KeyLeft), true
	case "right", "d", "l":
		return engine.KeyDownEvent(engine.KeyRight), true
	case " ", "enter":
		return engine.KeyDownEvent(engine.KeySpace), true
	case "esc", "b":
		return engine.KeyDownEvent(engine.KeyEscape), true
	}
	return engine.Event{}, false
}
