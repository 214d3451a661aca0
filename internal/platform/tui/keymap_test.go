package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarlsen/skyshot/internal/engine"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key      string
		expected engine.Event
	}{
		{"q", engine.QuitEvent()},
		{"a", engine.KeyDownEvent(engine.KeyLeft)},
		{"left", engine.KeyDownEvent(engine.KeyLeft)},
		{"d", engine.KeyDownEvent(engine.KeyRight)},
		{"right", engine.KeyDownEvent(engine.KeyRight)},
		{" ", engine.KeyDownEvent(engine.KeySpace)},
		{"enter", engine.KeyDownEvent(engine.KeySpace)},
		{"esc", engine.KeyDownEvent(engine.KeyEscape)},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			event, ok := MapKey(keyMsg(tc.key))
			if !ok {
				t.Fatalf("MapKey(%q) not mapped", tc.key)
			}
			if event != tc.expected {
				t.Errorf("MapKey(%q) = %+v, expected %+v", tc.key, event, tc.expected)
			}
		})
	}
}

func TestMapKeyIgnoresUnboundKeys(t *testing.T) {
	for _, key := range []string{"x", "up", "tab"} {
		if _, ok := MapKey(keyMsg(key)); ok {
			t.Errorf("MapKey(%q) mapped, expected ignored", key)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
