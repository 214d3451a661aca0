// Package launcher provides the application select screen: a list of
// launchable entries, a cursor steered by joystick or keyboard, and an
// outer loop that runs the selected entry's command and returns to the
// menu when it exits.
package launcher

import (
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

const (
	cursorRadius = 20
	// Cursor deltas below this length are treated as stick noise.
	cursorDeadzone = 0.05
)

// Entry is one launchable program on the select screen.
type Entry struct {
	Name     string
	Position geom.Point
	Command  []string
}

// Scene is the select screen. It implements engine.Game: steering moves
// the cursor, a shot or quit ends the loop, and the entry closest to the
// cursor at that moment is the selection.
type Scene struct {
	entries   []Entry
	cursor    geom.Point
	dx, dy    float64
	cancelled bool
}

// NewScene creates a select screen over the given entries.
func NewScene(entries []Entry) *Scene {
	return &Scene{
		entries: entries,
		cursor:  geom.Pt(500, 500),
	}
}

// HandleEvent steers the cursor. A confirm press (space or any joystick
// button) exits the loop with the current selection; quit and escape exit
// with the selection cancelled.
func (s *Scene) HandleEvent(event engine.Event) engine.Status {
	switch {
	case event.IsQuit(), event.IsKeyDown(engine.KeyEscape):
		s.cancelled = true
		return engine.Exit
	case event.IsKeyDown(engine.KeySpace), event.Kind == engine.EventJoyButtonDown:
		return engine.Exit
	case event.IsKeyDown(engine.KeyLeft):
		s.dx = -1
	case event.IsKeyDown(engine.KeyRight):
		s.dx = 1
	case event.IsKeyUp(engine.KeyLeft), event.IsKeyUp(engine.KeyRight):
		s.dx = 0
	case event.IsJoyAxisMotion():
		switch event.Axis {
		case 0:
			s.dx = event.Value
		case 1:
			s.dy = event.Value
		}
	}
	return engine.Continue
}

// Tick moves the cursor by the latched steering delta and redraws.
func (s *Scene) Tick(dt float64, canvas engine.Canvas) engine.Status {
	canvas.ClearScreen()
	delta := geom.Pt(s.dx, s.dy)
	if delta.Length() > cursorDeadzone {
		s.cursor = s.cursor.Add(delta.Times(dt))
	}
	s.draw(canvas)
	return engine.Continue
}

func (s *Scene) draw(canvas engine.Canvas) {
	closest := s.closest()
	for i := range s.entries {
		entry := &s.entries[i]
		color := engine.ColorBlack
		if entry == closest {
			color = engine.ColorLightBlue
		}
		canvas.DrawText(entry.Position, entry.Name, 50, color)
	}
	canvas.DrawCircle(s.cursor, cursorRadius, engine.ColorPink)
}

func (s *Scene) closest() *Entry {
	var best *Entry
	bestDistance := 0.0
	for i := range s.entries {
		d := s.entries[i].Position.DistanceTo(s.cursor)
		if best == nil || d < bestDistance {
			best = &s.entries[i]
			bestDistance = d
		}
	}
	return best
}

// Command returns the command of the entry closest to the cursor, or nil
// when the screen has no entries.
func (s *Scene) Command() []string {
	if entry := s.closest(); entry != nil {
		return entry.Command
	}
	return nil
}

// Cancelled reports whether the last loop ended with quit/escape instead
// of a selection.
func (s *Scene) Cancelled() bool {
	return s.cancelled
}

// MoveCursor places the cursor directly, bypassing steering.
func (s *Scene) MoveCursor(p geom.Point) {
	s.cursor = p
}
