package shooter

import (
	"fmt"

	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
	"github.com/okarlsen/skyshot/internal/input"
)

// StartScene is the lobby. A source's first shot registers it as a pending
// player; a second shot from an already-pending source locks the roster and
// the game begins with everyone who joined.
type StartScene struct {
	screen     geom.Rect
	input      *input.Handler
	pending    []input.SourceID
	pendingSet map[input.SourceID]bool
	players    []input.SourceID
}

// NewStartScene creates an empty lobby.
func NewStartScene(in *input.Handler, screen geom.Rect) *StartScene {
	return &StartScene{
		screen:     screen,
		input:      in,
		pendingSet: make(map[input.SourceID]bool),
	}
}

// Update drains this frame's actions. Only shots matter in the lobby.
func (s *StartScene) Update(dt float64) {
	for _, action := range s.input.Actions(dt) {
		if !action.Shoot {
			continue
		}
		if s.pendingSet[action.Source] {
			s.players = append([]input.SourceID(nil), s.pending...)
			return
		}
		s.pendingSet[action.Source] = true
		s.pending = append(s.pending, action.Source)
	}
}

// Players returns the locked roster, or an empty slice while the lobby is
// still collecting players. A non-empty result triggers the transition to
// gameplay.
func (s *StartScene) Players() []input.SourceID {
	return s.players
}

// Draw renders the lobby: title, join instructions, and the pending list.
func (s *StartScene) Draw(canvas engine.Canvas) {
	canvas.DrawText(geom.Pt(s.screen.Width()/2-300, 150), "BALLOON SHOOTER", 100, engine.ColorBlack)
	canvas.DrawText(geom.Pt(s.screen.Width()/2-300, 280), "shoot to join, shoot again to start", 50, engine.ColorGray)
	for i, id := range s.pending {
		text := fmt.Sprintf("player %d: %s", i+1, id)
		canvas.DrawText(geom.Pt(s.screen.Width()/2-300, 380+float64(i)*60), text, 50, engine.ColorLightBlue)
	}
}
