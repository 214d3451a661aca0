package shooter

import (
	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
	"github.com/okarlsen/skyshot/internal/input"
	"github.com/okarlsen/skyshot/internal/sprite"
)

// bowColors is cycled through as players join, in roster order.
var bowColors = []engine.Color{
	engine.ColorBlue,
	engine.ColorGreen,
	engine.ColorYellow,
	engine.ColorMagenta,
}

// GameplayScene runs the shooting phase: one bow per player along the
// bottom edge, a balloon population scaled by player count, and a shared
// score.
type GameplayScene struct {
	screen   geom.Rect
	input    *input.Handler
	bows     map[input.SourceID]*Bow
	roster   []input.SourceID
	flying   *sprite.Group
	balloons *Balloons
	score    *Score
	sprites  *sprite.Group
}

// NewGameplayScene creates the scene for the given player roster. Bows are
// evenly spaced along the bottom edge in roster order, and the balloon
// target is the configured count per player.
func NewGameplayScene(players []input.SourceID, in *input.Handler, cfg config.Config, seed int64) *GameplayScene {
	screen := geom.RectFromSize(cfg.Screen.Width, cfg.Screen.Height)

	s := &GameplayScene{
		screen:   screen,
		input:    in,
		bows:     make(map[input.SourceID]*Bow),
		roster:   append([]input.SourceID(nil), players...),
		flying:   sprite.NewGroup(),
		balloons: NewBalloons(screen, cfg.Balloon.Count*len(players), cfg.Balloon, seed),
		score:    NewScore(geom.Pt(20, cfg.Screen.Height-100)),
		sprites:  sprite.NewGroup(),
	}

	for i, id := range players {
		x := screen.Width() * float64(i+1) / float64(len(players)+1)
		bow := NewBow(geom.Pt(x, screen.BottomRight.Y), bowColors[i%len(bowColors)], cfg.Arrow)
		s.bows[id] = bow
		s.sprites.Add(bow)
	}
	s.sprites.Add(s.balloons)
	s.sprites.Add(s.flying)
	s.sprites.Add(s.score)

	return s
}

// Bow returns the bow for a player, or nil for an unknown player id.
func (s *GameplayScene) Bow(id input.SourceID) *Bow {
	return s.bows[id]
}

// Roster returns the player ids in join order.
func (s *GameplayScene) Roster() []input.SourceID {
	return append([]input.SourceID(nil), s.roster...)
}

// Score returns the current score.
func (s *GameplayScene) Score() int {
	return s.score.Points()
}

// Update runs one frame in a fixed order: drain the input handler's
// buffered actions, spawn a flying arrow per shot, apply turn deltas,
// advance every entity, then resolve collisions. A hit removes the arrow
// and the balloon and scores the point within the same resolution pass.
func (s *GameplayScene) Update(dt float64) {
	for _, action := range s.input.Actions(dt) {
		bow := s.bows[action.Source]
		if bow == nil {
			continue
		}
		if action.Shoot {
			s.flying.Add(bow.Shoot())
		}
		bow.Turn(action.TurnDelta)
	}

	s.sprites.Update(dt)

	for _, sp := range s.flying.Sprites() {
		arrow := sp.(*Arrow)
		if balloon := s.balloons.HitByArrow(arrow); balloon != nil {
			s.balloons.Remove(balloon)
			s.score.Add(1)
			s.flying.Remove(arrow)
		} else if arrow.IsOutsideOf(s.screen) {
			s.flying.Remove(arrow)
		}
	}
}

// Draw renders every entity in insertion order.
func (s *GameplayScene) Draw(canvas engine.Canvas) {
	s.sprites.Draw(canvas)
}
