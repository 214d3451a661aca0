package shooter

import (
	"testing"

	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
	"github.com/okarlsen/skyshot/internal/input"
)

func newTestScene(players ...input.SourceID) (*GameplayScene, *input.Handler) {
	cfg := config.Default()
	in := input.NewHandler(input.DefaultTuning())
	if len(players) == 0 {
		players = []input.SourceID{input.SourceKeyboard}
	}
	return NewGameplayScene(players, in, cfg, 1), in
}

func (s *GameplayScene) hasBalloon(b *Balloon) bool {
	for _, existing := range s.balloons.balloons {
		if existing == b {
			return true
		}
	}
	return false
}

func TestHitRemovesBalloonAndArrowAndScores(t *testing.T) {
	scene, _ := newTestScene()
	cfg := config.Default()

	balloon := scene.balloons.Add(NewBalloon(geom.Pt(500, 500), cfg.Balloon))
	arrow := NewArrow(geom.Pt(500, 500), engine.ColorBlue, cfg.Arrow).CloneShooting()
	scene.flying.Add(arrow)

	scene.Update(0)

	if scene.hasBalloon(balloon) {
		t.Error("hit balloon should be removed")
	}
	if scene.flying.Len() != 0 {
		t.Error("hit arrow should be removed")
	}
	if scene.Score() != 1 {
		t.Errorf("score = %d, expected 1", scene.Score())
	}
}

func TestMissLeavesEverythingInPlace(t *testing.T) {
	scene, _ := newTestScene()
	cfg := config.Default()

	balloon := scene.balloons.Add(NewBalloon(geom.Pt(100, 100), cfg.Balloon))
	arrow := NewArrow(geom.Pt(500, 500), engine.ColorBlue, cfg.Arrow).CloneShooting()
	scene.flying.Add(arrow)

	scene.Update(0)

	if !scene.hasBalloon(balloon) {
		t.Error("missed balloon should survive")
	}
	if scene.flying.Len() != 1 {
		t.Error("missed arrow should survive")
	}
	if scene.Score() != 0 {
		t.Errorf("score = %d, expected 0", scene.Score())
	}
}

func TestShootEventSpawnsExactlyOneArrow(t *testing.T) {
	scene, in := newTestScene()

	in.HandleEvent(engine.KeyDownEvent(engine.KeySpace))
	scene.Update(0)
	if scene.flying.Len() != 1 {
		t.Fatalf("flying arrows = %d, expected 1 after a shot event", scene.flying.Len())
	}

	// No new event: no new arrow (shoot is edge-triggered, not latched)
	scene.Update(0)
	if scene.flying.Len() != 1 {
		t.Errorf("flying arrows = %d, expected still 1", scene.flying.Len())
	}
}

func TestTurnActionsReachTheRightBow(t *testing.T) {
	joy := input.JoystickSource(0)
	scene, in := newTestScene(input.SourceKeyboard, joy)

	in.HandleEvent(engine.KeyDownEvent(engine.KeyRight))
	in.HandleEvent(engine.JoyAxisEvent(0, 0, -1))

	scene.Update(250) // a tenth of the 2500ms full-turn divisor: 36°

	if got := scene.Bow(input.SourceKeyboard).Angle().Degrees(); got != -54 {
		t.Errorf("keyboard bow angle = %v, expected -54 (turned right)", got)
	}
	if got := scene.Bow(joy).Angle().Degrees(); got != -126 {
		t.Errorf("joystick bow angle = %v, expected -126 (turned left)", got)
	}
}

func TestUnknownSourceActionsAreIgnored(t *testing.T) {
	// The scene only has a keyboard player; joystick input must not
	// crash or spawn arrows.
	scene, in := newTestScene(input.SourceKeyboard)

	in.HandleEvent(engine.JoyButtonEvent(7, 0))
	scene.Update(16)

	if scene.flying.Len() != 0 {
		t.Errorf("flying arrows = %d, expected 0", scene.flying.Len())
	}
	if scene.Bow(input.JoystickSource(7)) != nil {
		t.Error("Bow() for an unknown player must return nil")
	}
}

func TestBalloonTargetScalesWithPlayers(t *testing.T) {
	scene, _ := newTestScene(input.SourceKeyboard, input.JoystickSource(0))

	scene.Update(0)

	if got := scene.balloons.Count(); got != 6 {
		t.Errorf("population = %d, expected 3 per player", got)
	}
}

func TestBowsSpacedAlongBottomEdge(t *testing.T) {
	scene, _ := newTestScene(input.SourceKeyboard, input.JoystickSource(0), input.JoystickSource(1))

	xs := make(map[float64]bool)
	for _, id := range scene.roster {
		bow := scene.Bow(id)
		p := bow.arrow.Position()
		if p.Y != 720 {
			t.Errorf("bow %s not on the bottom edge: %v", id, p)
		}
		xs[p.X] = true
	}
	// Three players: 320, 640, 960
	for _, expected := range []float64{320, 640, 960} {
		if !xs[expected] {
			t.Errorf("no bow at x=%v; got %v", expected, xs)
		}
	}
}

func TestOutOfBoundsArrowRemoved(t *testing.T) {
	scene, _ := newTestScene()
	cfg := config.Default()

	arrow := NewArrow(geom.Pt(640, 10), engine.ColorBlue, cfg.Arrow).CloneShooting()
	scene.flying.Add(arrow)

	// Aiming up at 1 unit/ms: 100ms carries it to y=-90, past the margin
	scene.Update(100)

	if scene.flying.Len() != 0 {
		t.Errorf("flying arrows = %d, expected the arrow to be culled", scene.flying.Len())
	}
	if scene.Score() != 0 {
		t.Error("culling must not score")
	}
}
