package shooter

import (
	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
	"github.com/okarlsen/skyshot/internal/input"
)

// GameID keys stored scores for this game.
const GameID = "balloon"

// BalloonShooter is the top-level engine.Game: a start-scene lobby that
// hands over to a gameplay scene once a roster locks. The transition is
// checked once per frame and is one-way; there is no path back to the
// lobby short of a restart.
type BalloonShooter struct {
	cfg      config.Config
	seed     int64
	input    *input.Handler
	start    *StartScene
	gameplay *GameplayScene
}

// New creates a game in the lobby state. The seed drives balloon spawns.
func New(cfg config.Config, seed int64) *BalloonShooter {
	in := input.NewHandler(input.Tuning{
		TurnDivisor: cfg.Input.TurnDivisor,
		Deadzone:    cfg.Input.Deadzone,
	})
	screen := geom.RectFromSize(cfg.Screen.Width, cfg.Screen.Height)
	return &BalloonShooter{
		cfg:   cfg,
		seed:  seed,
		input: in,
		start: NewStartScene(in, screen),
	}
}

// HandleEvent feeds input to the tracker. Closing the window always exits;
// in the lobby, the cancel key (escape) exits too.
func (g *BalloonShooter) HandleEvent(event engine.Event) engine.Status {
	if event.IsQuit() {
		return engine.Exit
	}
	if g.gameplay == nil && event.IsKeyDown(engine.KeyEscape) {
		return engine.Exit
	}
	g.input.HandleEvent(event)
	return engine.Continue
}

// Tick runs one frame of the active scene and draws it.
func (g *BalloonShooter) Tick(dt float64, canvas engine.Canvas) engine.Status {
	canvas.ClearScreen()

	if g.gameplay == nil {
		g.start.Update(dt)
		if players := g.start.Players(); len(players) > 0 {
			g.gameplay = NewGameplayScene(players, g.input, g.cfg, g.seed)
			g.gameplay.Draw(canvas)
		} else {
			g.start.Draw(canvas)
		}
		return engine.Continue
	}

	g.gameplay.Update(dt)
	g.gameplay.Draw(canvas)
	return engine.Continue
}

// Score returns the gameplay score, or 0 while still in the lobby.
func (g *BalloonShooter) Score() int {
	if g.gameplay == nil {
		return 0
	}
	return g.gameplay.Score()
}

// Players returns the locked roster, or nil while still in the lobby.
func (g *BalloonShooter) Players() []input.SourceID {
	if g.gameplay == nil {
		return nil
	}
	return g.gameplay.Roster()
}
