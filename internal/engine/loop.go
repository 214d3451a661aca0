// Package engine provides the fixed-cadence game loop driver and the
// rendering/input backend boundary. The driver is single-threaded: it polls
// the backend for events, dispatches them to the active game, advances the
// simulation by the elapsed frame time, and flips the display. Termination
// is an explicit Status value returned from the game, not a panic.
package engine

import "github.com/okarlsen/skyshot/internal/geom"

// Status is returned by a game from event and tick handlers to tell the
// loop whether to keep running.
type Status int

const (
	Continue Status = iota
	Exit
)

// Canvas is the drawing surface handed to games each frame. The loop
// implements it by notifying listeners and forwarding to the backend.
type Canvas interface {
	ClearScreen()
	DrawCircle(center geom.Point, radius float64, color Color)
	DrawText(position geom.Point, text string, size float64, color Color)
}

// Game is one frame-driven application run by the loop. HandleEvent is
// called once per pending input event, then Tick once per frame with the
// elapsed milliseconds since the previous frame (0 on the first frame).
type Game interface {
	HandleEvent(event Event) Status
	Tick(dt float64, canvas Canvas) Status
}

// Backend is the rendering/input boundary. Production uses the terminal
// backend in internal/platform/tui; tests use NullBackend.
type Backend interface {
	Init(width, height float64, fps int) error
	PollEvents() []Event
	ClearScreen()
	DrawCircle(center geom.Point, radius float64, color Color)
	DrawText(position geom.Point, text string, size float64, color Color)
	Flip()
	// Tick blocks to pace the frame rate and returns the elapsed
	// milliseconds since the previous call.
	Tick(fps int) float64
	Quit()
}

// Config holds the loop's resolution and frame rate.
type Config struct {
	Width  float64
	Height float64
	FPS    int
}

// DefaultConfig returns the standard 1280x720 at 60 fps.
func DefaultConfig() Config {
	return Config{Width: 1280, Height: 720, FPS: 60}
}

// Loop owns the backend and the frame cadence.
type Loop struct {
	backend   Backend
	config    Config
	listeners []Listener
}

// New creates a loop driving the given backend.
func New(backend Backend, config Config) *Loop {
	return &Loop{backend: backend, config: config}
}

// AddListener attaches a lifecycle listener. Listeners receive INIT/QUIT
// and every draw call, which is the observability seam used by tests.
func (l *Loop) AddListener(listener Listener) {
	l.listeners = append(l.listeners, listener)
}

// Screen returns the screen rectangle the loop renders into.
func (l *Loop) Screen() geom.Rect {
	return geom.RectFromSize(l.config.Width, l.config.Height)
}

func (l *Loop) notify(name string, data map[string]any) {
	note := Note{Name: name, Data: data}
	for _, listener := range l.listeners {
		listener.Notify(note)
	}
}

// Run initializes the backend, runs the frame cycle until the game returns
// Exit, then tears the backend down. A frame that exits mid-update is never
// flipped.
func (l *Loop) Run(game Game) error {
	l.notify("GAMELOOP_INIT", map[string]any{
		"width":  l.config.Width,
		"height": l.config.Height,
		"fps":    l.config.FPS,
	})
	if err := l.backend.Init(l.config.Width, l.config.Height, l.config.FPS); err != nil {
		l.notify("GAMELOOP_QUIT", nil)
		return err
	}
	defer func() {
		l.notify("GAMELOOP_QUIT", nil)
		l.backend.Quit()
	}()

	dt := 0.0
	for {
		for _, event := range l.backend.PollEvents() {
			if game.HandleEvent(event) == Exit {
				return nil
			}
		}
		if game.Tick(dt, l) == Exit {
			return nil
		}
		l.backend.Flip()
		dt = l.backend.Tick(l.config.FPS)
	}
}

// ClearScreen implements Canvas.
func (l *Loop) ClearScreen() {
	l.notify("CLEAR_SCREEN", nil)
	l.backend.ClearScreen()
}

// DrawCircle implements Canvas.
func (l *Loop) DrawCircle(center geom.Point, radius float64, color Color) {
	l.notify("DRAW_CIRCLE", map[string]any{
		"x":      int(center.X),
		"y":      int(center.Y),
		"radius": radius,
		"color":  color.String(),
	})
	l.backend.DrawCircle(center, radius, color)
}

// DrawText implements Canvas.
func (l *Loop) DrawText(position geom.Point, text string, size float64, color Color) {
	l.notify("DRAW_TEXT", map[string]any{
		"x":     int(position.X),
		"y":     int(position.Y),
		"text":  text,
		"color": color.String(),
	})
	l.backend.DrawText(position, text, size, color)
}
