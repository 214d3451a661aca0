package launcher

import "github.com/okarlsen/skyshot/internal/engine"

// LoopCondition bounds the outer select-run cycle.
type LoopCondition interface {
	Active() bool
}

// Infinite keeps the launcher running until the user cancels.
type Infinite struct{}

// Active always reports true.
func (Infinite) Active() bool { return true }

// Finite allows a fixed number of select-run cycles. Used by tests.
type Finite struct {
	remaining int
}

// NewFinite creates a condition allowing n cycles.
func NewFinite(n int) *Finite {
	return &Finite{remaining: n}
}

// Active reports whether a cycle is still allowed, consuming one.
func (f *Finite) Active() bool {
	if f.remaining <= 0 {
		return false
	}
	f.remaining--
	return true
}

// App is the launcher application: it repeatedly shows the select screen
// and runs the chosen command until cancelled or the condition expires.
type App struct {
	loop      *engine.Loop
	scene     *Scene
	condition LoopCondition
	runner    Runner
}

// NewApp wires a launcher over a loop, select screen, cycle bound, and
// command runner.
func NewApp(loop *engine.Loop, scene *Scene, condition LoopCondition, runner Runner) *App {
	return &App{loop: loop, scene: scene, condition: condition, runner: runner}
}

// Run cycles the select screen. Each confirmed selection runs its command
// and then re-enters the screen; quit or escape ends the cycle without
// running anything.
func (a *App) Run() error {
	for a.condition.Active() {
		if err := a.loop.Run(a.scene); err != nil {
			return err
		}
		if a.scene.Cancelled() {
			return nil
		}
		command := a.scene.Command()
		if len(command) == 0 {
			return nil
		}
		if err := a.runner.Run(command); err != nil {
			return err
		}
	}
	return nil
}
