// Package input turns discrete backend events into per-frame player
// actions. Each input source (the keyboard, each joystick instance) is
// tracked independently: turn input is a latched factor in [-1, 1] that
// persists while a key is held, shoot input is edge-triggered and drained
// once per frame.
package input

import (
	"fmt"

	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

// SourceID identifies one input source, and doubles as the player id in
// multiplayer scenes.
type SourceID string

// SourceKeyboard is the keyboard source, always present.
const SourceKeyboard SourceID = "keyboard"

// JoystickSource returns the source id for a joystick device instance.
func JoystickSource(device int) SourceID {
	return SourceID(fmt.Sprintf("joystick%d", device))
}

// Action is the normalized per-frame action set for one source.
type Action struct {
	Source    SourceID
	TurnDelta geom.Angle
	Shoot     bool
}

// Tuning holds the input conversion constants.
type Tuning struct {
	// TurnDivisor scales a held turn factor into a fraction of a full
	// circle per millisecond: delta = FractionOfWhole(factor*dt/TurnDivisor).
	TurnDivisor float64
	// Deadzone is the joystick axis magnitude below which the turn
	// factor resets to zero.
	Deadzone float64
}

// DefaultTuning returns the standard constants: a full circle per 2.5
// seconds at full deflection, with a ±0.01 deadzone.
func DefaultTuning() Tuning {
	return Tuning{TurnDivisor: 2500, Deadzone: 0.01}
}

// Handler is the per-source input state machine.
type Handler struct {
	tuning Tuning
	turn   map[SourceID]float64
	shots  map[SourceID]bool
	order  []SourceID // first-seen order, for deterministic Actions output
}

// NewHandler creates a handler with the keyboard source pre-registered.
func NewHandler(tuning Tuning) *Handler {
	h := &Handler{
		tuning: tuning,
		turn:   make(map[SourceID]float64),
		shots:  make(map[SourceID]bool),
	}
	h.register(SourceKeyboard)
	return h
}

func (h *Handler) register(id SourceID) {
	if _, ok := h.turn[id]; !ok {
		h.turn[id] = 0
		h.order = append(h.order, id)
	}
}

// HandleEvent consumes one backend event. Key-down latches a turn factor
// that persists until the matching key-up; shoot events are edge-triggered.
func (h *Handler) HandleEvent(event engine.Event) {
	switch {
	case event.IsKeyDown(engine.KeyLeft):
		h.turn[SourceKeyboard] = -1
	case event.IsKeyDown(engine.KeyRight):
		h.turn[SourceKeyboard] = 1
	case event.IsKeyUp(engine.KeyLeft), event.IsKeyUp(engine.KeyRight):
		h.turn[SourceKeyboard] = 0
	case event.IsKeyDown(engine.KeySpace):
		h.shots[SourceKeyboard] = true
	case event.Kind == engine.EventJoyButtonDown:
		id := JoystickSource(event.Device)
		h.register(id)
		h.shots[id] = true
	case event.IsJoyAxisMotion() && event.Axis == 0:
		id := JoystickSource(event.Device)
		h.register(id)
		if value := event.Value; value > h.tuning.Deadzone || value < -h.tuning.Deadzone {
			h.turn[id] = value
		} else {
			h.turn[id] = 0
		}
	}
}

// Actions converts the latched state into this frame's action set, one
// entry per known source in first-seen order. Pending shots are drained;
// turn factors persist for the next frame.
func (h *Handler) Actions(dt float64) []Action {
	actions := make([]Action, 0, len(h.order))
	for _, id := range h.order {
		actions = append(actions, Action{
			Source:    id,
			TurnDelta: geom.FractionOfWhole(h.turn[id] * dt / h.tuning.TurnDivisor),
			Shoot:     h.shots[id],
		})
	}
	for id := range h.shots {
		delete(h.shots, id)
	}
	return actions
}

// Sources returns the known source ids in first-seen order.
func (h *Handler) Sources() []SourceID {
	out := make([]SourceID, len(h.order))
	copy(out, h.order)
	return out
}
