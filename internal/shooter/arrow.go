// Package shooter implements the balloon shooter: bows, arrows, balloons,
// scoring, and the scene state machine that ties them together. All logic
// here is pure simulation driven by the engine loop; rendering goes through
// the engine.Canvas it is handed each frame.
package shooter

import (
	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

// Arrow is a projectile. Nocked on a bow it only aims; a shooting clone
// flies in a straight line until it hits a balloon or leaves the screen.
type Arrow struct {
	position   geom.Point
	angle      geom.Angle
	shooting   bool
	speed      float64
	cullMargin float64
	color      engine.Color
}

// NewArrow creates a nocked arrow at rest, aiming up.
func NewArrow(position geom.Point, color engine.Color, cfg config.ArrowConfig) *Arrow {
	return &Arrow{
		position:   position,
		angle:      geom.Up(),
		speed:      cfg.Speed,
		cullMargin: cfg.CullMargin,
		color:      color,
	}
}

// CloneShooting returns a new flying arrow with this arrow's position,
// angle, and color. The source arrow is untouched: a nocked arrow is never
// mutated into a flying one.
func (a *Arrow) CloneShooting() *Arrow {
	clone := *a
	clone.shooting = true
	return &clone
}

// Update advances a flying arrow along its angle. Nocked arrows stay put.
func (a *Arrow) Update(dt float64) {
	if a.shooting {
		a.position = a.position.Add(a.angle.ToUnitPoint().Times(a.speed * dt))
	}
}

// Draw renders the arrow as three circles along its shaft.
func (a *Arrow) Draw(canvas engine.Canvas) {
	back := a.angle.ToUnitPoint().Times(-1)
	canvas.DrawCircle(a.position.Add(back.Times(40)), 15, a.color)
	canvas.DrawCircle(a.position.Add(back.Times(20)), 12, a.color)
	canvas.DrawCircle(a.position, 10, a.color)
}

// IsOutsideOf reports whether the arrow's head has left the screen plus
// the cull margin, so arrows disappear slightly past the visible edge.
func (a *Arrow) IsOutsideOf(screen geom.Rect) bool {
	return !screen.Inflate(a.cullMargin).Contains(a.position)
}

// HitsBalloon reports whether the arrow's head point is inside the balloon.
func (a *Arrow) HitsBalloon(balloon *Balloon) bool {
	return balloon.Contains(a.position)
}

// Position returns the arrow head position.
func (a *Arrow) Position() geom.Point {
	return a.position
}

// Angle returns the arrow's flight (or aim) angle.
func (a *Arrow) Angle() geom.Angle {
	return a.angle
}

// Shooting reports whether this arrow is flying.
func (a *Arrow) Shooting() bool {
	return a.shooting
}

func (a *Arrow) setAngle(angle geom.Angle) {
	a.angle = angle
}
