package shooter

import (
	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

// Bow is a player-controlled launcher. It owns one nocked arrow that marks
// its aim; shooting spawns an independent flying clone.
type Bow struct {
	arrow *Arrow
}

// NewBow creates a bow at the given position, aiming straight up.
func NewBow(position geom.Point, color engine.Color, cfg config.ArrowConfig) *Bow {
	return &Bow{arrow: NewArrow(position, color, cfg)}
}

// Turn proposes a new aim angle. The turn commits only if the result
// still points upward; a candidate at or below the horizontal is dropped
// entirely. This is a hard clamp: a blocked turn leaves the angle exactly
// where it was, with no accumulation of the rejected rotation.
func (b *Bow) Turn(delta geom.Angle) {
	candidate := b.arrow.Angle().Add(delta)
	// Compare in degrees rather than via ToUnitPoint: sin(-pi) is a tiny
	// negative number in floating point, which would let an exactly
	// horizontal-left aim through.
	if d := candidate.Degrees(); d > -180 && d < 0 {
		b.arrow.setAngle(candidate)
	}
}

// Shoot returns a new flying arrow copying the current aim. The nocked
// arrow stays on the bow, ready for the next shot.
func (b *Bow) Shoot() *Arrow {
	return b.arrow.CloneShooting()
}

// Angle returns the current aim angle.
func (b *Bow) Angle() geom.Angle {
	return b.arrow.Angle()
}

// Update implements sprite.Sprite. The nocked arrow does not move.
func (b *Bow) Update(dt float64) {}

// Draw renders the nocked arrow.
func (b *Bow) Draw(canvas engine.Canvas) {
	b.arrow.Draw(canvas)
}
