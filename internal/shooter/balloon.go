package shooter

import (
	"math/rand"

	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

// Balloon is a drifting target.
type Balloon struct {
	position geom.Point
	radius   float64
	speed    float64
}

// NewBalloon creates a balloon at the given position.
func NewBalloon(position geom.Point, cfg config.BalloonConfig) *Balloon {
	return &Balloon{position: position, radius: cfg.Radius, speed: cfg.Speed}
}

// Update drifts the balloon downward.
func (b *Balloon) Update(dt float64) {
	b.position = b.position.Move(0, b.speed*dt)
}

// Contains reports whether p is inside the balloon. The boundary counts:
// a point at exactly radius distance is a hit.
func (b *Balloon) Contains(p geom.Point) bool {
	return b.position.DistanceTo(p) <= b.radius
}

// IsOutsideOf reports whether the balloon has drifted clear of the screen,
// with a two-radius margin so it disappears fully off-screen.
func (b *Balloon) IsOutsideOf(screen geom.Rect) bool {
	return !screen.Inflate(b.radius * 2).Contains(b.position)
}

// Draw renders the balloon.
func (b *Balloon) Draw(canvas engine.Canvas) {
	canvas.DrawCircle(b.position, b.radius, engine.ColorRed)
}

// Position returns the balloon's center.
func (b *Balloon) Position() geom.Point {
	return b.position
}

// Balloons keeps the target population alive: it drifts every balloon,
// culls the ones that leave the screen, and respawns along the top edge
// until the population is back at target, all within one Update call.
type Balloons struct {
	screen   geom.Rect
	target   int
	cfg      config.BalloonConfig
	rng      *rand.Rand
	balloons []*Balloon
}

// NewBalloons creates a spawner for the given screen and target count.
// The seed makes spawn positions reproducible.
func NewBalloons(screen geom.Rect, target int, cfg config.BalloonConfig, seed int64) *Balloons {
	return &Balloons{
		screen: screen,
		target: target,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Add inserts a balloon at the end of the container.
func (bs *Balloons) Add(b *Balloon) *Balloon {
	bs.balloons = append(bs.balloons, b)
	return b
}

// Update advances, culls, and respawns. Post-condition: the population
// equals the target.
func (bs *Balloons) Update(dt float64) {
	alive := bs.balloons[:0]
	for _, b := range bs.balloons {
		b.Update(dt)
		if !b.IsOutsideOf(bs.screen) {
			alive = append(alive, b)
		}
	}
	bs.balloons = alive
	for len(bs.balloons) < bs.target {
		bs.Add(NewBalloon(bs.spawnPosition(), bs.cfg))
	}
}

// spawnPosition picks a random x along the top edge, keeping the spawn
// margin away from both sides.
func (bs *Balloons) spawnPosition() geom.Point {
	spawn := bs.screen.Deflate(bs.cfg.SpawnMargin)
	x := spawn.TopLeft.X + bs.rng.Float64()*spawn.Width()
	return geom.Pt(x, spawn.TopLeft.Y)
}

// HitByArrow returns the first balloon, in container order, containing the
// arrow's head point, or nil. Container order is the deliberate tie-break
// when balloons overlap: only one balloon is credited per arrow.
func (bs *Balloons) HitByArrow(arrow *Arrow) *Balloon {
	for _, b := range bs.balloons {
		if arrow.HitsBalloon(b) {
			return b
		}
	}
	return nil
}

// Remove deletes a balloon by identity.
func (bs *Balloons) Remove(b *Balloon) {
	for i, existing := range bs.balloons {
		if existing == b {
			bs.balloons = append(bs.balloons[:i], bs.balloons[i+1:]...)
			return
		}
	}
}

// Count returns the live population.
func (bs *Balloons) Count() int {
	return len(bs.balloons)
}

// Draw renders every balloon in container order.
func (bs *Balloons) Draw(canvas engine.Canvas) {
	for _, b := range bs.balloons {
		b.Draw(canvas)
	}
}
