package shooter

import (
	"strconv"

	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

// Score counts balloon hits and draws itself in the lower-left corner.
type Score struct {
	points   int
	position geom.Point
}

// NewScore creates a zero score drawn at the given position.
func NewScore(position geom.Point) *Score {
	return &Score{position: position}
}

// Add increments the score.
func (s *Score) Add(points int) {
	s.points += points
}

// Points returns the current score.
func (s *Score) Points() int {
	return s.points
}

// Update implements sprite.Sprite.
func (s *Score) Update(dt float64) {}

// Draw renders the counter.
func (s *Score) Draw(canvas engine.Canvas) {
	canvas.DrawText(s.position, strconv.Itoa(s.points), 100, engine.ColorBlack)
}
