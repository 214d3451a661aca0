// Package geom provides immutable 2D value types for the shooter simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable. Screen convention: +y points down, so "up" is -90°.
package geom

import "math"

// Point is an immutable 2D position or vector. All operations return new values.
type Point struct {
	X, Y float64
}

// Pt creates a point at (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Move returns a point translated by (dx, dy).
func (p Point) Move(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Times returns the point scaled by k.
func (p Point) Times(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// ToAngle returns the angle of the vector from the origin to p.
func (p Point) ToAngle() Angle {
	return Degrees(math.Atan2(p.Y, p.X) * 180 / math.Pi)
}

// Angle is an immutable angle in degrees, normalized to [-180, 180).
type Angle struct {
	degrees float64
}

// Degrees creates an angle from degrees.
func Degrees(d float64) Angle {
	d = math.Mod(d, 360)
	if d >= 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return Angle{degrees: d}
}

// FractionOfWhole creates an angle from a fraction of a full turn.
// FractionOfWhole(0.5) is half a circle.
func FractionOfWhole(fraction float64) Angle {
	return Degrees(fraction * 360)
}

// Up returns the angle pointing toward the top of the screen (-90°).
func Up() Angle {
	return Degrees(-90)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return a.degrees
}

// Add returns the normalized sum of two angles.
func (a Angle) Add(other Angle) Angle {
	return Degrees(a.degrees + other.degrees)
}

// ToUnitPoint returns the unit vector for this angle. With +y down,
// Up().ToUnitPoint() is (0, -1).
func (a Angle) ToUnitPoint() Point {
	rad := a.degrees * math.Pi / 180
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Rect is an immutable axis-aligned rectangle given by two corners.
type Rect struct {
	TopLeft     Point
	BottomRight Point
}

// NewRect creates a rectangle from its top-left and bottom-right corners.
func NewRect(topleft, bottomright Point) Rect {
	return Rect{TopLeft: topleft, BottomRight: bottomright}
}

// RectFromSize creates a rectangle anchored at the origin.
func RectFromSize(width, height float64) Rect {
	return Rect{BottomRight: Point{X: width, Y: height}}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.BottomRight.Y - r.TopLeft.Y
}

// Contains reports whether p lies inside the rectangle. Bounds are
// inclusive on all edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}

// Inflate returns a rectangle grown symmetrically by amount on every side.
func (r Rect) Inflate(amount float64) Rect {
	return Rect{
		TopLeft:     r.TopLeft.Move(-amount, -amount),
		BottomRight: r.BottomRight.Move(amount, amount),
	}
}

// Deflate returns a rectangle shrunk symmetrically by amount on every side.
func (r Rect) Deflate(amount float64) Rect {
	return r.Inflate(-amount)
}
