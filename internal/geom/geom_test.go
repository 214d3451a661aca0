package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{"same point", Pt(5, 5), Pt(5, 5), 0},
		{"horizontal", Pt(0, 0), Pt(3, 0), 3},
		{"vertical", Pt(0, 0), Pt(0, 4), 4},
		{"diagonal 3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative coords", Pt(-3, -4), Pt(0, 0), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.DistanceTo(tc.b)
			if math.Abs(result-tc.expected) > epsilon {
				t.Errorf("DistanceTo() = %v, expected %v", result, tc.expected)
			}
			// Distance is symmetric
			reverse := tc.b.DistanceTo(tc.a)
			if math.Abs(reverse-tc.expected) > epsilon {
				t.Errorf("DistanceTo() (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestPointOperationsArePure(t *testing.T) {
	p := Pt(1, 2)

	moved := p.Move(10, 20)
	added := p.Add(Pt(5, 5))
	scaled := p.Times(3)

	if p != Pt(1, 2) {
		t.Errorf("source point mutated: %v", p)
	}
	if moved != Pt(11, 22) {
		t.Errorf("Move() = %v, expected (11, 22)", moved)
	}
	if added != Pt(6, 7) {
		t.Errorf("Add() = %v, expected (6, 7)", added)
	}
	if scaled != Pt(3, 6) {
		t.Errorf("Times() = %v, expected (3, 6)", scaled)
	}
}

func TestAngleToUnitPoint(t *testing.T) {
	tests := []struct {
		name  string
		angle Angle
		x, y  float64
	}{
		{"zero points right", Degrees(0), 1, 0},
		{"up is negative y", Up(), 0, -1},
		{"down is positive y", Degrees(90), 0, 1},
		{"left", Degrees(180), -1, 0},
		{"45 down-right", Degrees(45), math.Sqrt2 / 2, math.Sqrt2 / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.angle.ToUnitPoint()
			if math.Abs(p.X-tc.x) > epsilon || math.Abs(p.Y-tc.y) > epsilon {
				t.Errorf("ToUnitPoint() = %v, expected (%v, %v)", p, tc.x, tc.y)
			}
		})
	}
}

func TestAngleAddNormalizes(t *testing.T) {
	a := Degrees(170).Add(Degrees(20))
	if a.Degrees() != -170 {
		t.Errorf("170 + 20 = %v, expected -170", a.Degrees())
	}

	b := Degrees(-170).Add(Degrees(-20))
	if b.Degrees() != 170 {
		t.Errorf("-170 + -20 = %v, expected 170", b.Degrees())
	}
}

func TestFractionOfWhole(t *testing.T) {
	half := FractionOfWhole(0.5)
	if half.Degrees() != -180 {
		t.Errorf("FractionOfWhole(0.5) = %v, expected -180 (normalized)", half.Degrees())
	}

	quarter := FractionOfWhole(0.25)
	if quarter.Degrees() != 90 {
		t.Errorf("FractionOfWhole(0.25) = %v, expected 90", quarter.Degrees())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(30, 25))

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner (inclusive)", Pt(10, 10), true},
		{"bottom-right corner (inclusive)", Pt(30, 25), true},
		{"on top edge", Pt(20, 10), true},
		{"on right edge", Pt(30, 20), true},
		{"left of rect", Pt(9.99, 15), false},
		{"below rect", Pt(20, 25.01), false},
		{"way outside", Pt(-100, -100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectInflateDeflate(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(30, 25))

	inflated := r.Inflate(5)
	if inflated.TopLeft != Pt(5, 5) || inflated.BottomRight != Pt(35, 30) {
		t.Errorf("Inflate(5) = %v", inflated)
	}

	deflated := r.Deflate(5)
	if deflated.TopLeft != Pt(15, 15) || deflated.BottomRight != Pt(25, 20) {
		t.Errorf("Deflate(5) = %v", deflated)
	}

	// Zero inflate/deflate is the identity
	if r.Inflate(0) != r {
		t.Errorf("Inflate(0) = %v, expected %v", r.Inflate(0), r)
	}
	if r.Deflate(0) != r {
		t.Errorf("Deflate(0) = %v, expected %v", r.Deflate(0), r)
	}

	// Inflate then deflate round-trips
	if r.Inflate(7).Deflate(7) != r {
		t.Errorf("Inflate(7).Deflate(7) = %v, expected %v", r.Inflate(7).Deflate(7), r)
	}
}

func TestRectFromSize(t *testing.T) {
	r := RectFromSize(1280, 720)
	if r.Width() != 1280 || r.Height() != 720 {
		t.Errorf("RectFromSize(1280, 720) has size %vx%v", r.Width(), r.Height())
	}
	if !r.Contains(Pt(0, 0)) || !r.Contains(Pt(1280, 720)) {
		t.Error("corners should be inside (inclusive bounds)")
	}
}
