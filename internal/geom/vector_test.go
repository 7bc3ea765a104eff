package geom

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestVec3_DistanceTo(t *testing.T) {
	tests := map[string]struct {
		a, b Vec3
		exp  float64
	}{
		"same point":  {Vec3{1, 2, 3}, Vec3{1, 2, 3}, 0},
		"unit x":      {Vec3{}, Vec3{X: 1}, 1},
		"pythagorean": {Vec3{}, Vec3{X: 3, Z: 4}, 5},
		"negative":    {Vec3{X: -2}, Vec3{X: 2}, 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.DistanceTo(tt.b); !almostEqual(got, tt.exp) {
				t.Errorf("got %v, expected %v", got, tt.exp)
			}
		})
	}
}

func TestVec3_Normalized_ZeroLength(t *testing.T) {
	got := Vec3{}.Normalized()
	if got != DefaultDirection {
		t.Errorf("zero vector normalized to %v, expected DefaultDirection %v", got, DefaultDirection)
	}
}

func TestVec3_MoveToward(t *testing.T) {
	start := Vec3{}
	target := Vec3{X: 10}

	// Partial step moves the full step distance.
	mid := start.MoveToward(target, 4)
	if !almostEqual(mid.X, 4) {
		t.Errorf("partial step: got %v, expected x=4", mid)
	}

	// Distance to target must be non-increasing across steps.
	pos := start
	prev := pos.DistanceTo(target)
	for i := 0; i < 10; i++ {
		pos = pos.MoveToward(target, 1.5)
		d := pos.DistanceTo(target)
		if d > prev+tolerance {
			t.Fatalf("step %d: distance increased from %v to %v", i, prev, d)
		}
		prev = d
	}

	// Overshooting step lands exactly on the target.
	if got := (Vec3{X: 9.9}).MoveToward(target, 5); got != target {
		t.Errorf("overshoot: got %v, expected exactly %v", got, target)
	}
}

func TestApproachPoint(t *testing.T) {
	from := Vec3{}
	target := Vec3{X: 10}

	p := ApproachPoint(from, target, 2)
	if !almostEqual(p.X, 8) {
		t.Errorf("got %v, expected x=8", p)
	}
	if !almostEqual(p.DistanceTo(target), 2) {
		t.Errorf("standoff distance = %v, expected 2", p.DistanceTo(target))
	}

	// Coincident points fall back to the default direction.
	p = ApproachPoint(target, target, 2)
	if !almostEqual(p.DistanceTo(target), 2) {
		t.Errorf("coincident standoff distance = %v, expected 2", p.DistanceTo(target))
	}
}

func TestDistanceToRay(t *testing.T) {
	origin := Vec3{}
	dir := Vec3{X: 1}

	perp, along := DistanceToRay(Vec3{X: 5, Y: 3}, origin, dir)
	if !almostEqual(perp, 3) || !almostEqual(along, 5) {
		t.Errorf("got perp=%v along=%v, expected 3, 5", perp, along)
	}

	// Behind the origin projects onto the origin.
	perp, along = DistanceToRay(Vec3{X: -4}, origin, dir)
	if !almostEqual(perp, 4) || !almostEqual(along, 0) {
		t.Errorf("behind origin: got perp=%v along=%v, expected 4, 0", perp, along)
	}
}
