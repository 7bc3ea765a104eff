package geom

import "math"

// DefaultDirection is used where a direction is needed but two points
// coincide, so normalizing their difference would divide by zero.
var DefaultDirection = Vec3{X: 1}

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the euclidean distance to another point.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Normalized returns the unit vector pointing in v's direction.
// A zero-length vector normalizes to DefaultDirection.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return DefaultDirection
	}
	return v.Scale(1 / l)
}

// MoveToward returns v advanced toward target by at most step,
// stopping exactly at target rather than overshooting.
func (v Vec3) MoveToward(target Vec3, step float64) Vec3 {
	delta := target.Sub(v)
	dist := delta.Length()
	if step >= dist {
		return target
	}
	return v.Add(delta.Normalized().Scale(step))
}

// ApproachPoint returns the point standoff units short of target along
// the from->target direction. Units use it to stop next to a thing
// instead of walking into its center.
func ApproachPoint(from, target Vec3, standoff float64) Vec3 {
	dir := target.Sub(from).Normalized()
	return target.Sub(dir.Scale(standoff))
}

// DistanceToRay returns the perpendicular distance from point p to the
// ray starting at origin in direction dir, and the distance along the
// ray of the closest approach. Points behind the origin project onto
// the origin itself.
func DistanceToRay(p, origin, dir Vec3) (perp, along float64) {
	d := dir.Normalized()
	along = p.Sub(origin).Dot(d)
	if along < 0 {
		along = 0
	}
	closest := origin.Add(d.Scale(along))
	return p.DistanceTo(closest), along
}
