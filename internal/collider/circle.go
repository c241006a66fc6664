// Package collider provides circle colliders and the alpha-mask analysis
// that derives them from sprite silhouettes.
package collider

import "math"

// Circle is a collision circle in an entity's local coordinate space.
type Circle struct {
	X, Y, R float64
}

// Translate returns the circle shifted by (dx, dy), typically from local
// into world coordinates.
func (c Circle) Translate(dx, dy float64) Circle {
	return Circle{X: c.X + dx, Y: c.Y + dy, R: c.R}
}

// Intersects reports whether two circles overlap. Touching circles whose
// center distance equals the radius sum do not count as intersecting.
func (c Circle) Intersects(o Circle) bool {
	dx := o.X - c.X
	dy := o.Y - c.Y
	return math.Sqrt(dx*dx+dy*dy) < c.R+o.R
}
