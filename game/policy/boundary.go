package policy

import "github.com/wybiral/air-hockey/common/utils/vector"

// Boundary returns the restoring force keeping a paddle inside its half and
// out of its own goal mouth. The magnitude is gain times the penetration
// depth; a paddle sitting exactly on a limit gets no force.
func Boundary(side Side, position vector.Vector2, g Geometry, gain float64) vector.Vector2 {
	min, max := g.Limits(side)
	x := position.GetX()

	switch {
	case x > max:
		return vector.MakeVector2(-gain*(x-max), 0)
	case x < min:
		return vector.MakeVector2(gain*(min-x), 0)
	}

	return vector.MakeNullVector2()
}
