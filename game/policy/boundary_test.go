package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/policy"
	"pgregory.net/rapid"
)

const gain = 0.05

var geometry = policy.GeometryFromConfig(config.Default())

func TestBoundaryAtLimits(t *testing.T) {
	for _, side := range []policy.Side{policy.SideA, policy.SideB} {
		min, max := geometry.Limits(side)

		for _, x := range []float64{min, max, (min + max) / 2} {
			force := policy.Boundary(side, vector.MakeVector2(x, 123), geometry, gain)
			assert.True(t, force.IsNull(), "side %s at x=%v got %s", side, x, force)
		}
	}
}

func TestBoundaryLimitsMatchGeometry(t *testing.T) {
	min, max := geometry.Limits(policy.SideA)
	assert.Equal(t, 40.0, min)
	assert.Equal(t, 360.0, max)

	min, max = geometry.Limits(policy.SideB)
	assert.Equal(t, 440.0, min)
	assert.Equal(t, 760.0, max)
}

func TestBoundaryPenetration(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		side := policy.Side(rapid.IntRange(0, 1).Draw(t, "side"))
		d := rapid.Float64Range(0.001, 300).Draw(t, "depth")
		towardCenter := rapid.Bool().Draw(t, "towardCenter")
		y := rapid.Float64Range(0, geometry.Height).Draw(t, "y")

		min, max := geometry.Limits(side)

		var x, direction float64
		switch {
		case side == policy.SideA && towardCenter, side == policy.SideB && !towardCenter:
			x, direction = max+d, -1
		default:
			x, direction = min-d, 1
		}

		force := policy.Boundary(side, vector.MakeVector2(x, y), geometry, gain)

		assert.Equal(t, 0.0, force.GetY())
		assert.InDelta(t, gain*d, force.Mag(), 1e-9)
		assert.Equal(t, direction, force.GetX()/force.Mag())
	})
}
