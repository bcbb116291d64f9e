package policy

import "github.com/wybiral/air-hockey/common/utils/vector"

const (
	ObservationSize = 10

	// puck velocities are expressed in px/tick; randomized resets draw them in [-10, 10]
	velocityScale = 10.0
)

type Observation [ObservationSize]float64

func (o Observation) Slice() []float64 {
	res := make([]float64, ObservationSize)
	copy(res, o[:])
	return res
}

// BodyState is the part of a body the policies look at, in table units.
type BodyState struct {
	Position vector.Vector2
	Velocity vector.Vector2
}

// Mirrored reflects the state through the vertical axis of the table.
func (b BodyState) Mirrored(width float64) BodyState {
	return BodyState{
		Position: b.Position.MirrorX(width),
		Velocity: b.Velocity.NegateX(),
	}
}

// Scene is a snapshot of the three dynamic bodies.
type Scene struct {
	A    BodyState
	B    BodyState
	Puck BodyState
}

// Mirrored reflects the whole scene and swaps the role of both paddles.
func (s Scene) Mirrored(width float64) Scene {
	return Scene{
		A:    s.B.Mirrored(width),
		B:    s.A.Mirrored(width),
		Puck: s.Puck.Mirrored(width),
	}
}

// Observe encodes the scene from the point of view of one paddle.
// Side B sees the mirrored scene so that both sides share one network.
func Observe(side Side, scene Scene, g Geometry) Observation {
	if side == SideB {
		scene = scene.Mirrored(g.Width)
	}

	self, opponent, puck := scene.A.Position, scene.B.Position, scene.Puck
	hw, hh := g.Width/2, g.Height/2

	return Observation{
		(puck.Position.GetX() - self.GetX()) / g.Width,
		(puck.Position.GetY() - self.GetY()) / g.Height,
		(self.GetX() - hw) / hw,
		(self.GetY() - hh) / hh,
		(opponent.GetX() - hw) / hw,
		(opponent.GetY() - hh) / hh,
		(puck.Position.GetX() - hw) / hw,
		(puck.Position.GetY() - hh) / hh,
		puck.Velocity.GetX() / velocityScale,
		puck.Velocity.GetY() / velocityScale,
	}
}
