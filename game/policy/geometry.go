package policy

import "github.com/wybiral/air-hockey/common/config"

// Side identifies the half of the table a paddle defends; A is the left one.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "a"
	}

	return "b"
}

type Geometry struct {
	Width        float64
	Height       float64
	PaddleRadius float64
	PuckRadius   float64
}

func GeometryFromConfig(conf config.Config) Geometry {
	return Geometry{
		Width:        conf.Table.Width,
		Height:       conf.Table.Height,
		PaddleRadius: conf.Paddle.Radius,
		PuckRadius:   conf.Puck.Radius,
	}
}

func (g Geometry) HalfWidth() float64 {
	return g.Width / 2
}

// Limits returns the legal x range of a paddle center on the given side.
func (g Geometry) Limits(side Side) (min float64, max float64) {
	if side == SideA {
		return g.PaddleRadius, g.HalfWidth() - g.PaddleRadius
	}

	return g.HalfWidth() + g.PaddleRadius, g.Width - g.PaddleRadius
}
