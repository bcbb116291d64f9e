package hockey

import (
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/policy"
)

type Controller int

const (
	ControllerNone Controller = iota
	ControllerKeyboard
	ControllerAgent
)

func (c Controller) String() string {
	switch c {
	case ControllerKeyboard:
		return "keyboard"
	case ControllerAgent:
		return "agent"
	}

	return "none"
}

func (game HockeyGame) CastPaddle(data interface{}) *Paddle {
	return data.(*Paddle)
}

type Paddle struct {
	side       policy.Side
	controller Controller
	bindings   config.KeyBindings

	force vector.Vector2 // summed over the systems of the current tick, table units
	label policy.Label   // movement intent of the current tick, in the paddle's own frame
}

func (p Paddle) GetSide() policy.Side {
	return p.side
}

func (p Paddle) GetController() Controller {
	return p.controller
}

func (p Paddle) GetBindings() config.KeyBindings {
	return p.bindings
}

func (p *Paddle) AddForce(f vector.Vector2) *Paddle {
	p.force = p.force.Add(f)
	return p
}

func (p *Paddle) PopForce() vector.Vector2 {
	defer func() { p.force = vector.MakeNullVector2() }()
	return p.force
}

func (p Paddle) GetLabel() policy.Label {
	return p.label
}

func (p *Paddle) SetLabel(label policy.Label) *Paddle {
	p.label = label
	return p
}
