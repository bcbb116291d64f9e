package hockey

import (
	"github.com/ByteArena/box2d"
	"github.com/bytearena/ecs"
	"github.com/wybiral/air-hockey/common/config"
	commontypes "github.com/wybiral/air-hockey/common/types"
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/policy"
)

// contact friction shared by every fixture of the table
const surfaceFriction = 0.1

func (game *HockeyGame) NewEntityPaddle(side policy.Side, position vector.Vector2, controller Controller, bindings config.KeyBindings) *ecs.Entity {

	paddle := game.manager.NewEntity()
	body := newDisc(game, position, game.conf.Paddle)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Paddle,
		paddle.GetID(),
	))

	return paddle.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:   body,
			units:  game.units,
			radius: game.conf.Paddle.Radius,
		}).
		AddComponent(game.paddleComponent, &Paddle{
			side:       side,
			controller: controller,
			bindings:   bindings,
		}).
		AddComponent(game.renderComponent, &Render{
			type_: "paddle",
			color: game.conf.Colors.Paddles,
		})
}

// newDisc creates a dynamic circle body from its table-space parameters.
func newDisc(game *HockeyGame, position vector.Vector2, conf config.BodyConfig) *box2d.B2Body {
	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position = game.units.toWorld(position)
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true
	bodydef.LinearDamping = game.units.damping(conf.FrictionAir)

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(game.units.length(conf.Radius))

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = game.units.density(conf.Mass, conf.Radius)
	fixturedef.Friction = surfaceFriction
	fixturedef.Restitution = conf.Restitution
	body.CreateFixtureFromDef(&fixturedef)

	return body
}
