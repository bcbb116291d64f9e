package hockey

import (
	"github.com/ByteArena/box2d"
	"github.com/bytearena/ecs"
	commontypes "github.com/wybiral/air-hockey/common/types"
	"github.com/wybiral/air-hockey/common/utils/vector"
)

// NewEntityWall creates a static box; center and size are expressed in px.
func (game *HockeyGame) NewEntityWall(center vector.Vector2, size vector.Vector2) *ecs.Entity {

	wall := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody
	bodydef.Position = game.units.toWorld(center)

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(game.units.length(size.GetX()/2), game.units.length(size.GetY()/2))

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 0.0
	fixturedef.Friction = surfaceFriction
	fixturedef.Restitution = game.conf.Puck.Restitution
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Wall,
		wall.GetID(),
	))

	return wall.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:   body,
			units:  game.units,
			size:   size,
			static: true,
		}).
		AddComponent(game.renderComponent, &Render{
			type_: "wall",
			color: game.conf.Colors.Walls,
		})
}

// setupTable lays out the top and bottom rails and the four side walls
// framing the two goal mouths.
func setupTable(game *HockeyGame) {
	table := game.conf.Table
	w, h, t, g := table.Width, table.Height, table.WallThickness, table.GoalWallHeight

	// top, bottom
	game.NewEntityWall(vector.MakeVector2(w/2, t/2), vector.MakeVector2(w, t))
	game.NewEntityWall(vector.MakeVector2(w/2, h-t/2), vector.MakeVector2(w, t))

	// left
	game.NewEntityWall(vector.MakeVector2(t/2, t+g/2), vector.MakeVector2(t, g))
	game.NewEntityWall(vector.MakeVector2(t/2, h-t-g/2), vector.MakeVector2(t, g))

	// right
	game.NewEntityWall(vector.MakeVector2(w-t/2, t+g/2), vector.MakeVector2(t, g))
	game.NewEntityWall(vector.MakeVector2(w-t/2, h-t-g/2), vector.MakeVector2(t, g))
}
