package hockey

import (
	"github.com/bytearena/ecs"
	commontypes "github.com/wybiral/air-hockey/common/types"
	"github.com/wybiral/air-hockey/common/utils/vector"
)

func (game *HockeyGame) NewEntityPuck(position vector.Vector2) *ecs.Entity {

	puck := game.manager.NewEntity()
	body := newDisc(game, position, game.conf.Puck)
	body.SetBullet(true) // continuous collision against the rails
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Puck,
		puck.GetID(),
	))

	return puck.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:   body,
			units:  game.units,
			radius: game.conf.Puck.Radius,
		}).
		AddComponent(game.renderComponent, &Render{
			type_: "puck",
			color: game.conf.Colors.Puck,
		})
}
