package hockey

import (
	"github.com/ByteArena/box2d"
	commontypes "github.com/wybiral/air-hockey/common/types"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Collision Handling
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type collisionListener struct { /* implements box2d.B2World.B2ContactListenerInterface */
	game *HockeyGame

	hits      [2]int // puck hits by paddle side
	wallHits  int
	lastTouch int // side of the last paddle touching the puck; -1 when none this episode
}

func (listener *collisionListener) resetEpisode() {
	listener.lastTouch = -1
}

/// Called when two fixtures begin to touch.
func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	descriptorA, ok := contact.GetFixtureA().GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
	if !ok {
		return
	}

	descriptorB, ok := contact.GetFixtureB().GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
	if !ok {
		return
	}

	if descriptorB.Type == commontypes.PhysicalBodyDescriptorType.Puck {
		descriptorA, descriptorB = descriptorB, descriptorA
	}

	if descriptorA.Type != commontypes.PhysicalBodyDescriptorType.Puck {
		return
	}

	switch descriptorB.Type {
	case commontypes.PhysicalBodyDescriptorType.Wall:
		listener.wallHits++
	case commontypes.PhysicalBodyDescriptorType.Paddle:
		qr := listener.game.getEntity(descriptorB.ID, listener.game.paddleComponent)
		if qr == nil {
			return
		}

		side := listener.game.CastPaddle(qr.Components[listener.game.paddleComponent]).GetSide()
		listener.hits[side]++
		listener.lastTouch = int(side)
	}
}

/// Called when two fixtures cease to touch.
func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) { // contact has to be backed by a pointer
}

func newCollisionListener(game *HockeyGame) *collisionListener {
	return &collisionListener{
		game:      game,
		lastTouch: -1,
	}
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
