package hockey

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/policy"
)

func (game HockeyGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// units converts between table space (pixels, pixels/tick) and Box2D space
// (meters, m/s, newtons).
type units struct {
	ppm        float64 // pixels per meter
	tps        float64 // ticks per second
	forceScale float64 // newtons per table force unit
}

func (u units) length(px float64) float64 {
	return px / u.ppm
}

func (u units) toWorld(v vector.Vector2) box2d.B2Vec2 {
	return v.DivScalar(u.ppm).ToB2Vec2()
}

func (u units) fromWorld(v box2d.B2Vec2) vector.Vector2 {
	return vector.FromB2Vec2(v).Scale(u.ppm)
}

func (u units) toWorldVelocity(v vector.Vector2) box2d.B2Vec2 {
	return v.Scale(u.tps / u.ppm).ToB2Vec2()
}

func (u units) fromWorldVelocity(v box2d.B2Vec2) vector.Vector2 {
	return vector.FromB2Vec2(v).Scale(u.ppm / u.tps)
}

func (u units) toNewtons(f vector.Vector2) box2d.B2Vec2 {
	return f.Scale(u.forceScale).ToB2Vec2()
}

// damping returns the Box2D linear damping for which a free body keeps
// 1 - frictionAir of its velocity every tick.
func (u units) damping(frictionAir float64) float64 {
	return (1/(1-frictionAir) - 1) * u.tps
}

// density returns the density giving a disc of the given radius (px) the given mass (kg).
func (u units) density(mass float64, radius float64) float64 {
	r := u.length(radius)
	return mass / (math.Pi * r * r)
}

type PhysicalBody struct {
	body   *box2d.B2Body
	units  units
	radius float64        // expressed in px; 0 for boxes
	size   vector.Vector2 // expressed in px; boxes only
	static bool
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

// GetPosition is expressed in px
func (p PhysicalBody) GetPosition() vector.Vector2 {
	return p.units.fromWorld(p.body.GetPosition())
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetTransform(p.units.toWorld(v), p.body.GetAngle())
	p.body.SetAwake(true)
	return p
}

// GetVelocity is expressed in px/tick
func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return p.units.fromWorldVelocity(p.body.GetLinearVelocity())
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.body.SetLinearVelocity(p.units.toWorldVelocity(v))
	return p
}

// ApplyForce accumulates a force expressed in table units until the next world step.
func (p *PhysicalBody) ApplyForce(f vector.Vector2) *PhysicalBody {
	if p.static || f.IsNull() {
		return p
	}

	p.body.ApplyForceToCenter(p.units.toNewtons(f), true)
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	return p.radius
}

func (p PhysicalBody) GetSize() vector.Vector2 {
	return p.size
}

func (p PhysicalBody) GetMass() float64 {
	return p.body.GetMass()
}

func (p PhysicalBody) IsStatic() bool {
	return p.static
}

func (p PhysicalBody) State() policy.BodyState {
	return policy.BodyState{
		Position: p.GetPosition(),
		Velocity: p.GetVelocity(),
	}
}
