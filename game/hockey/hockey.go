// Package hockey holds the air hockey table: the Box2D world, the ECS
// registry of its bodies and the systems run on every tick.
package hockey

import (
	"encoding/json"
	"math/rand"

	"github.com/ByteArena/box2d"
	"github.com/bytearena/ecs"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/input"
	commontypes "github.com/wybiral/air-hockey/common/types"
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/learning"
	"github.com/wybiral/air-hockey/game/policy"
)

// ErrNoNetwork is returned when saving the network of a mode without agent.
var ErrNoNetwork = errors.New("no network in this mode")

// KeySource is read once per tick by the player system.
type KeySource interface {
	Snapshot() input.Snapshot
}

type HockeyGame struct {
	ticknum   int
	episode   int
	sessionID uuid.UUID

	conf     config.Config
	mode     string
	profile  modeProfile
	geometry policy.Geometry
	units    units
	rng      *rand.Rand
	keys     KeySource

	topology learning.Topology
	network  learning.Network
	learner  *learning.Learner

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	paddleComponent       *ecs.Component
	renderComponent       *ecs.Component

	paddlesView    *ecs.View
	renderableView *ecs.View

	paddles [2]*ecs.Entity // indexed by policy.Side
	puck    *ecs.Entity

	PhysicalWorld     *box2d.B2World
	collisionListener *collisionListener
}

// NewHockeyGame builds the table for conf.Mode. network may be nil, in which
// case a fresh perceptron is drawn from rng when the mode needs one.
func NewHockeyGame(conf config.Config, keys KeySource, network learning.Network, rng *rand.Rand) (*HockeyGame, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	profile, err := profileForMode(conf.Mode)
	if err != nil {
		return nil, err
	}

	manager := ecs.NewManager()

	game := &HockeyGame{
		sessionID: uuid.NewV4(),

		conf:     conf,
		mode:     conf.Mode,
		profile:  profile,
		geometry: policy.GeometryFromConfig(conf),
		units: units{
			ppm:        conf.Physics.PixelsPerMeter,
			tps:        float64(conf.Tps),
			forceScale: conf.Physics.ForceScale,
		},
		rng:      rng,
		keys:     keys,
		topology: learning.DefaultTopology.WithHidden(conf.Learning.Hidden),

		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		paddleComponent:       manager.NewComponent(),
		renderComponent:       manager.NewComponent(),
	}

	gravity := box2d.MakeB2Vec2(0.0, 0.0) // gravity 0: the table is seen from the top
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	game.collisionListener = newCollisionListener(game)
	game.PhysicalWorld.SetContactListener(game.collisionListener)

	initPhysicalWorld(game)

	game.paddlesView = manager.CreateView(
		game.paddleComponent,
		game.physicalBodyComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.physicalBodyComponent,
	)

	if network == nil && (profile.learning || profile.controllers[policy.SideB] == ControllerAgent) {
		network = learning.NewPerceptron(game.topology, rng)
	}
	game.network = network

	if profile.learning {
		game.learner = learning.NewLearner(
			network,
			learning.NewSampleBuffer(conf.Learning.Capacity, rng),
			learning.LearnerOptionsFromConfig(conf.Learning),
		)
	}

	return game, nil
}

func initPhysicalWorld(game *HockeyGame) {
	w, h := game.geometry.Width, game.geometry.Height

	setupTable(game)

	for _, side := range []policy.Side{policy.SideA, policy.SideB} {
		bindings := game.conf.Keys.A
		if side == policy.SideB {
			bindings = game.conf.Keys.B
		}

		game.paddles[side] = game.NewEntityPaddle(
			side,
			startPosition(side, w, h),
			game.profile.controllers[side],
			bindings,
		)
	}

	game.puck = game.NewEntityPuck(vector.MakeVector2(w/2, h/2))
}

func startPosition(side policy.Side, w, h float64) vector.Vector2 {
	if side == policy.SideA {
		return vector.MakeVector2(100, h/2)
	}

	return vector.MakeVector2(w-100, h/2)
}

func (game HockeyGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *HockeyGame) physicalBodyOf(entity *ecs.Entity) *PhysicalBody {
	qr := game.getEntity(entity.GetID(), game.physicalBodyComponent)
	return game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
}

func (game *HockeyGame) Step(ticknum int, dt float64) {

	game.ticknum = ticknum
	keys := game.keys.Snapshot()

	///////////////////////////////////////////////////////////////////////////
	// Keyboard controlled paddles
	///////////////////////////////////////////////////////////////////////////
	systemPlayer(game, keys)

	///////////////////////////////////////////////////////////////////////////
	// Each paddle stays in its half, out of its own goal mouth
	///////////////////////////////////////////////////////////////////////////
	if game.profile.boundary {
		systemBoundary(game)
	}

	///////////////////////////////////////////////////////////////////////////
	// Network controlled paddles
	///////////////////////////////////////////////////////////////////////////
	systemAgent(game)

	///////////////////////////////////////////////////////////////////////////
	// Imitation of paddle A
	///////////////////////////////////////////////////////////////////////////
	if game.learner != nil {
		systemLearning(game)
	}

	///////////////////////////////////////////////////////////////////////////
	// Puck out of the table
	///////////////////////////////////////////////////////////////////////////
	systemEpisode(game)

	///////////////////////////////////////////////////////////////////////////
	// Forces are applied and the world integrated
	///////////////////////////////////////////////////////////////////////////
	systemPhysics(game, dt)
}

// Randomize draws new positions for every dynamic body, whatever the mode.
func (game *HockeyGame) Randomize() {
	resetEpisode(game, ResetRandomized)
}

func (game *HockeyGame) Scene() policy.Scene {
	return policy.Scene{
		A:    game.Paddle(policy.SideA).State(),
		B:    game.Paddle(policy.SideB).State(),
		Puck: game.Puck().State(),
	}
}

func (game *HockeyGame) Paddle(side policy.Side) *PhysicalBody {
	return game.physicalBodyOf(game.paddles[side])
}

func (game *HockeyGame) Puck() *PhysicalBody {
	return game.physicalBodyOf(game.puck)
}

func (game *HockeyGame) GetMode() string {
	return game.mode
}

func (game *HockeyGame) GetGeometry() policy.Geometry {
	return game.geometry
}

func (game *HockeyGame) GetEpisode() int {
	return game.episode
}

func (game *HockeyGame) GetSessionID() uuid.UUID {
	return game.sessionID
}

func (game *HockeyGame) GetNetwork() learning.Network {
	return game.network
}

func (game *HockeyGame) GetTopology() learning.Topology {
	return game.topology
}

// SetNetwork swaps the network used by the agent and the learner; the sample
// buffer is kept.
func (game *HockeyGame) SetNetwork(network learning.Network) {
	game.network = network
	if game.learner != nil {
		game.learner.SetNetwork(network)
	}
}

// LoadNetwork replaces the network with a serialized one. Empty data is a
// no-op; invalid data leaves the current network in place.
func (game *HockeyGame) LoadNetwork(data []byte) (bool, error) {
	if len(data) == 0 {
		return false, nil
	}

	network, err := learning.UnmarshalNetwork(data, game.topology)
	if err != nil {
		return false, err
	}

	game.SetNetwork(network)
	return true, nil
}

func (game *HockeyGame) SaveNetwork() ([]byte, error) {
	if game.network == nil {
		return nil, errors.Wrapf(ErrNoNetwork, "mode %s", game.mode)
	}

	return learning.MarshalNetwork(game.network)
}

type Stats struct {
	Tick     int                    `json:"tick"`
	Episode  int                    `json:"episode"`
	HitsA    int                    `json:"hits_a"`
	HitsB    int                    `json:"hits_b"`
	WallHits int                    `json:"wall_hits"`
	Learner  *learning.LearnerStats `json:"learner,omitempty"`

	// side of the paddle that touched the puck last this episode
	LastTouch string `json:"last_touch,omitempty"`
}

func (game *HockeyGame) Stats() Stats {
	stats := Stats{
		Tick:     game.ticknum,
		Episode:  game.episode,
		HitsA:    game.collisionListener.hits[policy.SideA],
		HitsB:    game.collisionListener.hits[policy.SideB],
		WallHits: game.collisionListener.wallHits,
	}

	if game.collisionListener.lastTouch >= 0 {
		stats.LastTouch = policy.Side(game.collisionListener.lastTouch).String()
	}

	if game.learner != nil {
		learnerStats := game.learner.Stats()
		stats.Learner = &learnerStats
	}

	return stats
}

func (game *HockeyGame) GetVizFrameJson() []byte {
	msg := commontypes.VizMessage{
		SessionID: game.sessionID.String(),
		Tick:      game.ticknum,
		Episode:   game.episode,
		Mode:      game.mode,
		Width:     game.geometry.Width,
		Height:    game.geometry.Height,
		Objects:   []commontypes.VizMessageObject{},
	}

	for _, entityresult := range game.renderableView.Get() {

		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		physicalBodyAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		object := commontypes.VizMessageObject{
			Id:       entityresult.Entity.GetID().String(),
			Type:     renderAspect.GetType(),
			Position: physicalBodyAspect.GetPosition(),
			Velocity: physicalBodyAspect.GetVelocity(),
			Radius:   physicalBodyAspect.GetRadius(),
			Color:    renderAspect.GetColor(),
		}

		if physicalBodyAspect.IsStatic() {
			size := physicalBodyAspect.GetSize()
			object.Size = &size
		}

		if qr := game.getEntity(entityresult.Entity.GetID(), game.paddleComponent); qr != nil {
			object.Side = game.CastPaddle(qr.Components[game.paddleComponent]).GetSide().String()
		}

		msg.Objects = append(msg.Objects, object)
	}

	res, _ := json.Marshal(msg)
	return res
}
