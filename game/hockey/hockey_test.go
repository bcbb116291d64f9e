package hockey

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/input"
	commontypes "github.com/wybiral/air-hockey/common/types"
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/learning"
	"github.com/wybiral/air-hockey/game/learning/mocks"
	"github.com/wybiral/air-hockey/game/policy"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

const (
	dt    = 1.0 / 60
	delta = 1e-6
)

func newTestGame(t require.TestingT, conf config.Config, network learning.Network, seed int64) (*HockeyGame, *input.State) {
	keys := input.NewState()
	game, err := NewHockeyGame(conf, keys, network, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return game, keys
}

func confForMode(mode string) config.Config {
	conf := config.Default()
	conf.Mode = mode
	conf.Learning.Capacity = 1000
	return conf
}

func step(game *HockeyGame, n int) {
	for i := 0; i < n; i++ {
		game.Step(game.ticknum+1, dt)
	}
}

func assertVectorInDelta(t assert.TestingT, expected vector.Vector2, actual vector.Vector2) {
	assert.InDelta(t, expected.GetX(), actual.GetX(), delta, "x of %s", actual)
	assert.InDelta(t, expected.GetY(), actual.GetY(), delta, "y of %s", actual)
}

func TestUnknownMode(t *testing.T) {
	conf := confForMode("arcade")

	_, err := NewHockeyGame(conf, input.NewState(), nil, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestBodyRegistry(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeKeyboard), nil, 1)

	assertVectorInDelta(t, vector.MakeVector2(100, 200), game.Paddle(policy.SideA).GetPosition())
	assertVectorInDelta(t, vector.MakeVector2(700, 200), game.Paddle(policy.SideB).GetPosition())
	assertVectorInDelta(t, vector.MakeVector2(400, 200), game.Puck().GetPosition())

	assert.InDelta(t, 100.0, game.Paddle(policy.SideA).GetMass(), delta)
	assert.InDelta(t, 10.0, game.Puck().GetMass(), delta)
	assert.Equal(t, 40.0, game.Paddle(policy.SideB).GetRadius())
	assert.Equal(t, 20.0, game.Puck().GetRadius())
	assert.Nil(t, game.GetNetwork())
}

func TestDragMatchesFrictionAir(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeStatic), nil, 1)

	puck := game.Puck()
	puck.SetVelocity(vector.MakeVector2(10, 0))
	step(game, 1)

	assert.InDelta(t, 10*(1-0.005), puck.GetVelocity().GetX(), delta)
}

func TestSimpleResetWhenPuckLeaves(t *testing.T) {
	for _, mode := range []string{config.ModeKeyboard, config.ModeVersus} {
		t.Run(mode, func(t *testing.T) {
			game, _ := newTestGame(t, confForMode(mode), nil, 1)

			game.Puck().
				SetPosition(vector.MakeVector2(-31, 200)).
				SetVelocity(vector.MakeVector2(-3, 1))

			step(game, 1)

			assertVectorInDelta(t, vector.MakeVector2(400, 200), game.Puck().GetPosition())
			assertVectorInDelta(t, vector.MakeNullVector2(), game.Puck().GetVelocity())
			assert.Equal(t, 1, game.GetEpisode())
		})
	}
}

func TestOutOfBoundsMargin(t *testing.T) {
	assert.False(t, puckOutOfBounds(-30, 800))
	assert.False(t, puckOutOfBounds(830, 800))
	assert.False(t, puckOutOfBounds(400, 800))
	assert.True(t, puckOutOfBounds(-30.001, 800))
	assert.True(t, puckOutOfBounds(830.001, 800))
}

func TestNoResetInsideTheMargin(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeKeyboard), nil, 1)

	game.Puck().SetPosition(vector.MakeVector2(-29.5, 200))
	assert.Equal(t, EpisodePlaying, systemEpisode(game))

	game.Puck().SetPosition(vector.MakeVector2(829.5, 200))
	assert.Equal(t, EpisodePlaying, systemEpisode(game))

	game.Puck().SetPosition(vector.MakeVector2(830.5, 200))
	assert.Equal(t, EpisodeResetting, systemEpisode(game))
	assert.Equal(t, 1, game.GetEpisode())
}

func TestStaticModeNeverResets(t *testing.T) {
	game, keys := newTestGame(t, confForMode(config.ModeStatic), nil, 1)
	keys.Press("KeyD")

	game.Puck().SetPosition(vector.MakeVector2(-100, 200))
	step(game, 3)

	assert.Equal(t, 0, game.GetEpisode())
	assertVectorInDelta(t, vector.MakeVector2(100, 200), game.Paddle(policy.SideA).GetPosition())
}

func TestRandomizedReset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		game, _ := newTestGame(t, confForMode(config.ModeLearning), nil, seed)

		game.Puck().SetPosition(vector.MakeVector2(-31, 200))
		require.Equal(t, EpisodeResetting, systemEpisode(game))

		w, h := 800.0, 400.0
		a := game.Paddle(policy.SideA).State()
		b := game.Paddle(policy.SideB).State()
		puck := game.Puck().State()

		assert.True(t, a.Position.GetX() >= 0 && a.Position.GetX() < w/2+delta, "paddle A at %s", a.Position)
		assert.True(t, b.Position.GetX() >= w/2-delta && b.Position.GetX() < w+delta, "paddle B at %s", b.Position)
		for _, position := range []vector.Vector2{a.Position, b.Position, puck.Position} {
			assert.True(t, position.GetY() >= 0 && position.GetY() < h+delta, "y of %s", position)
		}
		assert.True(t, puck.Position.GetX() >= 0 && puck.Position.GetX() < w+delta, "puck at %s", puck.Position)

		assert.InDelta(t, 0, puck.Velocity.GetX(), 10+delta)
		assert.InDelta(t, 0, puck.Velocity.GetY(), 10+delta)
		assertVectorInDelta(t, vector.MakeNullVector2(), a.Velocity)
		assertVectorInDelta(t, vector.MakeNullVector2(), b.Velocity)

		assert.Equal(t, 1, game.GetEpisode())
	})
}

func TestRandomizeInAnyMode(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeKeyboard), nil, 3)

	game.Randomize()

	assert.Equal(t, 1, game.GetEpisode())
	assert.Less(t, game.Paddle(policy.SideA).GetPosition().GetX(), 400.0+delta)
	assert.GreaterOrEqual(t, game.Paddle(policy.SideB).GetPosition().GetX(), 400.0-delta)
}

func TestKeyboardMovesPaddleA(t *testing.T) {
	game, keys := newTestGame(t, confForMode(config.ModeKeyboard), nil, 1)

	keys.Press("KeyD")
	keys.Press("ArrowLeft") // no controller on B in this mode
	step(game, 5)

	assert.Greater(t, game.Paddle(policy.SideA).GetVelocity().GetX(), 0.0)
	assert.Greater(t, game.Paddle(policy.SideA).GetPosition().GetX(), 100.0)
	assertVectorInDelta(t, vector.MakeVector2(700, 200), game.Paddle(policy.SideB).GetPosition())
}

func TestVersusMovesBothPaddles(t *testing.T) {
	game, keys := newTestGame(t, confForMode(config.ModeVersus), nil, 1)

	keys.Press("KeyW")
	keys.Press("ArrowDown")
	step(game, 5)

	assert.Less(t, game.Paddle(policy.SideA).GetVelocity().GetY(), 0.0)
	assert.Greater(t, game.Paddle(policy.SideB).GetVelocity().GetY(), 0.0)
}

func TestBoundaryPushesPaddleBack(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeKeyboard), nil, 1)

	game.Paddle(policy.SideA).SetPosition(vector.MakeVector2(500, 200))
	game.Paddle(policy.SideB).SetPosition(vector.MakeVector2(420, 80))
	step(game, 1)

	assert.Less(t, game.Paddle(policy.SideA).GetVelocity().GetX(), 0.0)
	assert.Greater(t, game.Paddle(policy.SideB).GetVelocity().GetX(), 0.0)
}

func TestAgentDrivesPaddleB(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mocks.NewMockNetwork(ctrl)
	network.EXPECT().Activate(gomock.Any()).Return([]float64{0.95, 0, 0, 0}).AnyTimes()

	game, _ := newTestGame(t, confForMode(config.ModeLearning), network, 1)
	step(game, 2)

	velocity := game.Paddle(policy.SideB).GetVelocity()
	assert.Less(t, velocity.GetY(), 0.0)
	assert.InDelta(t, 0, velocity.GetX(), delta)
	assert.Equal(t, 0, game.Stats().Learner.Recorded)
}

func TestLearningRecordsHumanSamples(t *testing.T) {
	conf := confForMode(config.ModeLearning)
	conf.Learning.MinSamples = 2
	conf.Learning.Batch = 3

	game, keys := newTestGame(t, conf, nil, 1)

	keys.Press("KeyS")
	step(game, 4)

	stats := game.Stats().Learner
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.Recorded)
	assert.Equal(t, 6, stats.Updates)

	keys.Release("KeyS")
	step(game, 1)

	stats = game.Stats().Learner
	assert.Equal(t, 4, stats.Recorded)
	assert.Equal(t, 9, stats.Updates)
}

func TestLoadNetwork(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeLearning), nil, 1)
	current := game.GetNetwork()

	loaded, err := game.LoadNetwork(nil)
	assert.NoError(t, err)
	assert.False(t, loaded)
	assert.Same(t, current, game.GetNetwork())

	_, err = game.LoadNetwork([]byte("{"))
	assert.Error(t, err)
	assert.Same(t, current, game.GetNetwork())

	wrong, err := json.Marshal(learning.NewPerceptron(learning.DefaultTopology.WithHidden(20), rand.New(rand.NewSource(2))))
	require.NoError(t, err)
	_, err = game.LoadNetwork(wrong)
	assert.Error(t, err)
	assert.Same(t, current, game.GetNetwork())

	saved, err := game.SaveNetwork()
	require.NoError(t, err)

	other, err := json.Marshal(learning.NewPerceptron(learning.DefaultTopology, rand.New(rand.NewSource(2))))
	require.NoError(t, err)
	loaded, err = game.LoadNetwork(other)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.NotSame(t, current, game.GetNetwork())
	assert.Same(t, game.GetNetwork(), game.learner.Network())

	resaved, err := game.SaveNetwork()
	require.NoError(t, err)
	assert.JSONEq(t, string(other), string(resaved))
	assert.NotEqual(t, string(saved), string(resaved))
}

func TestSaveNetworkWithoutAgent(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeVersus), nil, 1)

	_, err := game.SaveNetwork()
	assert.True(t, errors.Is(err, ErrNoNetwork))
}

func TestPuckHitIsCounted(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeKeyboard), nil, 1)

	game.Puck().SetPosition(vector.MakeVector2(200, 200))
	game.Paddle(policy.SideA).SetVelocity(vector.MakeVector2(10, 0))
	step(game, 20)

	assert.GreaterOrEqual(t, game.Stats().HitsA, 1)
	assert.Equal(t, 0, game.Stats().HitsB)
	assert.Equal(t, "a", game.Stats().LastTouch)

	game.Randomize()
	assert.Empty(t, game.Stats().LastTouch)
}

func TestVizFrame(t *testing.T) {
	game, _ := newTestGame(t, confForMode(config.ModeVersus), nil, 1)
	step(game, 1)

	var msg commontypes.VizMessage
	require.NoError(t, json.Unmarshal(game.GetVizFrameJson(), &msg))

	assert.Equal(t, game.GetSessionID().String(), msg.SessionID)
	assert.Equal(t, 1, msg.Tick)
	assert.Equal(t, config.ModeVersus, msg.Mode)

	counts := map[string]int{}
	sides := map[string]bool{}
	for _, object := range msg.Objects {
		counts[object.Type]++

		switch object.Type {
		case "wall":
			assert.Equal(t, "#888888", object.Color)
			assert.NotNil(t, object.Size)
		case "paddle":
			assert.Equal(t, "#3355ff", object.Color)
			assert.Equal(t, 40.0, object.Radius)
			sides[object.Side] = true
		case "puck":
			assert.Equal(t, "#ff3333", object.Color)
		}
	}

	assert.Equal(t, map[string]int{"wall": 6, "paddle": 2, "puck": 1}, counts)
	assert.Equal(t, map[string]bool{"a": true, "b": true}, sides)
}
