package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wybiral/air-hockey/common/utils/vector"
	"github.com/wybiral/air-hockey/game/learning/mocks"
	"github.com/wybiral/air-hockey/game/policy"
	"go.uber.org/mock/gomock"
)

const threshold = 0.9

func TestAgentUpOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	var observation policy.Observation
	observation[0] = 0.25

	network := mocks.NewMockNetwork(ctrl)
	network.EXPECT().
		Activate(observation.Slice()).
		Return([]float64{0.95, 0, 0, 0}).
		Times(2)

	for _, side := range []policy.Side{policy.SideA, policy.SideB} {
		force, label := policy.Agent(side, network, observation, f0, threshold)

		assert.True(t, force.Equals(vector.MakeVector2(0, -f0)), "side %s got %s", side, force)
		assert.Equal(t, policy.Label{1, 0, 0, 0}, label)
	}
}

func TestAgentThreshold(t *testing.T) {
	examples := []struct {
		Name    string
		Side    policy.Side
		Outputs []float64
		Force   vector.Vector2
	}{
		{
			Name:    "Should stay still below threshold",
			Side:    policy.SideA,
			Outputs: []float64{0.89, 0.9, 0.5, 0.1},
			Force:   vector.MakeNullVector2(),
		},
		{
			Name:    "Should combine two saturated axes",
			Side:    policy.SideA,
			Outputs: []float64{0, 0.99, 0.91, 0},
			Force:   vector.MakeVector2(f0, f0),
		},
		{
			Name:    "Should mirror right into left for side B",
			Side:    policy.SideB,
			Outputs: []float64{0, 0.99, 0, 0},
			Force:   vector.MakeVector2(-f0, 0),
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			network := mocks.NewMockNetwork(ctrl)
			network.EXPECT().Activate(gomock.Any()).Return(example.Outputs)

			force, _ := policy.Agent(example.Side, network, policy.Observation{}, f0, threshold)
			assert.True(t, example.Force.Equals(force), "got %s", force)
		})
	}
}
