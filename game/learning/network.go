// Package learning holds the agent's network and the online imitation learner
// feeding it with samples of human play.
package learning

import (
	"encoding/json"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=./mocks/network_mock.go -package=mocks . Network

// Network is the boundary with the learning library. Activate must not
// modify weights; Train runs one forward pass and one backpropagation step.
type Network interface {
	Activate(input []float64) []float64
	Train(input []float64, target []float64, rate float64)
}

type Topology struct {
	Inputs  int `json:"inputs"`
	Hidden  int `json:"hidden"`
	Outputs int `json:"outputs"`
}

// DefaultTopology matches the observation and label sizes of the game.
var DefaultTopology = Topology{Inputs: 10, Hidden: 30, Outputs: 4}

func (t Topology) WithHidden(hidden int) Topology {
	t.Hidden = hidden
	return t
}

// MarshalNetwork serializes any network exposing a JSON representation.
func MarshalNetwork(network Network) ([]byte, error) {
	marshaler, ok := network.(json.Marshaler)
	if !ok {
		return nil, errors.Errorf("network of type %T cannot be serialized", network)
	}

	return marshaler.MarshalJSON()
}

// UnmarshalNetwork decodes a network serialized by MarshalNetwork and checks
// it against the expected topology.
func UnmarshalNetwork(data []byte, expected Topology) (Network, error) {
	perceptron, err := UnmarshalPerceptron(data, expected)
	if err != nil {
		return nil, err
	}

	return perceptron, nil
}
