package policy

import "github.com/wybiral/air-hockey/common/utils/vector"

type Activator interface {
	Activate(input []float64) []float64
}

// Agent runs the observation through the network and keeps only the outputs
// above threshold. The threshold is strict so an undertrained network stays
// still instead of jittering.
//
// The returned label is in the observer's frame. The force is in table space:
// for side B the horizontal component is mirrored back.
func Agent(side Side, network Activator, observation Observation, f0 float64, threshold float64) (vector.Vector2, Label) {
	outputs := network.Activate(observation.Slice())

	var label Label
	for i := 0; i < len(label) && i < len(outputs); i++ {
		if outputs[i] > threshold {
			label[i] = 1
		}
	}

	force := label.Force(f0)
	if side == SideB {
		force = force.NegateX()
	}

	return force, label
}
