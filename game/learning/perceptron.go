package learning

import (
	"math"
	"math/rand"

	"github.com/openfluke/loom/nn"
	"github.com/pkg/errors"

	"github.com/wybiral/air-hockey/common/utils"
)

// modelID names the network inside a serialized model bundle.
const modelID = "air-hockey-agent"

// Perceptron is a loom network with one tanh hidden layer and a sigmoid
// output layer.
type Perceptron struct {
	topology Topology
	net      *nn.Network
	training *nn.TrainingConfig
}

// NewPerceptron draws the weights from rng so that a seeded session always
// starts from the same network.
func NewPerceptron(topology Topology, rng *rand.Rand) *Perceptron {
	net := nn.NewNetwork(topology.Inputs, 1, 1, 2)

	hidden := nn.InitDenseLayer(topology.Inputs, topology.Hidden, nn.ActivationTanh)
	drawWeights(hidden.Kernel, topology.Inputs, rng)
	net.SetLayer(0, 0, 0, hidden)

	output := nn.InitDenseLayer(topology.Hidden, topology.Outputs, nn.ActivationSigmoid)
	drawWeights(output.Kernel, topology.Hidden, rng)
	net.SetLayer(0, 0, 1, output)

	return newPerceptron(topology, net)
}

func newPerceptron(topology Topology, net *nn.Network) *Perceptron {
	// a loaded network carries its batch size where the input size belongs
	net.InputSize = topology.Inputs
	net.BatchSize = 1

	return &Perceptron{
		topology: topology,
		net:      net,
		training: &nn.TrainingConfig{
			Epochs:   1,
			LossType: "mse",
		},
	}
}

// He initialization, as loom does it, on the injected source.
func drawWeights(kernel []float32, fanIn int, rng *rand.Rand) {
	stddev := math.Sqrt(2.0 / float64(fanIn))
	for i := range kernel {
		kernel[i] = float32(rng.NormFloat64() * stddev)
	}
}

func (p *Perceptron) Topology() Topology {
	return p.topology
}

func (p *Perceptron) Activate(input []float64) []float64 {
	output, _ := p.net.ForwardCPU(p.inputVector(input))
	return fromFloat32(output)
}

// Train runs one forward pass and one backpropagation step on a single
// sample.
func (p *Perceptron) Train(input []float64, target []float64, rate float64) {
	targets := make([]float32, p.topology.Outputs)
	for k := range targets {
		if k < len(target) {
			targets[k] = float32(target[k])
		}
	}

	p.training.LearningRate = float32(rate)

	batch := []nn.TrainingBatch{{Input: p.inputVector(input), Target: targets}}
	if _, err := p.net.Train(batch, p.training); err != nil {
		utils.Debug("learning", "Training step failed: "+err.Error())
	}
}

func (p *Perceptron) inputVector(input []float64) []float32 {
	data := make([]float32, p.topology.Inputs)
	for i := range data {
		if i < len(input) {
			data[i] = float32(input[i])
		}
	}
	return data
}

func fromFloat32(values []float32) []float64 {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return data
}

///////////////////////////////////////////////////////////////////////////////
// Serialization
///////////////////////////////////////////////////////////////////////////////

func (p *Perceptron) MarshalJSON() ([]byte, error) {
	data, err := p.net.SaveModelToString(modelID)
	if err != nil {
		return nil, errors.Wrap(err, "Could not serialize network")
	}

	return []byte(data), nil
}

// UnmarshalPerceptron decodes a model bundle and checks it against the
// expected topology; any mismatch is reported instead of producing garbage
// outputs.
func UnmarshalPerceptron(data []byte, expected Topology) (*Perceptron, error) {
	net, err := nn.LoadModelFromString(string(data), modelID)
	if err != nil {
		return nil, errors.Wrap(err, "Could not decode network")
	}

	if net.TotalLayers() != 2 {
		return nil, errors.Errorf("network has %d layers, expected 2", net.TotalLayers())
	}

	layers := []struct {
		name       string
		inputs     int
		outputs    int
		activation nn.ActivationType
	}{
		{"hidden", expected.Inputs, expected.Hidden, nn.ActivationTanh},
		{"output", expected.Hidden, expected.Outputs, nn.ActivationSigmoid},
	}

	for i, layer := range layers {
		if err := checkLayer(net.GetLayer(0, 0, i), layer.name, layer.inputs, layer.outputs, layer.activation); err != nil {
			return nil, errors.Wrapf(err,
				"network does not match expected topology %d-%d-%d",
				expected.Inputs, expected.Hidden, expected.Outputs,
			)
		}
	}

	return newPerceptron(expected, net), nil
}

func checkLayer(config *nn.LayerConfig, name string, inputs int, outputs int, activation nn.ActivationType) error {
	if config == nil || config.Type != nn.LayerDense {
		return errors.Errorf("%s layer is not dense", name)
	}

	if config.InputHeight != inputs {
		return errors.Errorf("%s layer has %d inputs, expected %d", name, config.InputHeight, inputs)
	}

	if config.OutputHeight != outputs {
		return errors.Errorf("%s layer has %d outputs, expected %d", name, config.OutputHeight, outputs)
	}

	if config.Activation != activation {
		return errors.Errorf("%s layer has an unsupported activation", name)
	}

	if err := checkVector(config.Kernel, inputs*outputs, name+" weights"); err != nil {
		return err
	}

	return checkVector(config.Bias, outputs, name+" bias")
}

func checkVector(values []float32, n int, name string) error {
	if len(values) != n {
		return errors.Errorf("%s has %d values, expected %d", name, len(values), n)
	}

	for _, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return errors.Errorf("%s contains a non finite weight", name)
		}
	}

	return nil
}
