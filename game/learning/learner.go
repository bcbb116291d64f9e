package learning

import (
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/game/policy"
)

type LearnerOptions struct {
	MinSamples int     // buffer size that must be exceeded before training
	Batch      int     // single-sample updates per TrainStep
	Rate       float64 // learning rate
}

func LearnerOptionsFromConfig(conf config.LearningConfig) LearnerOptions {
	return LearnerOptions{
		MinSamples: conf.MinSamples,
		Batch:      conf.Batch,
		Rate:       conf.Rate,
	}
}

// Learner trains a network to imitate the labels recorded from the human player.
type Learner struct {
	network Network
	buffer  *SampleBuffer
	options LearnerOptions

	recorded int
	updates  int
}

func NewLearner(network Network, buffer *SampleBuffer, options LearnerOptions) *Learner {
	return &Learner{
		network: network,
		buffer:  buffer,
		options: options,
	}
}

// Record stores the sample unless the label is empty: inaction would flood the buffer.
func (l *Learner) Record(observation policy.Observation, label policy.Label) bool {
	if label.IsZero() {
		return false
	}

	l.buffer.Add(Sample{
		Observation: observation,
		Label:       label,
	})
	l.recorded++

	return true
}

// TrainStep performs Batch independent single-sample updates, each on a sample
// drawn with replacement. It returns the number of updates done; zero while
// the buffer holds MinSamples entries or fewer.
func (l *Learner) TrainStep() int {
	if l.buffer.Len() <= l.options.MinSamples {
		return 0
	}

	for i := 0; i < l.options.Batch; i++ {
		sample := l.buffer.Pick()
		l.network.Train(sample.Observation.Slice(), sample.Label.Slice(), l.options.Rate)
	}

	l.updates += l.options.Batch

	return l.options.Batch
}

func (l *Learner) Network() Network {
	return l.network
}

// SetNetwork replaces the trained network; recorded samples are kept.
func (l *Learner) SetNetwork(network Network) {
	l.network = network
}

func (l *Learner) Buffer() *SampleBuffer {
	return l.buffer
}

type LearnerStats struct {
	Recorded  int `json:"recorded"`
	Buffered  int `json:"buffered"`
	Evictions int `json:"evictions"`
	Updates   int `json:"updates"`
}

func (l *Learner) Stats() LearnerStats {
	return LearnerStats{
		Recorded:  l.recorded,
		Buffered:  l.buffer.Len(),
		Evictions: l.buffer.Evictions(),
		Updates:   l.updates,
	}
}
