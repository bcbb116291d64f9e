package learning

import (
	"math/rand"

	"github.com/wybiral/air-hockey/game/policy"
)

type Sample struct {
	Observation policy.Observation
	Label       policy.Label
}

// SampleBuffer is an append-only collection bounded by capacity. When full, a
// uniformly random existing entry makes room for the new one. This is not
// reservoir sampling: retained samples drift toward recent ones.
type SampleBuffer struct {
	capacity  int
	samples   []Sample
	rng       *rand.Rand
	evictions int
}

func NewSampleBuffer(capacity int, rng *rand.Rand) *SampleBuffer {
	return &SampleBuffer{
		capacity: capacity,
		samples:  make([]Sample, 0),
		rng:      rng,
	}
}

// Add stores the sample and reports whether an older one was evicted.
func (b *SampleBuffer) Add(sample Sample) bool {
	evicted := false

	if len(b.samples) >= b.capacity {
		last := len(b.samples) - 1
		i := b.rng.Intn(len(b.samples))
		b.samples[i] = b.samples[last]
		b.samples = b.samples[:last]
		b.evictions++
		evicted = true
	}

	b.samples = append(b.samples, sample)

	return evicted
}

// Pick draws one sample uniformly, with replacement. The buffer must not be empty.
func (b *SampleBuffer) Pick() Sample {
	return b.samples[b.rng.Intn(len(b.samples))]
}

func (b *SampleBuffer) Len() int {
	return len(b.samples)
}

func (b *SampleBuffer) Capacity() int {
	return b.capacity
}

func (b *SampleBuffer) Evictions() int {
	return b.evictions
}
