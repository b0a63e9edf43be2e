package maze

import (
	"math/rand/v2"
)

// Picker chooses uniformly among k candidates.
type Picker interface {
	// Pick returns an index in [0, k). k is always at least 1.
	Pick(k int) int
}

// SeededPicker is a Picker backed by a PCG source. Two pickers built from
// the same seed produce the same sequence.
type SeededPicker struct {
	rng *rand.Rand
}

// NewSeededPicker returns a deterministic Picker for seed.
func NewSeededPicker(seed int64) *SeededPicker {
	return &SeededPicker{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Pick implements Picker.
func (p *SeededPicker) Pick(k int) int {
	return p.rng.IntN(k)
}

// RandomSeed returns a fresh non-negative seed from the runtime generator.
func RandomSeed() int64 {
	return rand.Int64()
}
