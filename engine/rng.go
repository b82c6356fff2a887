package engine

import (
	"math/rand"
	"time"
)

// RandomSource is the host-provided RNG abstraction of spec.md section
// 5: random_int(min, max) -> int, uniform inclusive. Tests inject a
// deterministic implementation to pin the scenarios of spec.md
// section 8.
type RandomSource interface {
	RandomInt(min, max int) int
}

// mathRandSource is the default RandomSource, backed by a private
// *rand.Rand seeded once at construction. The engine never reseeds it
// mid-run, matching spec.md section 5's "the engine does not seed it"
// at the call level: seeding happens once, here, not per call.
type mathRandSource struct {
	r *rand.Rand
}

// NewDefaultRandomSource returns a RandomSource seeded from the current
// time.
func NewDefaultRandomSource() RandomSource {
	return &mathRandSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// RandomInt returns a uniform random integer in [min,max] inclusive.
func (m *mathRandSource) RandomInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + m.r.Intn(max-min+1)
}

// sequenceSource replays a fixed sequence of values, wrapping around; it
// exists for deterministic tests that must pin an exact activation or
// tie-break pattern.
type sequenceSource struct {
	values []int
	pos    int
}

// NewSequenceRandomSource returns a RandomSource that replays values in
// order, repeating from the start once exhausted.
func NewSequenceRandomSource(values ...int) RandomSource {
	if len(values) == 0 {
		values = []int{0}
	}
	return &sequenceSource{values: values}
}

func (s *sequenceSource) RandomInt(min, max int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
