package gen

import "math/rand"

// Stream is the single deterministic random stream behind a generation
// run. Every random choice the generator makes is drawn from one Stream
// in a fixed order, so the whole dataset is a pure function of the seed
// and the run settings. Nothing here is safe for concurrent use and
// nothing needs to be: the run is strictly sequential.
type Stream struct {
	r *rand.Rand
}

// NewStream seeds a new random stream.
func NewStream(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Base draws one nucleotide, uniform over ACGT.
func (s *Stream) Base() byte {
	return Alphabet[s.r.Intn(len(Alphabet))]
}

// IntN draws a uniform int in [0, n).
func (s *Stream) IntN(n int) int {
	return s.r.Intn(n)
}

// Float64 draws a uniform real in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Other draws a nucleotide uniformly from the alphabet excluding base,
// so a substitution through Other is never a no-op.
func (s *Stream) Other(base byte) byte {
	alternatives := make([]byte, 0, len(Alphabet)-1)
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] != base {
			alternatives = append(alternatives, Alphabet[i])
		}
	}
	return alternatives[s.r.Intn(len(alternatives))]
}
