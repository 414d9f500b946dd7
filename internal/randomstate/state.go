package randomstate

import "math"

// State layers numpy's legacy distributions over a MT19937 stream.
type State struct {
	mt       *MT19937
	hasGauss bool
	gauss    float64
}

// New returns a State seeded the way numpy.random.seed(seed) does.
func New(seed uint32) *State {
	return &State{mt: NewMT19937(seed)}
}

// Float64 returns a uniform double in [0, 1).
func (s *State) Float64() float64 { return s.mt.Float64() }

// StandardNormal returns a N(0, 1) draw.
//
// Each accepted polar pair yields two values; the second is cached and
// returned by the next call.
func (s *State) StandardNormal() float64 {
	if s.hasGauss {
		s.hasGauss = false
		v := s.gauss
		s.gauss = 0
		return v
	}

	var x1, x2, r2 float64
	for {
		x1 = float64(2.0*s.Float64()) - 1.0
		x2 = float64(2.0*s.Float64()) - 1.0
		r2 = float64(x1*x1) + float64(x2*x2)
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}

	f := math.Sqrt(float64(-2.0*math.Log(r2)) / r2)
	s.gauss = float64(f * x1)
	s.hasGauss = true
	return float64(f * x2)
}

// Normal returns loc + scale*z for a standard normal z.
func (s *State) Normal(loc, scale float64) float64 {
	scaled := float64(scale * s.StandardNormal())
	return loc + scaled
}

// Interval returns a uniform integer in [0, max].
//
// Draws are masked to the smallest covering power of two and rejected until
// they fall in range. 32-bit draws are used while max fits in 32 bits.
func (s *State) Interval(max uint64) uint64 {
	if max == 0 {
		return 0
	}

	mask := max
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32

	var v uint64
	if max <= math.MaxUint32 {
		for {
			v = uint64(s.mt.Uint32()) & mask
			if v <= max {
				return v
			}
		}
	}
	for {
		v = s.mt.Uint64() & mask
		if v <= max {
			return v
		}
	}
}

// Shuffle permutes n elements in place through swap, walking from the last
// index down to 1 and swapping each with an Interval draw.
func (s *State) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(s.Interval(uint64(i)))
		swap(i, j)
	}
}
