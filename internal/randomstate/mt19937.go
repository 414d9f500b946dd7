package randomstate

const (
	stateLen   = 624
	shift      = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	seedFactor = 1812433253
)

// MT19937 is the 32-bit Mersenne Twister.
type MT19937 struct {
	key [stateLen]uint32
	pos int
}

// NewMT19937 returns a generator initialized with init_genrand(seed).
//
// This is the seeding numpy applies to an integer seed, which differs from
// the init_by_array seeding of the reference C implementation's main().
func NewMT19937(seed uint32) *MT19937 {
	m := &MT19937{}
	m.Seed(seed)
	return m
}

// Seed resets the generator to init_genrand(seed).
func (m *MT19937) Seed(seed uint32) {
	s := seed
	for i := 0; i < stateLen; i++ {
		m.key[i] = s
		s = seedFactor*(s^(s>>30)) + uint32(i) + 1
	}
	m.pos = stateLen
}

func (m *MT19937) generate() {
	k := &m.key
	var i int
	for ; i < stateLen-shift; i++ {
		y := (k[i] & upperMask) | (k[i+1] & lowerMask)
		k[i] = k[i+shift] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	for ; i < stateLen-1; i++ {
		y := (k[i] & upperMask) | (k[i+1] & lowerMask)
		k[i] = k[i+(shift-stateLen)] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	y := (k[stateLen-1] & upperMask) | (k[0] & lowerMask)
	k[stateLen-1] = k[shift-1] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	m.pos = 0
}

// Uint32 returns the next tempered 32-bit output.
func (m *MT19937) Uint32() uint32 {
	if m.pos == stateLen {
		m.generate()
	}
	y := m.key[m.pos]
	m.pos++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 combines two outputs, high word first.
func (m *MT19937) Uint64() uint64 {
	hi := uint64(m.Uint32())
	lo := uint64(m.Uint32())
	return hi<<32 | lo
}

// Float64 returns a uniform double in [0, 1) built from 27 + 26 bits.
func (m *MT19937) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}
