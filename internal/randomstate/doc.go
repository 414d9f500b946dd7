// Package randomstate implements a MT19937 random state whose draws match
// numpy's legacy RandomState bit for bit.
//
// Only the distributions the generator needs are provided:
//
//	st := randomstate.New(42)
//	u := st.Float64()            // [0, 1), 53-bit resolution
//	x := st.Normal(10, 2)        // polar Box-Muller with a cached spare
//	j := st.Interval(9)          // [0, 9], rejection on a bit mask
//	st.Shuffle(len(xs), swap)    // Fisher-Yates from the back
//
// Products are wrapped in explicit float64 conversions so the compiler never
// fuses them into FMA instructions; draws are identical on every GOARCH.
//
// A State is not safe for concurrent use.
package randomstate
