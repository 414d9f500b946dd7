package testutil

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gaussgen/blobstore"
	"github.com/hupe1980/gaussgen/codec"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // Population standard deviation
	Min    float64
	Max    float64
}

// Summarize computes a Summary of vs using Welford's update.
func Summarize(vs []float64) Summary {
	if len(vs) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(vs), Min: math.Inf(1), Max: math.Inf(-1)}

	var mean, m2 float64
	for i, v := range vs {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = mean
	s.StdDev = math.Sqrt(m2 / float64(len(vs)))
	return s
}

// ReadBlob returns the raw bytes of the named blob, failing the test if it
// cannot be read.
func ReadBlob(t testing.TB, store blobstore.BlobStore, name string) []byte {
	t.Helper()
	data, err := blobstore.ReadAll(context.Background(), store, name)
	require.NoError(t, err, "read %s", name)
	return data
}

// ReadText returns the decompressed text of the named artifact.
func ReadText(t testing.TB, store blobstore.BlobStore, name string, c codec.Compression) []byte {
	t.Helper()
	r, err := codec.NewReader(bytes.NewReader(ReadBlob(t, store, name)), c)
	require.NoError(t, err)
	defer r.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err, "decompress %s", name)
	return buf.Bytes()
}

// ReadValues decodes the named artifact into its values.
func ReadValues(t testing.TB, store blobstore.BlobStore, name string, c codec.Compression) []float64 {
	t.Helper()
	values, err := codec.ReadAll(bytes.NewReader(ReadText(t, store, name, c)))
	require.NoError(t, err, "decode %s", name)
	return values
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Values returns n uniform values in [minVal, maxVal).
func (r *RNG) Values(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*(maxVal-minVal)
	}
	return out
}
