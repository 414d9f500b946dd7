package gaussgen

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gaussgen/internal/randomstate"
)

const (
	// DefaultPoints is the default total number of points (N).
	DefaultPoints = 1_000_000
	// DefaultClusters is the default number of clusters (K).
	DefaultClusters = 16

	// Seed seeds every generation. Equal N and K give equal bytes.
	Seed uint32 = 42
	// StdDev is the standard deviation of every cluster.
	StdDev = 2.0

	// CentroidsFileName names the centroid artifact.
	CentroidsFileName = "centroides_iniciais.csv"
	// PointsFileName names the point artifact.
	PointsFileName = "dados.csv"
)

// Dataset is one generated sample held in memory.
//
// Points is in shuffled order and carries no labels. The cluster each
// point was drawn from is kept separately as a bitmap of positions.
type Dataset struct {
	Centroids []float64
	Points    []float64

	members []*roaring.Bitmap
}

// Sample draws k centroids and n points around them.
//
// Centroid i is placed at linspace(5, 10k-5, k)[i] plus a uniform jitter in
// [-1, 1). Each centroid receives n/k points with standard deviation
// StdDev; the n%k leftover points also come from centroid 0. The point
// sequence is shuffled before it is returned.
func Sample(n, k int) (*Dataset, error) {
	if k <= 0 || uint64(k) > math.MaxUint32 {
		return nil, ErrInvalidClusters
	}
	if n < 0 || uint64(n) > math.MaxUint32 {
		return nil, ErrInvalidPoints
	}

	rs := randomstate.New(Seed)

	centroids := linspace(5, float64(10*k-5), k)
	for i := range centroids {
		jitter := float64(rs.Float64() * 2)
		centroids[i] = (centroids[i] + jitter) - 1
	}

	perCluster := n / k
	points := make([]float64, 0, n)
	labels := make([]uint32, 0, n)
	for i, c := range centroids {
		for range perCluster {
			points = append(points, rs.Normal(c, StdDev))
			labels = append(labels, uint32(i))
		}
	}
	for range n - perCluster*k {
		points = append(points, rs.Normal(centroids[0], StdDev))
		labels = append(labels, 0)
	}

	rs.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
		labels[i], labels[j] = labels[j], labels[i]
	})

	members := make([]*roaring.Bitmap, k)
	for i := range members {
		members[i] = roaring.New()
	}
	for pos, l := range labels {
		members[l].Add(uint32(pos))
	}
	for _, m := range members {
		m.RunOptimize()
	}

	return &Dataset{
		Centroids: centroids,
		Points:    points,
		members:   members,
	}, nil
}

// linspace returns num evenly spaced values over [start, stop], with stop
// stored exactly as the last value.
func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = float64(float64(i)*step) + start
	}
	out[num-1] = stop
	return out
}

// N returns the number of points.
func (d *Dataset) N() int { return len(d.Points) }

// K returns the number of clusters.
func (d *Dataset) K() int { return len(d.Centroids) }

// Members returns the positions in Points drawn from cluster i.
// The bitmap is a copy and may be modified by the caller.
func (d *Dataset) Members(i int) *roaring.Bitmap {
	return d.members[i].Clone()
}

// Cluster returns the points drawn from cluster i in position order.
func (d *Dataset) Cluster(i int) []float64 {
	m := d.members[i]
	out := make([]float64, 0, m.GetCardinality())
	it := m.Iterator()
	for it.HasNext() {
		out = append(out, d.Points[it.Next()])
	}
	return out
}

// ClusterSizes returns the number of points drawn from each cluster.
func (d *Dataset) ClusterSizes() []uint64 {
	sizes := make([]uint64, len(d.members))
	for i, m := range d.members {
		sizes[i] = m.GetCardinality()
	}
	return sizes
}
