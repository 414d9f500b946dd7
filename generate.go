package gaussgen

import (
	"context"
	"time"

	"github.com/hupe1980/gaussgen/blobstore"
	"github.com/hupe1980/gaussgen/codec"
	"github.com/hupe1980/gaussgen/internal/hash"
	"github.com/hupe1980/gaussgen/manifest"
)

// Result describes a persisted dataset.
type Result struct {
	Dataset   *Dataset
	Centroids manifest.Artifact
	Points    manifest.Artifact

	// Manifest is nil unless WithManifest was given.
	Manifest *manifest.Manifest
}

// Generate samples a dataset and writes it to store.
//
// N and K come from WithPoints and WithClusters. The centroid artifact is
// written first, then the point artifact, then the manifest if enabled.
func Generate(ctx context.Context, store blobstore.BlobStore, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	o.logger.InfoContext(ctx, "generating dataset", "n", o.points, "k", o.clusters)

	start := time.Now()
	ds, err := Sample(o.points, o.clusters)
	d := time.Since(start)
	o.metricsCollector.RecordSample(o.points, o.clusters, d, err)
	o.logger.LogSample(ctx, o.points, o.clusters, d, err)
	if err != nil {
		return nil, err
	}

	o.logger = o.logger.WithShape(ds.N(), ds.K())
	return write(ctx, store, ds, o)
}

// Write persists an already sampled dataset. WithPoints and WithClusters
// are ignored.
func Write(ctx context.Context, store blobstore.BlobStore, ds *Dataset, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	o.logger = o.logger.WithShape(ds.N(), ds.K())
	return write(ctx, store, ds, o)
}

func write(ctx context.Context, store blobstore.BlobStore, ds *Dataset, o options) (*Result, error) {
	ext := o.compression.Ext()
	res := &Result{Dataset: ds}

	var err error
	res.Centroids, err = writeArtifact(ctx, store, CentroidsFileName+ext, ds.Centroids, o)
	if err != nil {
		return nil, err
	}
	res.Points, err = writeArtifact(ctx, store, PointsFileName+ext, ds.Points, o)
	if err != nil {
		return nil, err
	}

	if !o.manifest {
		return res, nil
	}

	m := &manifest.Manifest{
		Version:      manifest.CurrentVersion,
		N:            ds.N(),
		K:            ds.K(),
		Seed:         Seed,
		StdDev:       StdDev,
		Compression:  o.compression.String(),
		ClusterSizes: ds.ClusterSizes(),
		Centroids:    res.Centroids,
		Points:       res.Points,
	}
	if err := manifest.Write(ctx, store, m); err != nil {
		return nil, &ArtifactError{Name: manifest.FileName, Op: "commit", cause: err}
	}
	o.logger.InfoContext(ctx, "manifest committed", "artifact", manifest.FileName)

	res.Manifest = m
	return res, nil
}

// writeArtifact streams values through the codec into a new blob. The blob
// is aborted on any failure so that no partial artifact is published.
func writeArtifact(ctx context.Context, store blobstore.BlobStore, name string, values []float64, o options) (a manifest.Artifact, err error) {
	a.Name = name
	start := time.Now()
	defer func() {
		d := time.Since(start)
		o.metricsCollector.RecordWrite(name, a.Size, d, err)
		o.logger.LogWrite(ctx, a, d, err)
	}()

	wb, err := store.Create(ctx, name)
	if err != nil {
		return a, &ArtifactError{Name: name, Op: "create", cause: err}
	}

	sum := hash.NewWriter(wb)
	cw, err := codec.NewWriter(sum, o.compression)
	if err != nil {
		_ = blobstore.Abort(wb)
		return a, &ArtifactError{Name: name, Op: "compress", cause: err}
	}

	enc := codec.NewEncoder(cw)
	if err := enc.EncodeAll(values); err != nil {
		_ = blobstore.Abort(wb)
		return a, &ArtifactError{Name: name, Op: "encode", cause: err}
	}
	if err := enc.Flush(); err != nil {
		_ = blobstore.Abort(wb)
		return a, &ArtifactError{Name: name, Op: "encode", cause: err}
	}
	if err := cw.Close(); err != nil {
		_ = blobstore.Abort(wb)
		return a, &ArtifactError{Name: name, Op: "compress", cause: err}
	}
	if err := wb.Close(); err != nil {
		return a, &ArtifactError{Name: name, Op: "commit", cause: err}
	}

	a.Lines = enc.Lines()
	a.Size = sum.Size()
	a.CRC32C = sum.Sum32()
	return a, nil
}
