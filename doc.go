// Package gaussgen generates a one-dimensional Gaussian cluster dataset for
// k-means fixtures.
//
// A run draws K centroid positions and N points around them with a fixed
// seed, and writes two newline-delimited artifacts: centroides_iniciais.csv
// with K lines and dados.csv with N shuffled lines, six decimal places each.
// Equal N and K always produce byte-identical artifacts.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := blobstore.NewLocalStore("./data")
//	res, _ := gaussgen.Generate(ctx, store,
//	    gaussgen.WithPoints(1_000_000),
//	    gaussgen.WithClusters(16),
//	)
//	fmt.Println(res.Points.Lines) // 1000000
//
// # In-Memory Sampling
//
// Sample returns the dataset without writing it. The shuffled points carry
// no labels, but the positions drawn from each cluster are kept:
//
//	ds, _ := gaussgen.Sample(1000, 4)
//	sizes := ds.ClusterSizes()   // [250 250 250 250]
//	first := ds.Cluster(0)       // points drawn around ds.Centroids[0]
//
// # Destinations
//
// Any blobstore.BlobStore works: a local directory, memory, S3 (optionally
// with a DynamoDB commit table for CURRENT) or a MinIO endpoint. Artifacts
// can be framed with zstd or lz4 through WithCompression, and WithManifest
// adds a MANIFEST.json with sizes and CRC32C checksums.
package gaussgen
