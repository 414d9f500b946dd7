// Package s3 writes artifacts to Amazon S3.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "fixtures/kmeans-1d")
//	res, err := gaussgen.Generate(ctx, store)
//
// Streamed writes go through the multipart uploader of
// feature/s3/manager, so a million-line point file never sits in memory
// twice. Small objects (manifest, CURRENT) are put with a CRC32C checksum.
//
// # Versioned CURRENT
//
//	ddb := dynamodb.NewFromConfig(cfg)
//	committed := s3.NewDDBCommitStore(store, ddb, "gaussgen-commits", "s3://my-bucket/fixtures/kmeans-1d")
//
// DDBCommitStore keeps every other object in the wrapped store and turns the
// CURRENT pointer into a DynamoDB conditional write.
package s3
