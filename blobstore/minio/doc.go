// Package minio writes artifacts to MinIO and other S3-compatible storage
// through the MinIO Go client.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "fixtures", "kmeans-1d/")
//	res, err := gaussgen.Generate(ctx, store)
//
// The CLI builds the same store from a minio://host:port/bucket/prefix
// destination.
package minio
