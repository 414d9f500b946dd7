// Package blobstore abstracts where generated artifacts are written.
//
// # Built-in Implementations
//
//   - LocalStore: a directory, atomic rename on close, mmap reads
//   - MemoryStore: in-process, for tests and dry runs
//   - s3.Store: Amazon S3 with streaming multipart uploads
//   - s3.DDBCommitStore: any store plus a DynamoDB-versioned CURRENT pointer
//   - minio.Store: MinIO and other S3-compatible endpoints
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Create(ctx, name) (WritableBlob, error)
//	    Put(ctx, name, data) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
