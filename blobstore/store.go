package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

var (
	// ErrNotFound is returned when a blob does not exist.
	//
	// Implementations return an error satisfying errors.Is(err, ErrNotFound).
	ErrNotFound = os.ErrNotExist

	// ErrInvalidOffset is returned for reads at a negative offset.
	ErrInvalidOffset = errors.New("blobstore: negative offset")
)

// BlobStore is a flat namespace of immutable artifacts.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create starts a streamed write. The blob becomes visible when the
	// returned WritableBlob is closed without error.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a small blob in one call.
	Put(ctx context.Context, name string, data []byte) error
	// List returns the sorted names starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored artifact.
type Blob interface {
	io.Closer
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader over [off, off+length), clipped to Size.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a streamed write in progress.
type WritableBlob interface {
	io.WriteCloser
	// Sync flushes written data to durable storage where supported.
	Sync() error
}

// Aborter is implemented by writable blobs that can discard a write in
// progress instead of publishing it.
type Aborter interface {
	Abort() error
}

// Abort discards w if it supports it and closes it otherwise.
func Abort(w WritableBlob) error {
	if a, ok := w.(Aborter); ok {
		return a.Abort()
	}
	return w.Close()
}

// ReadAll returns the full contents of the named blob.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	if b.Size() == 0 {
		return []byte{}, nil
	}

	rc, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
