package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing named, immutable data blobs —
// the persisted envelopes written by persistence.Save/SaveToFile.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Open opens an existing blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create opens a new blob for streaming writes.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a blob atomically in a single call.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns all blob names with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes starting at offset off, like io.ReaderAt
	// but context-aware so remote backends can cancel in-flight requests.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a handle to a blob being written.
type WritableBlob interface {
	io.Writer
	io.Closer
	// Sync flushes any buffered data to durable storage. No-op for
	// backends (S3, MinIO) where Close already guarantees durability.
	Sync() error
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	// This is a zero-copy operation if supported.
	Bytes() ([]byte, error)
}

// RangeReader is an optional interface for Blobs that can stream a byte
// range without the caller pre-allocating a destination buffer, useful
// for cloud backends serving large persisted buffers.
type RangeReader interface {
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}
