// Package blobstore provides storage abstraction for encoded embedding batches.
//
// BlobStore is the interface for reading and writing immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: In-memory map, for tests and ephemeral pipelines
//   - LocalStore: Local filesystem with atomic replace
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3 with managed parallel uploads
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Put(ctx, name, data) error         // Atomic write
//	    Get(ctx, name) ([]byte, error)     // Whole-blob read
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
