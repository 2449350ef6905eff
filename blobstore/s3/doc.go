// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	client := s3.NewFromConfig(cfg)
//	store := s3.NewStore(client, "my-bucket", "lists/")
//
//	list, err := persistence.LoadFromStore[int32](ctx, store, "catalog.fcl")
//
// # Features
//
//   - Range reads for efficient partial fetches of the persisted buffer section
//   - Multipart uploads for large front-coded lists
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Optional upload/download throttling via WithResourceController
package s3
