// Package storage provides an abstraction layer for the object storage
// that build artifacts are published to.
//
// It wraps the MinIO Go client with a small Client interface covering the
// operations the artifact publisher needs: bucket checks, bucket creation,
// uploads, downloads, and listing. The interface keeps artifact publishing
// testable against the mock in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	exists, err := client.BucketExists(ctx, "hunterdb-artifacts")
package storage
