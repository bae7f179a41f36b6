// Package storage provides poster file storage backends: a local upload
// directory and S3-compatible object storage.
package storage

import "context"

// FileStorage persists uploaded file bytes and returns a reference the
// client can use to retrieve them (a local URL path or a remote URL).
type FileStorage interface {
	// Save writes the bytes under a collision-resistant name with the given
	// extension and returns the retrieval reference.
	Save(ctx context.Context, ext string, data []byte) (string, error)
	// Delete removes the object behind a previously returned reference.
	Delete(ctx context.Context, ref string) error
}

// Both backends satisfy FileStorage.
var (
	_ FileStorage = (*LocalStorage)(nil)
	_ FileStorage = (*S3Storage)(nil)
)
