package storage

import "context"

// ObjectStorage abstracts the remote media host. Implementations must
// make Delete report a not-found failure for missing identifiers,
// Exists return false (not an error) for missing identifiers, and
// FileURL stay pure with no network round trip.
type ObjectStorage interface {
	Upload(ctx context.Context, data []byte, filename, contentType, folder string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	FileURL(key string) string
}
