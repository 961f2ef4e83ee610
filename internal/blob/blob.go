// Package blob defines the narrow upload contract the profile-photo path
// needs from object storage: put bytes under a key, get back a retrievable
// URL. Adapters live in subpackages (s3, memory).
package blob

import "context"

// Uploader stores binary data and returns its public URL.
type Uploader interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
