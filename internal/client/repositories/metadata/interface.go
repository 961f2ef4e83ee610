// Package metadata provides a small string-keyed key-value store on the
// local database. It holds client state that must survive restarts, such as
// the search cooldown expiry and the last logged-in user.
package metadata

import "context"

// Well-known metadata keys.
const (
	KeySearchCooldownUntil = "search_cooldown_until"
	KeyLastUser            = "last_user"
)

// Repository is a byte-valued KV store. Get returns (nil, nil) for a missing
// key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
