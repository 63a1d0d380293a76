// Package metadata is a namespaced key/value store in the local database.
// Each repository instance is bound to one namespace; keys of different
// namespaces never collide.
package metadata

import (
	"context"
)

// Repository reads and writes raw values under the bound namespace.
// Get returns (nil, nil) for a missing key; Delete and Clear of missing keys
// are no-ops.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
