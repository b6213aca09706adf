package domain

import "context"

// CatalogSource loads the hotel catalog once at startup. The returned
// order IS the catalog order; the selector's final tie-break is stable
// on it, so sources must return a deterministic ordering.
type CatalogSource interface {
	ListHotels(ctx context.Context) ([]Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
