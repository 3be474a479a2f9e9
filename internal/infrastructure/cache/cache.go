package cache

import (
	"context"
	"time"

	"mtg-cards/internal/domain/card"
)

// Store is the cache contract shared by every request handler. Entries are
// immutable once inserted and replaced wholesale on re-insertion.
type Store interface {
	Get(ctx context.Context, key string) (card.ResultPayload, bool)
	Set(ctx context.Context, key string, payload card.ResultPayload)
	Clear(ctx context.Context) int
	Stats(ctx context.Context) Stats
}

// Entry pairs a cached payload with its creation time. Validity is always
// derived from CreatedAt against the store's fixed TTL; entries carry no
// per-entry expiry.
type Entry struct {
	Payload   card.ResultPayload
	CreatedAt time.Time
}

// Stats is a point-in-time census of the store: total resident entries, those
// still within TTL and those expired but not yet lazily evicted. Diagnostic
// only; computing it scans every entry.
type Stats struct {
	Total   int `json:"total_entries"`
	Valid   int `json:"valid_entries"`
	Expired int `json:"expired_entries"`
}
