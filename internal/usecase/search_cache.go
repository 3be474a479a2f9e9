package usecase

import (
	"context"

	"mtg-cards/internal/domain/card"
)

// ResultCache is the slice of the cache layer the search usecases need.
// Failed upstream calls never populate it; empty not-found payloads do.
type ResultCache interface {
	Get(ctx context.Context, key string) (card.ResultPayload, bool)
	Set(ctx context.Context, key string, payload card.ResultPayload)
}
