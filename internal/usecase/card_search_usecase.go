package usecase

import (
	"context"
	"errors"
	"log"

	"mtg-cards/internal/domain/card"
	"mtg-cards/internal/infrastructure/scryfall"
)

type CardSearchUsecase interface {
	SearchCards(ctx context.Context, filters SearchFilters, page int) (card.ResultPayload, error)
}

type CardSearch struct {
	client scryfall.Client
	cache  ResultCache
	logger *log.Logger
}

func NewCardSearchUsecase(client scryfall.Client, cache ResultCache, logger *log.Logger) *CardSearch {
	return &CardSearch{client: client, cache: cache, logger: logger}
}

// SearchCards runs one filter search: build the query and cache key, consult
// the cache, call upstream on a miss, normalize and cache the result. The
// check-then-populate sequence is deliberately not atomic across the upstream
// call; concurrent misses for the same key each go upstream and the last
// write wins.
func (u *CardSearch) SearchCards(ctx context.Context, filters SearchFilters, page int) (card.ResultPayload, error) {
	if page < 1 {
		page = 1
	}

	if filters.Empty() {
		return emptyCardPayload(page, msgNoFilters), nil
	}

	key := SearchCacheKey(filters, page)
	if u.cache != nil {
		if cached, ok := u.cache.Get(ctx, key); ok {
			if u.logger != nil {
				u.logger.Printf("[Search] cache HIT key=%s", key)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Search] cache MISS key=%s", key)
		}
	}

	query := BuildSearchQuery(filters)
	resp, err := u.client.SearchCards(ctx, query, page, "")
	if err != nil {
		if errors.Is(err, scryfall.ErrNotFound) {
			// Confirmed-absent results are cached so a repeated query does
			// not hit upstream again within the TTL window.
			payload := emptyCardPayload(page, msgNoResults)
			u.store(ctx, key, payload)
			return payload, nil
		}
		return card.ResultPayload{}, err
	}

	cards := make([]card.Card, 0, len(resp.Data))
	for _, raw := range resp.Data {
		cards = append(cards, NormalizeCard(raw))
	}

	payload := card.ResultPayload{
		Data:       cards,
		TotalCount: resp.TotalCards,
		HasMore:    resp.HasMore,
		Page:       page,
	}
	if resp.HasMore {
		next := page + 1
		payload.NextPage = &next
	}

	u.store(ctx, key, payload)
	return payload, nil
}

func (u *CardSearch) store(ctx context.Context, key string, payload card.ResultPayload) {
	if u.cache == nil {
		return
	}
	u.cache.Set(ctx, key, payload)
	if u.logger != nil {
		u.logger.Printf("[Search] cache SET key=%s", key)
	}
}

var _ CardSearchUsecase = (*CardSearch)(nil)
