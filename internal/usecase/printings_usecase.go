package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"mtg-cards/internal/domain/card"
	"mtg-cards/internal/infrastructure/scryfall"
)

type PrintingsUsecase interface {
	ListPrintings(ctx context.Context, name string) (card.ResultPayload, error)
}

type Printings struct {
	client scryfall.Client
	cache  ResultCache
	logger *log.Logger
}

func NewPrintingsUsecase(client scryfall.Client, cache ResultCache, logger *log.Logger) *Printings {
	return &Printings{client: client, cache: cache, logger: logger}
}

// ListPrintings looks up every print edition of an exact card name, normalized
// and sorted by release date descending.
func (u *Printings) ListPrintings(ctx context.Context, name string) (card.ResultPayload, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return card.ResultPayload{}, ErrInvalidInput
	}

	key := PrintingsCacheKey(name)
	if u.cache != nil {
		if cached, ok := u.cache.Get(ctx, key); ok {
			if u.logger != nil {
				u.logger.Printf("[Printings] cache HIT key=%s", key)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Printings] cache MISS key=%s", key)
		}
	}

	query := `!"` + name + `"`
	resp, err := u.client.SearchCards(ctx, query, 1, "prints")
	if err != nil {
		if errors.Is(err, scryfall.ErrNotFound) {
			payload := emptyPrintingsPayload(msgNoPrintings)
			u.store(ctx, key, payload)
			return payload, nil
		}
		return card.ResultPayload{}, err
	}

	printings := make([]card.Printing, 0, len(resp.Data))
	for _, raw := range resp.Data {
		printings = append(printings, NormalizePrinting(raw))
	}
	sortPrintings(printings)

	payload := card.ResultPayload{
		Data:       printings,
		TotalCount: resp.TotalCards,
		HasMore:    resp.HasMore,
		Page:       1,
	}
	u.store(ctx, key, payload)
	return payload, nil
}

// sortPrintings orders by release date descending. Dates are ISO-8601 strings,
// so lexicographic order is chronological; a missing date is the empty string,
// the lexicographic minimum, which a plain descending sort places last.
func sortPrintings(printings []card.Printing) {
	sort.SliceStable(printings, func(i, j int) bool {
		return printings[i].ReleasedAt > printings[j].ReleasedAt
	})
}

func (u *Printings) store(ctx context.Context, key string, payload card.ResultPayload) {
	if u.cache == nil {
		return
	}
	u.cache.Set(ctx, key, payload)
	if u.logger != nil {
		u.logger.Printf("[Printings] cache SET key=%s", key)
	}
}

var _ PrintingsUsecase = (*Printings)(nil)
