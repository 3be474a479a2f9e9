package usecase

import (
	"context"
	"errors"
	"testing"

	"mtg-cards/internal/domain/card"
	"mtg-cards/internal/infrastructure/scryfall"
)

type fakeUpstream struct {
	resp *scryfall.SearchResponse
	err  error

	calls      int
	lastQuery  string
	lastPage   int
	lastUnique string
}

func (f *fakeUpstream) SearchCards(_ context.Context, query string, page int, unique string) (*scryfall.SearchResponse, error) {
	f.calls++
	f.lastQuery = query
	f.lastPage = page
	f.lastUnique = unique
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeCache struct {
	entries map[string]card.ResultPayload
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]card.ResultPayload{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (card.ResultPayload, bool) {
	p, ok := f.entries[key]
	return p, ok
}

func (f *fakeCache) Set(_ context.Context, key string, payload card.ResultPayload) {
	f.sets++
	f.entries[key] = payload
}

func TestCardSearch_EmptyFiltersShortCircuit(t *testing.T) {
	upstream := &fakeUpstream{}
	uc := NewCardSearchUsecase(upstream, newFakeCache(), nil)

	payload, err := uc.SearchCards(context.Background(), SearchFilters{Text: "  "}, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.calls != 0 {
		t.Fatalf("expected zero upstream calls, got %d", upstream.calls)
	}
	if payload.TotalCount != 0 || payload.HasMore {
		t.Fatalf("expected empty payload, got %+v", payload)
	}
	if payload.Message == "" {
		t.Fatalf("expected descriptive message on empty payload")
	}
}

func TestCardSearch_MissThenHit(t *testing.T) {
	upstream := &fakeUpstream{resp: &scryfall.SearchResponse{
		TotalCards: 1,
		HasMore:    false,
		Data:       []scryfall.Card{{ID: "c1", Name: "Lightning Bolt"}},
	}}
	cacheStore := newFakeCache()
	uc := NewCardSearchUsecase(upstream, cacheStore, nil)

	filters := SearchFilters{Text: "bolt", Rarity: "common"}

	first, err := uc.SearchCards(context.Background(), filters, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", upstream.calls)
	}
	if upstream.lastQuery != "bolt r:common" {
		t.Fatalf("unexpected query: %q", upstream.lastQuery)
	}
	cards, ok := first.Data.([]card.Card)
	if !ok || len(cards) != 1 || cards[0].Name != "Lightning Bolt" {
		t.Fatalf("unexpected payload data: %+v", first.Data)
	}

	second, err := uc.SearchCards(context.Background(), filters, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.calls != 1 {
		t.Fatalf("expected cache hit to skip upstream, got %d calls", upstream.calls)
	}
	if second.TotalCount != first.TotalCount {
		t.Fatalf("expected cached payload returned unchanged")
	}
}

func TestCardSearch_NextPagePopulated(t *testing.T) {
	upstream := &fakeUpstream{resp: &scryfall.SearchResponse{
		TotalCards: 400,
		HasMore:    true,
		Data:       []scryfall.Card{{ID: "c1"}},
	}}
	uc := NewCardSearchUsecase(upstream, nil, nil)

	payload, err := uc.SearchCards(context.Background(), SearchFilters{Text: "dragon"}, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if payload.NextPage == nil || *payload.NextPage != 3 {
		t.Fatalf("expected next page 3, got %v", payload.NextPage)
	}
	if upstream.lastPage != 2 {
		t.Fatalf("expected page 2 requested, got %d", upstream.lastPage)
	}
}

func TestCardSearch_NotFoundCachedAsEmpty(t *testing.T) {
	upstream := &fakeUpstream{err: scryfall.ErrNotFound}
	cacheStore := newFakeCache()
	uc := NewCardSearchUsecase(upstream, cacheStore, nil)

	filters := SearchFilters{Text: "zzzz"}

	payload, err := uc.SearchCards(context.Background(), filters, 1)
	if err != nil {
		t.Fatalf("expected not-found to normalize to empty payload, got err: %v", err)
	}
	if payload.TotalCount != 0 || payload.Message == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if cacheStore.sets != 1 {
		t.Fatalf("expected empty payload to be cached, sets=%d", cacheStore.sets)
	}

	if _, err := uc.SearchCards(context.Background(), filters, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.calls != 1 {
		t.Fatalf("expected confirmed-absent query to be served from cache, got %d calls", upstream.calls)
	}
}

func TestCardSearch_FailureLeavesNoCacheEntry(t *testing.T) {
	upstream := &fakeUpstream{err: scryfall.ErrTimeout}
	cacheStore := newFakeCache()
	uc := NewCardSearchUsecase(upstream, cacheStore, nil)

	_, err := uc.SearchCards(context.Background(), SearchFilters{Text: "bolt"}, 1)
	if !errors.Is(err, scryfall.ErrTimeout) {
		t.Fatalf("expected timeout error passed through, got %v", err)
	}
	if cacheStore.sets != 0 {
		t.Fatalf("expected no cache entry on failure, sets=%d", cacheStore.sets)
	}
}
