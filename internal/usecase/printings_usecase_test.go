package usecase

import (
	"context"
	"errors"
	"testing"

	"mtg-cards/internal/domain/card"
	"mtg-cards/internal/infrastructure/scryfall"
)

func TestPrintings_BlankNameRejected(t *testing.T) {
	uc := NewPrintingsUsecase(&fakeUpstream{}, nil, nil)
	_, err := uc.ListPrintings(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPrintings_ExactNameQuery(t *testing.T) {
	upstream := &fakeUpstream{resp: &scryfall.SearchResponse{Data: []scryfall.Card{{ID: "p1"}}, TotalCards: 1}}
	uc := NewPrintingsUsecase(upstream, nil, nil)

	if _, err := uc.ListPrintings(context.Background(), "Lightning Bolt"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.lastQuery != `!"Lightning Bolt"` {
		t.Fatalf("unexpected query: %q", upstream.lastQuery)
	}
	if upstream.lastUnique != "prints" {
		t.Fatalf("expected unique=prints, got %q", upstream.lastUnique)
	}
}

func TestPrintings_SortedByReleaseDateDescending(t *testing.T) {
	upstream := &fakeUpstream{resp: &scryfall.SearchResponse{
		TotalCards: 3,
		Data: []scryfall.Card{
			{ID: "a", ReleasedAt: "2020-01-01"},
			{ID: "b", ReleasedAt: ""},
			{ID: "c", ReleasedAt: "2023-05-01"},
		},
	}}
	uc := NewPrintingsUsecase(upstream, nil, nil)

	payload, err := uc.ListPrintings(context.Background(), "Some Card")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	printings, ok := payload.Data.([]card.Printing)
	if !ok {
		t.Fatalf("unexpected payload data: %T", payload.Data)
	}
	got := []string{printings[0].ReleasedAt, printings[1].ReleasedAt, printings[2].ReleasedAt}
	want := []string{"2023-05-01", "2020-01-01", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v, want %v", got, want)
		}
	}
}

func TestPrintings_NotFoundCachedAsEmpty(t *testing.T) {
	upstream := &fakeUpstream{err: scryfall.ErrNotFound}
	cacheStore := newFakeCache()
	uc := NewPrintingsUsecase(upstream, cacheStore, nil)

	payload, err := uc.ListPrintings(context.Background(), "No Such Card")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if payload.TotalCount != 0 || payload.Message == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	if _, err := uc.ListPrintings(context.Background(), "no such   CARD"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.calls != 1 {
		t.Fatalf("expected normalized name to hit cache, got %d upstream calls", upstream.calls)
	}
}
