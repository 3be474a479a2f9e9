package usecase

import (
	"strings"
	"testing"
)

func TestSearchCacheKey_NormalizesCaseAndOrder(t *testing.T) {
	a := SearchCacheKey(SearchFilters{Text: "  Lightning  Bolt ", Colors: []string{"r", "u"}, Types: []string{"Instant", "creature"}, Rarity: "RARE"}, 1)
	b := SearchCacheKey(SearchFilters{Text: "lightning bolt", Colors: []string{"U", "R"}, Types: []string{"creature", "instant"}, Rarity: "rare"}, 1)
	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}
}

func TestSearchCacheKey_PageIsPartOfKey(t *testing.T) {
	f := SearchFilters{Text: "goblin"}
	if SearchCacheKey(f, 1) == SearchCacheKey(f, 2) {
		t.Fatalf("expected page to distinguish keys")
	}
}

func TestSearchCacheKey_KindPrefixAvoidsCollision(t *testing.T) {
	search := SearchCacheKey(SearchFilters{Text: "bolt"}, 1)
	printings := PrintingsCacheKey("bolt")
	if search == printings {
		t.Fatalf("expected distinct keys for the two lookup kinds")
	}
	if !strings.HasPrefix(search, "search|") {
		t.Fatalf("unexpected search key prefix: %q", search)
	}
	if !strings.HasPrefix(printings, "printings|") {
		t.Fatalf("unexpected printings key prefix: %q", printings)
	}
}

func TestSearchCacheKey_EscapesDelimiter(t *testing.T) {
	// A type containing the delimiter must not collide with the separator.
	withDelim := SearchCacheKey(SearchFilters{Types: []string{"a|b"}}, 1)
	if strings.Count(withDelim, keyDelimiter) != 5 {
		t.Fatalf("expected delimiter to appear only as separator, got %q", withDelim)
	}

	a := SearchCacheKey(SearchFilters{Text: "x|y"}, 1)
	b := SearchCacheKey(SearchFilters{Text: "x", Colors: []string{"y"}}, 1)
	if a == b {
		t.Fatalf("expected escaped components to keep keys distinct")
	}
}

func TestPrintingsCacheKey_Deterministic(t *testing.T) {
	if PrintingsCacheKey(" Delver of  Secrets ") != PrintingsCacheKey("delver of secrets") {
		t.Fatalf("expected name normalization to produce identical keys")
	}
}
