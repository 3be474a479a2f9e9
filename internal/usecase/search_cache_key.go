package usecase

import (
	"net/url"
	"strconv"
	"strings"
)

// Cache-key kinds. The prefix keeps filter-search keys and exact-name
// printings keys in disjoint namespaces.
const (
	keyKindSearch    = "search"
	keyKindPrintings = "printings"

	keyDelimiter = "|"
)

// SearchCacheKey derives a deterministic key from the normalized filter set
// plus the page number. Filter sets that differ only in casing, whitespace or
// color/type ordering map to the same key.
func SearchCacheKey(f SearchFilters, page int) string {
	if page < 1 {
		page = 1
	}

	colors := normalizeColors(f.Colors)
	types := normalizeTypes(f.Types)

	parts := []string{
		keyKindSearch,
		escapeKeyPart(normalizeSearchValue(f.Text)),
		escapeKeyPart(strings.ToLower(strings.Join(colors, ""))),
		escapeKeyPart(strings.Join(types, ",")),
		escapeKeyPart(strings.ToLower(strings.TrimSpace(f.Rarity))),
		"p=" + strconv.Itoa(page),
	}
	return strings.Join(parts, keyDelimiter)
}

// PrintingsCacheKey derives the key for an exact-name printings lookup.
func PrintingsCacheKey(name string) string {
	return keyKindPrintings + keyDelimiter + escapeKeyPart(normalizeSearchValue(name))
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// escapeKeyPart percent-escapes one key component so a value containing the
// delimiter cannot collide with the join separator.
func escapeKeyPart(s string) string {
	return url.QueryEscape(s)
}
