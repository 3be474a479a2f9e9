package usecase

import (
	"sort"
	"strings"
)

// SearchFilters is the caller-supplied combination of independent, optional
// criteria used to build one search.
type SearchFilters struct {
	Text   string
	Colors []string
	Types  []string
	Rarity string
}

// Empty reports whether no criterion survives normalization. An all-empty
// filter set short-circuits to an empty payload before any upstream call.
func (f SearchFilters) Empty() bool {
	return strings.TrimSpace(f.Text) == "" &&
		len(normalizeColors(f.Colors)) == 0 &&
		len(normalizeTypes(f.Types)) == 0 &&
		strings.TrimSpace(f.Rarity) == ""
}

// BuildSearchQuery renders the filters into the upstream query language.
// Token order is fixed: text, colors, types, rarity. Colors and types are
// sorted ascending so equal filter sets always render identically, which the
// cache key depends on. An all-empty filter set yields the wildcard token.
func BuildSearchQuery(f SearchFilters) string {
	var tokens []string

	if t := strings.TrimSpace(f.Text); t != "" {
		tokens = append(tokens, t)
	}

	if colors := normalizeColors(f.Colors); len(colors) > 0 {
		tokens = append(tokens, "c:"+strings.Join(colors, ""))
	}

	for _, t := range normalizeTypes(f.Types) {
		tokens = append(tokens, "t:"+t)
	}

	if r := strings.ToLower(strings.TrimSpace(f.Rarity)); r != "" {
		tokens = append(tokens, "r:"+r)
	}

	if len(tokens) == 0 {
		return "*"
	}
	return strings.Join(tokens, " ")
}

// normalizeColors upper-cases, deduplicates and sorts the color codes.
func normalizeColors(colors []string) []string {
	return normalizeSet(colors, strings.ToUpper)
}

// normalizeTypes lower-cases, deduplicates and sorts the type names.
func normalizeTypes(types []string) []string {
	return normalizeSet(types, strings.ToLower)
}

func normalizeSet(values []string, casing func(string) string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = casing(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
