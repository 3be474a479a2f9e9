package card

// ColorOption is one entry of the static color catalog served to the filter UI.
type ColorOption struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type FilterOptions struct {
	Colors   []ColorOption `json:"colors"`
	Types    []string      `json:"types"`
	Rarities []string      `json:"rarities"`
}

var colorOptions = []ColorOption{
	{Code: "W", Name: "White", Symbol: "{W}"},
	{Code: "U", Name: "Blue", Symbol: "{U}"},
	{Code: "B", Name: "Black", Symbol: "{B}"},
	{Code: "R", Name: "Red", Symbol: "{R}"},
	{Code: "G", Name: "Green", Symbol: "{G}"},
}

var cardTypes = []string{
	"creature",
	"instant",
	"sorcery",
	"enchantment",
	"artifact",
	"planeswalker",
	"land",
}

var rarities = []string{"common", "uncommon", "rare", "mythic"}

// Filters returns the static filter catalog. The contents never change at
// runtime, so the endpoint serving this is not cached.
func Filters() FilterOptions {
	return FilterOptions{Colors: colorOptions, Types: cardTypes, Rarities: rarities}
}

func ValidRarity(r string) bool {
	for _, v := range rarities {
		if r == v {
			return true
		}
	}
	return false
}
