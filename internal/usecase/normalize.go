package usecase

import (
	"mtg-cards/internal/domain/card"
	"mtg-cards/internal/infrastructure/scryfall"
)

// Fixed human-readable messages carried by empty payloads. Empty payloads are
// cache-eligible like any other result.
const (
	msgNoFilters   = "Please provide at least one search filter."
	msgNoResults   = "No cards found matching your search."
	msgNoPrintings = "No printings found for that card name."
)

// NormalizeCard resolves one raw record into the uniform card shape. A record
// is double-faced when the raw input carries a non-empty faces array; for
// those, top-level values win and the front face fills the gaps. Colors,
// rarity, set name, collector number, URI and prices always come from the
// top level.
func NormalizeCard(raw scryfall.Card) card.Card {
	out := card.Card{
		ID:              raw.ID,
		Name:            raw.Name,
		ManaCost:        raw.ManaCost,
		TypeLine:        raw.TypeLine,
		OracleText:      raw.OracleText,
		Power:           raw.Power,
		Toughness:       raw.Toughness,
		Colors:          raw.Colors,
		Rarity:          raw.Rarity,
		SetName:         raw.SetName,
		CollectorNumber: raw.CollectorNumber,
		ImageURIs:       raw.ImageURIs,
		ScryfallURI:     raw.ScryfallURI,
		Prices:          raw.Prices,
	}

	if len(raw.CardFaces) == 0 {
		return out
	}

	out.HasMultipleFaces = true
	front := raw.CardFaces[0]

	out.ManaCost = fallback(out.ManaCost, front.ManaCost)
	out.TypeLine = fallback(out.TypeLine, front.TypeLine)
	out.OracleText = fallback(out.OracleText, front.OracleText)
	out.Power = fallback(out.Power, front.Power)
	out.Toughness = fallback(out.Toughness, front.Toughness)
	if len(out.ImageURIs) == 0 {
		out.ImageURIs = front.ImageURIs
	}

	faces := &card.Faces{Front: normalizeFace(front)}
	// Back stays nil for a single-face array; "no back face" must remain
	// distinguishable from "back face with unknown attributes".
	if len(raw.CardFaces) > 1 {
		back := normalizeFace(raw.CardFaces[1])
		faces.Back = &back
	}
	out.Faces = faces

	return out
}

func normalizeFace(f scryfall.CardFace) card.Face {
	return card.Face{
		Name:       f.Name,
		ManaCost:   f.ManaCost,
		TypeLine:   f.TypeLine,
		OracleText: f.OracleText,
		Power:      f.Power,
		Toughness:  f.Toughness,
		Colors:     f.Colors,
		ImageURIs:  f.ImageURIs,
	}
}

// NormalizePrinting maps one raw record into the printing shape. Top-level
// image URIs are authoritative; only when they are absent and the record has
// faces are front and back images pulled from the faces, stored separately.
func NormalizePrinting(raw scryfall.Card) card.Printing {
	out := card.Printing{
		ID:              raw.ID,
		Name:            raw.Name,
		SetName:         raw.SetName,
		SetCode:         raw.Set,
		CollectorNumber: raw.CollectorNumber,
		Rarity:          raw.Rarity,
		ReleasedAt:      raw.ReleasedAt,
		ImageURIs:       raw.ImageURIs,
		Prices:          raw.Prices,
		ScryfallURI:     raw.ScryfallURI,
	}

	if len(out.ImageURIs) == 0 && len(raw.CardFaces) > 0 {
		out.ImageURIs = raw.CardFaces[0].ImageURIs
		if len(raw.CardFaces) > 1 {
			out.BackImageURIs = raw.CardFaces[1].ImageURIs
		}
	}

	return out
}

func fallback(top, face string) string {
	if top != "" {
		return top
	}
	return face
}

func emptyCardPayload(page int, message string) card.ResultPayload {
	return card.ResultPayload{
		Data:       []card.Card{},
		TotalCount: 0,
		HasMore:    false,
		Page:       page,
		Message:    message,
	}
}

func emptyPrintingsPayload(message string) card.ResultPayload {
	return card.ResultPayload{
		Data:       []card.Printing{},
		TotalCount: 0,
		HasMore:    false,
		Page:       1,
		Message:    message,
	}
}
