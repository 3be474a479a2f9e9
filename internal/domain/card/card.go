package card

// Card is the normalized, frontend-facing shape of one card record. Double-faced
// cards are flattened: top-level values win, front-face values fill the gaps, and
// the raw face data is preserved under Faces.
type Card struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ManaCost         string            `json:"mana_cost"`
	TypeLine         string            `json:"type_line"`
	OracleText       string            `json:"oracle_text"`
	Power            string            `json:"power"`
	Toughness        string            `json:"toughness"`
	Colors           []string          `json:"colors"`
	Rarity           string            `json:"rarity"`
	SetName          string            `json:"set_name"`
	CollectorNumber  string            `json:"collector_number"`
	ImageURIs        map[string]string `json:"image_uris"`
	ScryfallURI      string            `json:"scryfall_uri"`
	Prices           map[string]string `json:"prices"`
	HasMultipleFaces bool              `json:"has_multiple_faces"`
	Faces            *Faces            `json:"faces,omitempty"`
}

// Faces holds the per-face data of a multi-faced card. Back is nil when the card
// has a single face; it is never a zero-valued Face.
type Faces struct {
	Front Face  `json:"front"`
	Back  *Face `json:"back,omitempty"`
}

type Face struct {
	Name       string            `json:"name"`
	ManaCost   string            `json:"mana_cost"`
	TypeLine   string            `json:"type_line"`
	OracleText string            `json:"oracle_text"`
	Power      string            `json:"power"`
	Toughness  string            `json:"toughness"`
	Colors     []string          `json:"colors"`
	ImageURIs  map[string]string `json:"image_uris"`
}

// Printing is one physical edition of a card name.
type Printing struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	SetName         string            `json:"set_name"`
	SetCode         string            `json:"set"`
	CollectorNumber string            `json:"collector_number"`
	Rarity          string            `json:"rarity"`
	ReleasedAt      string            `json:"released_at"`
	ImageURIs       map[string]string `json:"image_uris"`
	BackImageURIs   map[string]string `json:"back_image_uris,omitempty"`
	Prices          map[string]string `json:"prices"`
	ScryfallURI     string            `json:"scryfall_uri"`
}

// ResultPayload is the response body for search and printings lookups. Data holds
// []Card or []Printing depending on the endpoint. Payloads are immutable once
// built; the cache stores them wholesale.
type ResultPayload struct {
	Data       any    `json:"data"`
	TotalCount int    `json:"total_count"`
	HasMore    bool   `json:"has_more"`
	Page       int    `json:"page"`
	NextPage   *int   `json:"next_page,omitempty"`
	Message    string `json:"message,omitempty"`
}
