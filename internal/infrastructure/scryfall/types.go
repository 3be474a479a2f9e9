package scryfall

// Wire types for the subset of the upstream card schema this service consumes.

type SearchResponse struct {
	Object     string `json:"object"`
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
	NextPage   string `json:"next_page"`
	Data       []Card `json:"data"`
}

type Card struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ManaCost        string            `json:"mana_cost"`
	TypeLine        string            `json:"type_line"`
	OracleText      string            `json:"oracle_text"`
	Power           string            `json:"power"`
	Toughness       string            `json:"toughness"`
	Colors          []string          `json:"colors"`
	Rarity          string            `json:"rarity"`
	Set             string            `json:"set"`
	SetName         string            `json:"set_name"`
	CollectorNumber string            `json:"collector_number"`
	ReleasedAt      string            `json:"released_at"`
	ImageURIs       map[string]string `json:"image_uris"`
	ScryfallURI     string            `json:"scryfall_uri"`
	Prices          map[string]string `json:"prices"`
	CardFaces       []CardFace        `json:"card_faces"`
}

type CardFace struct {
	Name       string            `json:"name"`
	ManaCost   string            `json:"mana_cost"`
	TypeLine   string            `json:"type_line"`
	OracleText string            `json:"oracle_text"`
	Power      string            `json:"power"`
	Toughness  string            `json:"toughness"`
	Colors     []string          `json:"colors"`
	ImageURIs  map[string]string `json:"image_uris"`
}
