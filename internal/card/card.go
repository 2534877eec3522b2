package card

import "errors"

// ErrNoImage is returned when a card has no usable image URL.
var ErrNoImage = errors.New("no image available")

// Card represents a single card as returned by the Scryfall API.
// Every field except Name may be absent from the payload.
type Card struct {
	Name        string            `json:"name"`
	ManaCost    string            `json:"mana_cost"`
	TypeLine    string            `json:"type_line"`
	CMC         float64           `json:"cmc"`
	Colors      []string          `json:"colors"`
	OracleText  string            `json:"oracle_text"`
	FlavorText  string            `json:"flavor_text"`
	Power       string            `json:"power"`
	Toughness   string            `json:"toughness"`
	Loyalty     string            `json:"loyalty"`
	Rarity      string            `json:"rarity"`
	SetName     string            `json:"set_name"`
	Prices      Prices            `json:"prices"`
	Legalities  map[string]string `json:"legalities"`
	Artist      string            `json:"artist"`
	ScryfallURI string            `json:"scryfall_uri"`
	ImageURIs   map[string]string `json:"image_uris"`
	CardFaces   []Face            `json:"card_faces"`
}

// Prices holds the market prices for a card. Absent prices decode as empty
// strings.
type Prices struct {
	USD     string `json:"usd"`
	USDFoil string `json:"usd_foil"`
	EUR     string `json:"eur"`
	Tix     string `json:"tix"`
}

// Face represents one face of a multi-faced card. Multi-faced layouts carry
// their image URIs on the faces rather than at the top level.
type Face struct {
	Name      string            `json:"name"`
	ManaCost  string            `json:"mana_cost"`
	TypeLine  string            `json:"type_line"`
	ImageURIs map[string]string `json:"image_uris"`
}

// imageSizePreference orders the image sizes from most to least preferred.
var imageSizePreference = []string{"normal", "large", "small"}

// BestImageURL returns the preferred image URL for the card. Top-level image
// URIs win; multi-faced cards fall back to the front face. Within the chosen
// set, "normal" is preferred, then "large", then "small". ErrNoImage is
// returned when nothing usable is present.
func (c *Card) BestImageURL() (string, error) {
	uris := c.ImageURIs
	if len(uris) == 0 && len(c.CardFaces) > 0 {
		uris = c.CardFaces[0].ImageURIs
	}

	for _, size := range imageSizePreference {
		if url, ok := uris[size]; ok && url != "" {
			return url, nil
		}
	}

	return "", ErrNoImage
}
