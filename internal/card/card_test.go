package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestImageURL(t *testing.T) {
	tests := []struct {
		name    string
		card    Card
		want    string
		wantErr error
	}{
		{
			name: "top-level normal preferred",
			card: Card{ImageURIs: map[string]string{
				"small":  "u-small",
				"normal": "u-normal",
				"large":  "u-large",
			}},
			want: "u-normal",
		},
		{
			name: "large when no normal",
			card: Card{ImageURIs: map[string]string{
				"small": "u-small",
				"large": "u-large",
			}},
			want: "u-large",
		},
		{
			name: "small only",
			card: Card{ImageURIs: map[string]string{"small": "u2"}},
			want: "u2",
		},
		{
			name: "front face fallback for multi-faced cards",
			card: Card{CardFaces: []Face{
				{ImageURIs: map[string]string{"normal": "u1"}},
				{ImageURIs: map[string]string{"normal": "u-back"}},
			}},
			want: "u1",
		},
		{
			name: "top level wins over faces",
			card: Card{
				ImageURIs: map[string]string{"normal": "u-top"},
				CardFaces: []Face{{ImageURIs: map[string]string{"normal": "u-face"}}},
			},
			want: "u-top",
		},
		{
			name:    "no image anywhere",
			card:    Card{Name: "Textless"},
			wantErr: ErrNoImage,
		},
		{
			name:    "faces without image uris",
			card:    Card{CardFaces: []Face{{Name: "Front"}}},
			wantErr: ErrNoImage,
		},
		{
			name:    "unusable sizes only",
			card:    Card{ImageURIs: map[string]string{"art_crop": "u-crop"}},
			wantErr: ErrNoImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.card.BestImageURL()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardDecodesScryfallPayload(t *testing.T) {
	payload := `{
		"name": "Lightning Bolt",
		"mana_cost": "{R}",
		"cmc": 1.0,
		"type_line": "Instant",
		"colors": ["R"],
		"oracle_text": "Lightning Bolt deals 3 damage to any target.",
		"rarity": "common",
		"set_name": "Limited Edition Alpha",
		"prices": {"usd": "1.50", "usd_foil": null},
		"legalities": {"modern": "legal", "standard": "not_legal"},
		"image_uris": {"normal": "https://img.example/bolt.jpg"}
	}`

	var c Card
	require.NoError(t, json.Unmarshal([]byte(payload), &c))

	assert.Equal(t, "Lightning Bolt", c.Name)
	assert.Equal(t, "{R}", c.ManaCost)
	assert.Equal(t, 1.0, c.CMC)
	assert.Equal(t, []string{"R"}, c.Colors)
	assert.Equal(t, "1.50", c.Prices.USD)
	assert.Empty(t, c.Prices.USDFoil, "null price should decode to empty")
	assert.Equal(t, "legal", c.Legalities["modern"])

	url, err := c.BestImageURL()
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/bolt.jpg", url)
}
