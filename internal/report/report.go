package report

import (
	"fmt"
	"strings"

	"github.com/nocount/scryglass/internal/card"
)

// sectionWidth is the width of the separator rules and the wrap width for
// rules text blocks.
const sectionWidth = 50

var (
	heavyRule = strings.Repeat("═", sectionWidth)
	lightRule = strings.Repeat("─", sectionWidth)
)

// colorNames maps the one-letter color codes to full color names.
var colorNames = map[string]string{
	"W": "White",
	"U": "Blue",
	"B": "Black",
	"R": "Red",
	"G": "Green",
}

// legalityFormats is the fixed, ordered list of formats shown in the
// legality section, regardless of which formats the payload mentions.
var legalityFormats = []string{"standard", "pioneer", "modern", "legacy", "vintage", "commander"}

// Legality status markers.
const (
	markLegal    = "✓"
	markNotLegal = "✗"
	markOther    = "○"
)

// Format renders a card into an ordered sequence of display lines. It is a
// pure function: the same card always yields the same lines, and it never
// fails, however sparse the record is. Sections whose source fields are
// absent are omitted entirely.
func Format(c *card.Card) []string {
	var lines []string

	name := c.Name
	if name == "" {
		name = "Unknown"
	}
	header := "  " + name
	if c.ManaCost != "" {
		header += "  " + c.ManaCost
	}
	lines = append(lines, heavyRule, header, heavyRule, "")

	if c.TypeLine != "" {
		lines = append(lines, "Type: "+c.TypeLine)
	}

	lines = append(lines, fmt.Sprintf("Mana Value: %d", int(c.CMC)))

	if len(c.Colors) > 0 {
		names := make([]string, len(c.Colors))
		for i, code := range c.Colors {
			if full, ok := colorNames[code]; ok {
				names[i] = full
			} else {
				names[i] = code
			}
		}
		lines = append(lines, "Colors: "+strings.Join(names, ", "))
	} else {
		lines = append(lines, "Colors: Colorless")
	}

	if c.OracleText != "" {
		lines = append(lines, "", lightRule, "Oracle Text:")
		lines = append(lines, wrapBlock(c.OracleText, sectionWidth)...)
	}

	if c.FlavorText != "" {
		lines = append(lines, "", lightRule, "Flavor Text:")
		lines = append(lines, wrapBlock("\""+c.FlavorText+"\"", sectionWidth)...)
	}

	if c.Power != "" && c.Toughness != "" {
		lines = append(lines, "", fmt.Sprintf("Power/Toughness: %s/%s", c.Power, c.Toughness))
	}
	if c.Loyalty != "" {
		lines = append(lines, "", "Starting Loyalty: "+c.Loyalty)
	}

	setName := c.SetName
	if setName == "" {
		setName = "Unknown Set"
	}
	lines = append(lines, "", lightRule)
	lines = append(lines, "Rarity: "+capitalize(c.Rarity))
	lines = append(lines, "Set: "+setName)

	if c.Prices.USD != "" || c.Prices.USDFoil != "" {
		lines = append(lines, "", lightRule, "Prices:")
		if c.Prices.USD != "" {
			lines = append(lines, "  Regular: $"+c.Prices.USD)
		}
		if c.Prices.USDFoil != "" {
			lines = append(lines, "  Foil: $"+c.Prices.USDFoil)
		}
	}

	if len(c.Legalities) > 0 {
		lines = append(lines, "", lightRule, "Format Legality:")
		for _, format := range legalityFormats {
			status, ok := c.Legalities[format]
			if !ok || status == "" {
				status = "unknown"
			}
			var mark string
			switch status {
			case "legal":
				mark = markLegal
			case "not_legal":
				mark = markNotLegal
			default:
				mark = markOther
			}
			lines = append(lines, fmt.Sprintf("  %s %s: %s", mark, capitalize(format), statusText(status)))
		}
	}

	if c.Artist != "" {
		lines = append(lines, "", lightRule, "Artist: "+c.Artist)
	}
	if c.ScryfallURI != "" {
		lines = append(lines, "Scryfall: "+c.ScryfallURI)
	}

	return lines
}

// Render joins formatted lines into a single printable block.
func Render(lines []string) string {
	return strings.Join(lines, "\n")
}

// statusText turns a raw legality status into a readable form, e.g.
// "not_legal" becomes "Not Legal".
func statusText(status string) string {
	words := strings.Split(status, "_")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// wrapBlock wraps a text block to the given width, preserving explicit line
// breaks in the source text.
func wrapBlock(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapText(paragraph, width)...)
	}
	return lines
}

// wrapText wraps a single paragraph to a specified width.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = sectionWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var currentLine string
	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
