package cards

import "strings"

const (
	NoCards     = "no cards"
	HiddenGlyph = "?"
)

// RenderHandText renders a hand as space separated rank+suit pairs. With
// hideFirst the first card is replaced by HiddenGlyph, as for a dealer's
// hole card.
func RenderHandText(h Hand, hideFirst bool) string {
	if len(h) == 0 {
		return NoCards
	}

	if hideFirst {
		rest := join(h[1:])
		if rest == "" {
			return HiddenGlyph
		}
		return HiddenGlyph + " + " + rest
	}
	return join(h)
}

func join(h Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
