package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// German street-address shape: street name ending in a known suffix,
	// house number, optionally ", <postal> <city>".
	streetRe = regexp.MustCompile(`[A-ZÄÖÜ][a-zäöüß]+(?:[ -][A-ZÄÖÜ][a-zäöüß]+){0,2}[ -]?` +
		`(?:[Ss]traße|[Ss]trasse|[Ss]tr\.|[Ww]eg|[Pp]latz|[Gg]asse|[Aa]llee)` +
		`\s+\d+\s?[a-z]?(?:\s*,\s*\d{5}\s+[A-ZÄÖÜ][A-Za-zäöüß\-]+)?`)

	postalCityRe = regexp.MustCompile(`(\d{5})\s+([A-ZÄÖÜ][A-Za-zäöüß\-]+)`)
)

var addressSelectors = []string{
	`[itemprop="address"]`,
	`[itemprop="location"]`,
	"address",
	".event-location",
	".location",
	".venue",
	".adresse",
}

var addressRegionSelectors = []string{
	"footer",
	".footer",
	".kontakt",
	".contact",
	".venue-info",
	".veranstaltungsort",
}

// Address finds the venue address and city, preferring explicit address
// markup, then a street-shape match on the full page text, then the same
// match restricted to footer and contact regions. There is no host-based
// city guess; an unknown venue yields empty address and city.
func Address(doc *goquery.Document, text string) (address, city string) {
	for _, selector := range addressSelectors {
		if s := collapseSpace(doc.Find(selector).First().Text()); s != "" {
			return s, cityFromAddress(s)
		}
	}

	if m := streetRe.FindString(text); m != "" {
		return m, cityFromAddress(m)
	}

	for _, selector := range addressRegionSelectors {
		region := collapseSpace(doc.Find(selector).Text())
		if m := streetRe.FindString(region); m != "" {
			return m, cityFromAddress(m)
		}
	}

	return "", ""
}

// cityFromAddress pulls the city out of a free-text address: a
// "<postal> <City>" pair wins, else the last comma-separated segment.
func cityFromAddress(addr string) string {
	if m := postalCityRe.FindStringSubmatch(addr); m != nil {
		return m[2]
	}
	parts := strings.Split(addr, ",")
	if len(parts) > 1 {
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return ""
}
