package extract

import (
	"regexp"
	"strings"
)

const soliLabel = "Eintritt frei, Solitickets verfügbar"

const amountPattern = `\d{1,4}(?:[.,]\d{1,2})?\s*(?:€|EUR|Euro)`

var (
	freePhraseRe = regexp.MustCompile(`(?i)Eintritt frei|freier Eintritt|kostenlos|kostenfrei`)

	// ordered by priority: presale, door price, lower bound, bare amount,
	// currency-prefixed amount
	priceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:VVK|Vorverkauf)\.?:?\s*` + amountPattern),
		regexp.MustCompile(`(?i)(?:AK|Abendkasse)\.?:?\s*` + amountPattern),
		regexp.MustCompile(`(?i)\bab\s*` + amountPattern),
		regexp.MustCompile(amountPattern),
		regexp.MustCompile(`(?:€|EUR)\s*\d{1,4}(?:[.,]\d{1,2})?`),
	}
)

// Price returns the admission price found in text as free text, verbatim as
// matched, or "" when nothing matches. "Eintritt frei"-style phrases win
// over any amount. A matched amount with "soli" and "frei" co-occurring
// within 50 characters around it is reported as a solidarity-pricing label
// instead of the literal amount.
func Price(text string) string {
	if m := freePhraseRe.FindString(text); m != "" {
		return m
	}

	for _, re := range priceRes {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if soliNearby(text, loc) {
			return soliLabel
		}
		return strings.TrimSpace(text[loc[0]:loc[1]])
	}

	return ""
}

func soliNearby(text string, loc []int) bool {
	lo := loc[0] - 50
	if lo < 0 {
		lo = 0
	}
	hi := loc[1] + 50
	if hi > len(text) {
		hi = len(text)
	}
	window := strings.ToLower(text[lo:hi])
	return strings.Contains(window, "soli") && strings.Contains(window, "frei")
}
