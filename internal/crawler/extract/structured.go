package extract

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"eventsCrawler/internal/models/domain"

	"github.com/PuerkitoBio/goquery"
)

// StructuredEvents scans every JSON-LD script block of doc and returns one
// record per schema.org Event found. A malformed block is skipped, never
// fatal; no Event-typed item yields an empty result.
func StructuredEvents(doc *goquery.Document, base *url.URL, defaultCountry string) []domain.EventRecord {
	var records []domain.EventRecord

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(sel.Text()), &payload); err != nil {
			return
		}
		for _, item := range unwrapGraph(payload) {
			obj, ok := item.(map[string]any)
			if !ok || !isEventType(obj["@type"]) {
				continue
			}
			records = append(records, eventFromJSONLD(obj, base, defaultCountry))
		}
	})

	return records
}

// unwrapGraph flattens the common JSON-LD envelopes: a top-level array, a
// @graph wrapper, or a single object.
func unwrapGraph(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			return graph
		}
		return []any{v}
	}
	return nil
}

// isEventType accepts "Event" and its subtypes ("MusicEvent" etc.), as a
// plain string or inside a type array.
func isEventType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.Contains(v, "Event")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.Contains(s, "Event") {
				return true
			}
		}
	}
	return false
}

func eventFromJSONLD(obj map[string]any, base *url.URL, defaultCountry string) domain.EventRecord {
	name := collapseSpace(str(obj["name"]))
	desc := strings.TrimSpace(str(obj["description"]))

	rec := domain.EventRecord{
		SourceURL:        base.String(),
		Title:            name,
		Description:      desc,
		ShortDescription: truncate(collapseSpace(firstNonEmpty(desc, name)), shortDescriptionMax),
		Country:          defaultCountry,
	}

	rec.StartsAt = ParseInstant(str(obj["startDate"]))
	rec.EndsAt = ParseInstant(str(obj["endDate"]))

	if loc, ok := obj["location"].(map[string]any); ok {
		switch addr := loc["address"].(type) {
		case map[string]any:
			rec.Address = joinNonEmpty(", ",
				str(addr["streetAddress"]),
				str(addr["postalCode"]),
				str(addr["addressLocality"]),
			)
			rec.City = str(addr["addressLocality"])
			if c := str(addr["addressCountry"]); c != "" {
				rec.Country = c
			}
		case string:
			rec.Address = strings.TrimSpace(addr)
		}
		if rec.Address == "" {
			rec.Address = collapseSpace(str(loc["name"]))
		}
	}

	switch img := obj["image"].(type) {
	case string:
		rec.ImageURL = absoluteURL(base, img)
	case map[string]any:
		rec.ImageURL = absoluteURL(base, str(img["url"]))
	case []any:
		if len(img) > 0 {
			rec.ImageURL = absoluteURL(base, str(img[0]))
		}
	}

	rec.TicketURL = absoluteURL(base, str(obj["url"]))

	if offer, ok := firstOffer(obj["offers"]); ok {
		if rec.TicketURL == "" {
			rec.TicketURL = absoluteURL(base, str(offer["url"]))
		}
		currency := str(offer["priceCurrency"])
		if p := numStr(offer["price"]); p != "" {
			rec.Price = strings.TrimSpace(p + " " + currency)
		} else if lp := numStr(offer["lowPrice"]); lp != "" {
			rec.Price = strings.TrimSpace("Ab " + lp + " " + currency)
		}
	}

	return rec
}

// firstOffer returns the first offer object, whether offers is a single
// object or an array.
func firstOffer(offers any) (map[string]any, bool) {
	switch v := offers.(type) {
	case map[string]any:
		return v, true
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				return obj, true
			}
		}
	}
	return nil, false
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// numStr renders a JSON price value, which sites emit as string or number.
func numStr(v any) string {
	switch n := v.(type) {
	case string:
		return strings.TrimSpace(n)
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%.2f", n)
	}
	return ""
}
