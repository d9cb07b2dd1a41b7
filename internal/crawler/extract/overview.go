package extract

import (
	"net/url"

	"eventsCrawler/internal/models/domain"

	"github.com/PuerkitoBio/goquery"
)

// card container candidates, most specific first; the first selector that
// yields any records wins and later selectors are never merged in
var cardSelectors = []string{
	".event-item",
	".event-card",
	".veranstaltung-item",
	"[class*='event']",
	"[class*='veranstaltung']",
	"article",
	".card",
	".teaser",
}

// OverviewCards mines repeating card-like structures on the overview page.
// It is the fallback when link classification found no detail links.
func OverviewCards(doc *goquery.Document, base *url.URL, defaultCountry string) []domain.EventRecord {
	for _, selector := range cardSelectors {
		var records []domain.EventRecord
		doc.Find(selector).Each(func(_ int, card *goquery.Selection) {
			if rec, ok := cardRecord(card, base, defaultCountry); ok {
				records = append(records, rec)
			}
		})
		if len(records) > 0 {
			return records
		}
	}
	return nil
}

// cardRecord applies a lightweight heading+paragraph+image+first-link
// heuristic to one card element.
func cardRecord(card *goquery.Selection, base *url.URL, defaultCountry string) (domain.EventRecord, bool) {
	title := collapseSpace(card.Find("h1, h2, h3, h4, .title").First().Text())
	if len([]rune(title)) < minTitleLen {
		return domain.EventRecord{}, false
	}

	text := collapseSpace(card.Text())
	startsAt, endsAt := DateRange(text)

	description := collapseSpace(card.Find("p").First().Text())
	if description == "" {
		description = title
	}

	rec := domain.EventRecord{
		SourceURL:        base.String(),
		Title:            title,
		ShortDescription: truncate(description, shortDescriptionMax),
		Description:      description,
		StartsAt:         startsAt,
		EndsAt:           endsAt,
		Country:          defaultCountry,
		Price:            Price(text),
	}

	if src, ok := card.Find("img").First().Attr("src"); ok {
		rec.ImageURL = absoluteURL(base, src)
	}
	if href, ok := card.Find("a[href]").First().Attr("href"); ok {
		rec.TicketURL = absoluteURL(base, href)
	}

	return rec, true
}

// PageMeta builds a single last-resort record from page-level metadata
// alone, tagged "Imported" and pointing back at the overview URL.
func PageMeta(doc *goquery.Document, base *url.URL, defaultCountry string) (domain.EventRecord, bool) {
	title := collapseSpace(firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		doc.Find("title").First().Text(),
	))
	if len([]rune(title)) < minTitleLen {
		return domain.EventRecord{}, false
	}

	description := collapseSpace(firstNonEmpty(
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
		title,
	))

	rec := domain.EventRecord{
		SourceURL:        base.String(),
		Title:            title,
		ShortDescription: truncate(description, shortDescriptionMax),
		Description:      description,
		Country:          defaultCountry,
		TicketURL:        base.String(),
		Tags:             []string{"Imported"},
	}
	if og := metaContent(doc, `meta[property="og:image"]`); og != "" {
		rec.ImageURL = absoluteURL(base, og)
	}

	return rec, true
}
