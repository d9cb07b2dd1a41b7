package extract

import (
	"net/url"
	"strings"

	"eventsCrawler/internal/models/domain"

	"github.com/PuerkitoBio/goquery"
)

// DetailPage extracts one event from a detail page. Structured data always
// wins: when the page carries an Event-typed JSON-LD block its first record
// is returned and no heuristic runs. Otherwise the full heuristic cascade
// assembles a record, which is kept only when a usable title was found.
func DetailPage(doc *goquery.Document, base *url.URL, defaultCountry string) (domain.EventRecord, bool) {
	if structured := StructuredEvents(doc, base, defaultCountry); len(structured) > 0 {
		return structured[0], true
	}

	title := Title(doc)
	if len([]rune(strings.TrimSpace(title))) < minTitleLen {
		return domain.EventRecord{}, false
	}

	text := pageText(doc)
	startsAt, endsAt := DateRange(text)

	short := ShortDescription(doc)
	description := Description(doc)
	if description == "" {
		description = firstNonEmpty(short, title)
	}
	if short == "" {
		short = truncate(collapseSpace(description), shortDescriptionMax)
	}

	address, city := Address(doc, text)

	return domain.EventRecord{
		SourceURL:        base.String(),
		Title:            title,
		ShortDescription: short,
		Description:      description,
		StartsAt:         startsAt,
		EndsAt:           endsAt,
		Address:          address,
		City:             city,
		Country:          defaultCountry,
		ImageURL:         ImageURL(doc, base),
		TicketURL:        TicketURL(doc, base),
		Price:            Price(text),
	}, true
}
