package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	shortDescriptionMax = 200
	descriptionMax      = 3000
	minParagraphLen     = 20
	minTitleLen         = 3
)

// Title returns the page's best event title or "" when nothing usable
// exists: first h1, then og:title, then the document title, each collapsed
// and rejected below 3 characters.
func Title(doc *goquery.Document) string {
	candidates := []string{
		doc.Find("h1").First().Text(),
		metaContent(doc, `meta[property="og:title"]`),
		doc.Find("title").First().Text(),
	}
	for _, c := range candidates {
		if t := collapseSpace(c); len([]rune(t)) >= minTitleLen {
			return t
		}
	}
	return ""
}

// ShortDescription returns a teaser line: subtitle heading, og:description
// or the meta description, capped at 200 characters.
func ShortDescription(doc *goquery.Document) string {
	candidates := []string{
		doc.Find("h2").First().Text(),
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
	}
	for _, c := range candidates {
		if s := collapseSpace(c); s != "" {
			return truncate(s, shortDescriptionMax)
		}
	}
	return ""
}

var contentSelectors = []string{
	"main",
	"article",
	".event-description",
	".entry-content",
	".post-content",
	".main-content",
	".content",
	"#content",
	".description",
}

// Description mines the first matching content container for the long
// description. Navigation chrome is stripped; paragraph-like children above
// 20 characters are concatenated, falling back to the container's raw text.
// The result is capped at 3000 characters.
func Description(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		container = container.Clone()
		container.Find("nav, header, footer, aside, script, style, form").Remove()

		var parts []string
		container.Find("p, li, h3, h4").Each(func(_ int, sel *goquery.Selection) {
			text := collapseSpace(sel.Text())
			if len([]rune(text)) > minParagraphLen {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			return truncate(strings.Join(parts, "\n\n"), descriptionMax)
		}

		if text := collapseSpace(container.Text()); text != "" {
			return truncate(text, descriptionMax)
		}
	}
	return ""
}

// ImageURL prefers og:image over the first image inside a content area.
// The result is always absolute.
func ImageURL(doc *goquery.Document, base *url.URL) string {
	if og := metaContent(doc, `meta[property="og:image"]`); og != "" {
		return absoluteURL(base, og)
	}
	for _, selector := range contentSelectors {
		if src, ok := doc.Find(selector + " img").First().Attr("src"); ok && strings.TrimSpace(src) != "" {
			return absoluteURL(base, src)
		}
	}
	return ""
}

// known ticketing platforms and shop keywords, checked per anchor in
// document order
var ticketIndicators = []string{
	"reservix",
	"eventbrite",
	"eventim",
	"ticket",
	"karten",
	"vorverkauf",
	"shop",
}

// TicketURL returns the first anchor pointing at a ticketing platform or
// shop, resolved to an absolute URL.
func TicketURL(doc *goquery.Document, base *url.URL) string {
	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		lower := strings.ToLower(href)
		for _, indicator := range ticketIndicators {
			if strings.Contains(lower, indicator) {
				found = absoluteURL(base, href)
				return false
			}
		}
		return true
	})
	return found
}
