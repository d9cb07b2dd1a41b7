package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// non-event page indicators, matched against the lowercased path+query
var denySubstrings = []string{
	"impressum", "datenschutz", "agb", "kontakt", "contact",
	"login", "logout", "signin", "signup", "register", "account",
	"warenkorb", "cart", "checkout", "newsletter", "presse",
	"jobs", "karriere", "sitemap", "suche", "search", "ueber-uns", "about",
	"facebook.com", "instagram.com", "twitter.com", "youtube.com",
	"/feed", ".rss", "rueckblick", "archiv", "vergangene",
	".pdf", ".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".zip", ".ics",
}

// detail-page naming conventions, matched against raw href and resolved URL
var detailPatterns = []string{
	"/event/", "/events/",
	"/veranstaltung/", "/veranstaltungen/",
	"/termin/", "/termine/",
	"eventdetail", "event_id=",
	"?event=", "&event=",
	"?id=", "&id=",
}

// locale-specific events keywords for the overview-path rule
var eventsKeywords = []string{
	"veranstaltungen", "events", "termine", "kalender", "programm",
}

// EventLinks classifies the anchors of an overview document and returns the
// deduplicated absolute URLs that look like event detail pages, in discovery
// order. Only links on the overview's own host qualify; the overview URL
// itself never does.
func EventLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""

		if resolved.Hostname() != base.Hostname() {
			return
		}
		if sameURL(resolved, base) {
			return
		}
		if denied(resolved) {
			return
		}
		if !looksLikeDetail(strings.ToLower(href), resolved, base) {
			return
		}

		abs := resolved.String()
		if !seen[abs] {
			seen[abs] = true
			links = append(links, abs)
		}
	})

	return links
}

func denied(u *url.URL) bool {
	pathQuery := strings.ToLower(u.Path)
	if u.RawQuery != "" {
		pathQuery += "?" + strings.ToLower(u.RawQuery)
	}
	for _, deny := range denySubstrings {
		if strings.Contains(pathQuery, deny) {
			return true
		}
	}
	return false
}

func looksLikeDetail(rawHref string, resolved, base *url.URL) bool {
	target := strings.ToLower(resolved.String())
	for _, p := range detailPatterns {
		if strings.Contains(rawHref, p) || strings.Contains(target, p) {
			return true
		}
	}

	// overview paths like /de/veranstaltungen also mark their children as
	// detail pages when the child path shares the keyword but differs
	basePath := strings.ToLower(base.Path)
	candPath := strings.ToLower(resolved.Path)
	for _, kw := range eventsKeywords {
		if strings.Contains(basePath, kw) && strings.Contains(candPath, kw) && candPath != basePath {
			return true
		}
	}

	return false
}

func sameURL(a, b *url.URL) bool {
	return a.Hostname() == b.Hostname() &&
		strings.TrimSuffix(a.Path, "/") == strings.TrimSuffix(b.Path, "/") &&
		a.RawQuery == b.RawQuery
}
