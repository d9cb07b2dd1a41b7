package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventLinks_ClassifiesDetailPages(t *testing.T) {
	base := mustURL(t, "https://example.com/veranstaltungen/")
	doc := docFrom(t, `<html><body>
		<a href="/veranstaltungen/sommerfest">Sommerfest</a>
		<a href="https://example.com/event/konzert-1">Konzert</a>
		<a href="?event=42">Direktlink</a>
		<a href="https://other.com/event/fremd">Fremdes Event</a>
		<a href="/impressum">Impressum</a>
		<a href="/veranstaltungen/archiv">Archiv</a>
		<a href="/veranstaltungen/">Alle Veranstaltungen</a>
		<a href="/veranstaltungen/sommerfest">Sommerfest nochmal</a>
	</body></html>`)

	links := EventLinks(doc, base)

	assert.Equal(t, []string{
		"https://example.com/veranstaltungen/sommerfest",
		"https://example.com/event/konzert-1",
		"https://example.com/veranstaltungen/?event=42",
	}, links)
}

func TestEventLinks_SameHostAndNeverTheOverviewItself(t *testing.T) {
	base := mustURL(t, "https://example.com/veranstaltungen/")
	doc := docFrom(t, `<html><body>
		<a href="/veranstaltungen/a">A</a>
		<a href="https://sub.example.com/veranstaltungen/b">B</a>
		<a href="https://example.com/veranstaltungen/">Selbst</a>
	</body></html>`)

	links := EventLinks(doc, base)

	for _, link := range links {
		resolved := mustURL(t, link)
		assert.Equal(t, base.Hostname(), resolved.Hostname())
		assert.False(t, sameURL(resolved, base))
	}
	assert.Equal(t, []string{"https://example.com/veranstaltungen/a"}, links)
}

func TestEventLinks_NoQualifyingAnchors(t *testing.T) {
	base := mustURL(t, "https://example.com/")
	doc := docFrom(t, `<html><body>
		<a href="/ueber-uns">Über uns</a>
		<a href="/blog/artikel-1">Blog</a>
		<a href="https://facebook.com/example">Facebook</a>
	</body></html>`)

	assert.Empty(t, EventLinks(doc, base))
}
