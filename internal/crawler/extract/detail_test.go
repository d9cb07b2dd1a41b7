package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailPage_StructuredDataShortCircuits(t *testing.T) {
	doc := docFrom(t, `<html><head>
		<script type="application/ld+json">
		{"@type": "Event", "name": "Strukturierter Titel", "startDate": "2026-04-01T19:00:00"}
		</script>
	</head><body>
		<h1>Heuristischer Titel</h1>
		<p>Am 09.09.2026 um 21:00 Uhr</p>
	</body></html>`)

	rec, ok := DetailPage(doc, mustURL(t, "https://example.com/event/a"), "Deutschland")

	require.True(t, ok)
	assert.Equal(t, "Strukturierter Titel", rec.Title)
	require.NotNil(t, rec.StartsAt)
	assert.Equal(t, time.Date(2026, 4, 1, 19, 0, 0, 0, time.Local), *rec.StartsAt)
}

func TestDetailPage_HeuristicCascade(t *testing.T) {
	doc := docFrom(t, `<html><head>
		<title>sommerfest | kultur-verein.de</title>
		<meta property="og:image" content="/bilder/fest.jpg"/>
	</head><body>
		<h1>Sommerfest am Fluss</h1>
		<h2>Musik, Essen und mehr</h2>
		<main>
			<p>Samstag, 14.03.2026 19:30 Uhr öffnen wir die Tore für alle Gäste.</p>
			<p>Der Eintritt kostet VVK 15 EUR im Vorverkauf über unsere Partner.</p>
			<p>Ihr findet uns in der Uferstraße 3, 28199 Bremen direkt am Wasser.</p>
		</main>
		<a href="/vorverkauf/sommerfest">Karten</a>
	</body></html>`)

	rec, ok := DetailPage(doc, mustURL(t, "https://example.com/event/sommerfest"), "Deutschland")

	require.True(t, ok)
	assert.Equal(t, "https://example.com/event/sommerfest", rec.SourceURL)
	assert.Equal(t, "Sommerfest am Fluss", rec.Title)
	assert.Equal(t, "Musik, Essen und mehr", rec.ShortDescription)
	assert.Contains(t, rec.Description, "öffnen wir die Tore")
	assert.Equal(t, "VVK 15 EUR", rec.Price)
	assert.Equal(t, "Uferstraße 3, 28199 Bremen", rec.Address)
	assert.Equal(t, "Bremen", rec.City)
	assert.Equal(t, "Deutschland", rec.Country)
	assert.Equal(t, "https://example.com/bilder/fest.jpg", rec.ImageURL)
	assert.Equal(t, "https://example.com/vorverkauf/sommerfest", rec.TicketURL)

	require.NotNil(t, rec.StartsAt)
	assert.Equal(t, time.Date(2026, 3, 14, 19, 30, 0, 0, time.Local), *rec.StartsAt)
}

func TestDetailPage_NoUsableTitle(t *testing.T) {
	doc := docFrom(t, `<html><head></head><body><p>Am 01.01.2026 passiert etwas.</p></body></html>`)

	_, ok := DetailPage(doc, mustURL(t, "https://example.com/event/a"), "Deutschland")

	assert.False(t, ok)
}

func TestDetailPage_ShortDescriptionNeverExceeds200(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h1>Langer Abend</h1>
		<main><p>`+longSentence(400)+`</p></main>
	</body></html>`)

	rec, ok := DetailPage(doc, mustURL(t, "https://example.com/event/a"), "Deutschland")

	require.True(t, ok)
	assert.LessOrEqual(t, len([]rune(rec.ShortDescription)), 200)
}

func longSentence(n int) string {
	s := "Worte "
	for len(s) < n {
		s += "und noch mehr Worte "
	}
	return s
}
