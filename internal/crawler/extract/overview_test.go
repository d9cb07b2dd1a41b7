package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewCards_FirstMatchingSelectorWins(t *testing.T) {
	base := mustURL(t, "https://example.com/veranstaltungen")
	doc := docFrom(t, `<html><body>
		<div class="event-item">
			<h3>Frühlingskonzert</h3>
			<p>Ein Konzert zum Saisonstart am 21.03.2026 um 19:00 Uhr.</p>
			<img src="/bilder/konzert.jpg"/>
			<a href="/veranstaltungen/fruehlingskonzert">Mehr</a>
		</div>
		<div class="event-item">
			<h3>Lesung im Hof</h3>
			<p>Texte unter freiem Himmel mit lokalen Autorinnen.</p>
		</div>
		<article><h3>Anderer Artikel</h3></article>
	</body></html>`)

	records := OverviewCards(doc, base, "Deutschland")

	require.Len(t, records, 2)
	assert.Equal(t, "Frühlingskonzert", records[0].Title)
	assert.Equal(t, "Lesung im Hof", records[1].Title)
	assert.Equal(t, "https://example.com/bilder/konzert.jpg", records[0].ImageURL)
	assert.Equal(t, "https://example.com/veranstaltungen/fruehlingskonzert", records[0].TicketURL)

	require.NotNil(t, records[0].StartsAt)
	assert.Equal(t, time.Date(2026, 3, 21, 19, 0, 0, 0, time.Local), *records[0].StartsAt)
}

func TestOverviewCards_NoCards(t *testing.T) {
	base := mustURL(t, "https://example.com/")
	doc := docFrom(t, `<html><body><p>Nur Fließtext.</p></body></html>`)

	assert.Empty(t, OverviewCards(doc, base, "Deutschland"))
}

func TestPageMeta_BuildsImportedRecord(t *testing.T) {
	base := mustURL(t, "https://example.com/veranstaltungen")
	doc := docFrom(t, `<html><head>
		<meta property="og:title" content="Kulturverein Beispielstadt"/>
		<meta property="og:description" content="Alle Termine des Vereins."/>
		<meta property="og:image" content="/logo.png"/>
	</head><body></body></html>`)

	rec, ok := PageMeta(doc, base, "Deutschland")

	require.True(t, ok)
	assert.Equal(t, "Kulturverein Beispielstadt", rec.Title)
	assert.Equal(t, "Alle Termine des Vereins.", rec.ShortDescription)
	assert.Equal(t, []string{"Imported"}, rec.Tags)
	assert.Equal(t, base.String(), rec.SourceURL)
	assert.Equal(t, base.String(), rec.TicketURL)
	assert.Equal(t, "https://example.com/logo.png", rec.ImageURL)
}

func TestPageMeta_NothingUsable(t *testing.T) {
	base := mustURL(t, "https://example.com/")
	doc := docFrom(t, `<html><head></head><body></body></html>`)

	_, ok := PageMeta(doc, base, "Deutschland")

	assert.False(t, ok)
}
