package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle_Cascade(t *testing.T) {
	withH1 := docFrom(t, `<html><head><title>Seite</title></head><body><h1> Großes
		Sommerfest </h1></body></html>`)
	assert.Equal(t, "Großes Sommerfest", Title(withH1))

	ogOnly := docFrom(t, `<html><head>
		<meta property="og:title" content="Konzert im Park"/>
		<title>park-kultur.de</title>
	</head><body><h1>X</h1></body></html>`)
	assert.Equal(t, "Konzert im Park", Title(ogOnly))

	titleOnly := docFrom(t, `<html><head><title>Lesung am See</title></head><body></body></html>`)
	assert.Equal(t, "Lesung am See", Title(titleOnly))

	nothing := docFrom(t, `<html><head><title>X</title></head><body></body></html>`)
	assert.Equal(t, "", Title(nothing))
}

func TestShortDescription_CappedAt200(t *testing.T) {
	long := strings.Repeat("a", 250)
	doc := docFrom(t, `<html><body><h2>`+long+`</h2></body></html>`)

	short := ShortDescription(doc)

	assert.Len(t, []rune(short), 200)
}

func TestDescription_PrefersLongParagraphs(t *testing.T) {
	doc := docFrom(t, `<html><body><main>
		<nav><a href="/">Home</a> viel Navigationstext der nicht zählen darf</nav>
		<p>Kurz.</p>
		<p>Dieser Absatz beschreibt das Konzert ausführlich und genau.</p>
		<p>Ein zweiter langer Absatz über die Band und ihre Geschichte.</p>
	</main></body></html>`)

	description := Description(doc)

	assert.Equal(t,
		"Dieser Absatz beschreibt das Konzert ausführlich und genau.\n\nEin zweiter langer Absatz über die Band und ihre Geschichte.",
		description,
	)
}

func TestDescription_FallsBackToContainerText(t *testing.T) {
	doc := docFrom(t, `<html><body><main><div>Nur ein Satz im Container</div></main></body></html>`)

	assert.Equal(t, "Nur ein Satz im Container", Description(doc))
}

func TestImageURL_OgImageWinsAndIsAbsolute(t *testing.T) {
	doc := docFrom(t, `<html><head>
		<meta property="og:image" content="/img/header.jpg"/>
	</head><body><main><img src="/img/other.jpg"/></main></body></html>`)

	assert.Equal(t, "https://example.com/img/header.jpg", ImageURL(doc, mustURL(t, "https://example.com/events/1")))
}

func TestImageURL_ContentImageFallback(t *testing.T) {
	doc := docFrom(t, `<html><body><article><img src="plakat.png"/></article></body></html>`)

	assert.Equal(t, "https://example.com/events/plakat.png", ImageURL(doc, mustURL(t, "https://example.com/events/1")))
}

func TestTicketURL_FirstMatchingAnchor(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="/programm">Programm</a>
		<a href="/vorverkauf/sommerfest">Jetzt Karten sichern</a>
		<a href="https://www.reservix.de/tickets/123">Reservix</a>
	</body></html>`)

	assert.Equal(t,
		"https://example.com/vorverkauf/sommerfest",
		TicketURL(doc, mustURL(t, "https://example.com/events/1")),
	)
}

func TestTicketURL_NoMatch(t *testing.T) {
	doc := docFrom(t, `<html><body><a href="/programm">Programm</a></body></html>`)

	assert.Equal(t, "", TicketURL(doc, mustURL(t, "https://example.com/")))
}
