package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange_WeekdayPrefixWithTime(t *testing.T) {
	start, end := DateRange("Donnerstag, 05.02.2026 19:30 Uhr")

	require.NotNil(t, start)
	assert.Equal(t, time.Date(2026, 2, 5, 19, 30, 0, 0, time.Local), *start)
	assert.Nil(t, end)
}

func TestDateRange_DateOnlyDefaultsToEvening(t *testing.T) {
	start, end := DateRange("Am 12.03.2026 feiern wir im Hof")

	require.NotNil(t, start)
	assert.Equal(t, time.Date(2026, 3, 12, 20, 0, 0, 0, time.Local), *start)
	assert.Nil(t, end)
}

func TestDateRange_SeparateTimeToken(t *testing.T) {
	start, _ := DateRange("12.03.2026 Einlass: 19.00 Uhr")

	require.NotNil(t, start)
	assert.Equal(t, time.Date(2026, 3, 12, 19, 0, 0, 0, time.Local), *start)
}

func TestDateRange_EndTimeAfterBis(t *testing.T) {
	start, end := DateRange("05.02.2026 19:30 Uhr bis 22:00 Uhr")

	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2026, 2, 5, 19, 30, 0, 0, time.Local), *start)
	assert.Equal(t, time.Date(2026, 2, 5, 22, 0, 0, 0, time.Local), *end)
}

func TestDateRange_NoDate(t *testing.T) {
	start, end := DateRange("Einlass um 19:30 Uhr")

	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestDateRange_InvalidDateFallsBackToNow(t *testing.T) {
	start, _ := DateRange("31.02.2026 um 20:00 Uhr")

	require.NotNil(t, start)
	assert.WithinDuration(t, time.Now(), *start, time.Minute)
}

func TestParseInstant(t *testing.T) {
	withZone := ParseInstant("2026-05-01T20:00:00+02:00")
	require.NotNil(t, withZone)
	expected := time.Date(2026, 5, 1, 20, 0, 0, 0, time.FixedZone("", 2*60*60))
	assert.True(t, expected.Equal(*withZone))

	naive := ParseInstant("2026-05-01T20:00:00")
	require.NotNil(t, naive)
	assert.Equal(t, time.Date(2026, 5, 1, 20, 0, 0, 0, time.Local), *naive)

	dateOnly := ParseInstant("2026-05-01")
	require.NotNil(t, dateOnly)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local), *dateOnly)

	assert.Nil(t, ParseInstant("morgen"))
	assert.Nil(t, ParseInstant(""))
}
