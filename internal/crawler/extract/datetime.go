package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// DD.MM.YYYY with an optional German weekday prefix and an optional
	// HH:MM / HH.MM time, "Uhr" tolerated.
	dateTimeRe = regexp.MustCompile(`(?:(?:Montag|Dienstag|Mittwoch|Donnerstag|Freitag|Samstag|Sonntag|Mo|Di|Mi|Do|Fr|Sa|So)\.?,?\s+)?` +
		`(\d{1,2})\.(\d{1,2})\.(\d{4})(?:[,\s]+(?:um\s+)?(\d{1,2})[:.](\d{2})(?:\s*Uhr)?)?`)

	// standalone time token, paired with a date found elsewhere in the text
	timeRe = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*(?:Uhr|h)\b`)

	// end time after "bis" or a dash, combined with the start's calendar day
	endTimeRe = regexp.MustCompile(`(?:bis|–|—|-)\s*(\d{1,2})[:.](\d{2})(?:\s*Uhr)?`)
)

// defaultEventHour is assumed when a date carries no time at all.
const defaultEventHour = 20

// DateRange mines text for a start instant and an optional end instant.
// A date without any time token defaults to 20:00 local; an end time is
// only inferred once a start was resolved. Returns nil, nil on no match.
func DateRange(text string) (*time.Time, *time.Time) {
	m := dateTimeRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	hour, minute := defaultEventHour, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
	} else if tm := timeRe.FindStringSubmatch(text); tm != nil {
		hour, _ = strconv.Atoi(tm[1])
		minute, _ = strconv.Atoi(tm[2])
	}

	start := safeDate(year, month, day, hour, minute)

	var end *time.Time
	if em := endTimeRe.FindStringSubmatch(text); em != nil {
		endHour, _ := strconv.Atoi(em[1])
		endMinute, _ := strconv.Atoi(em[2])
		t := safeDate(year, month, day, endHour, endMinute)
		end = &t
	}

	return &start, end
}

// safeDate builds a local wall-clock instant. Components that do not form a
// valid calendar date fall back to the current instant instead of producing
// a normalized or invalid value; callers treat the result as best-effort.
func safeDate(year, month, day, hour, minute int) time.Time {
	if month < 1 || month > 12 || day < 1 || day > 31 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Now()
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Now()
	}
	return t
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses schema.org date strings. Timezone-naive values are
// interpreted as local wall-clock time. Returns nil when nothing parses.
func ParseInstant(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range isoLayouts {
		var t time.Time
		var err error
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return &t
		}
	}
	return nil
}
