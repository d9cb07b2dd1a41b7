package extract

import (
	"strings"

	"eventsCrawler/internal/models/domain"
)

// Dedupe collapses records sharing a title, keeping the first occurrence.
// Titles are compared case-insensitively with surrounding whitespace
// ignored. Running Dedupe on its own output is a no-op.
func Dedupe(records []domain.EventRecord) []domain.EventRecord {
	seen := make(map[string]bool, len(records))
	result := make([]domain.EventRecord, 0, len(records))

	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.Title))
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, rec)
	}

	return result
}
