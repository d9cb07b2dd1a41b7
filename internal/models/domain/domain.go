package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the moderation status of a staged event record.
type RecordStatus string

const (
	// RecordStatusNew — record was staged right after a crawl
	RecordStatusNew RecordStatus = "NEW"
	// RecordStatusApproved — record passed moderation
	RecordStatusApproved RecordStatus = "APPROVED"
	// RecordStatusRejected — record was rejected during moderation
	RecordStatusRejected RecordStatus = "REJECTED"
)

// EventRecord is one event extracted from an external organizer page.
// URL fields are always absolute; relative hrefs are resolved against the
// page they were found on before a record is built. ID and Status stay zero
// inside the extraction pipeline and are assigned when the record is staged.
type EventRecord struct {
	ID               uuid.UUID
	SourceURL        string
	Title            string
	ShortDescription string // capped at 200 characters
	Description      string
	StartsAt         *time.Time
	EndsAt           *time.Time
	Address          string
	City             string
	Country          string
	ImageURL         string
	TicketURL        string
	Price            string // free text, e.g. "VVK 15 EUR" or "Eintritt frei"
	Tags             []string
	Status           RecordStatus
}

// Valid reports whether the record is worth keeping. Records with a missing
// or too-short title are discarded by the pipeline.
func (e EventRecord) Valid() bool {
	return len([]rune(strings.TrimSpace(e.Title))) >= 3
}

// Phase of a running crawl, reported through progress events.
type Phase string

const (
	PhaseInit     Phase = "init"
	PhaseOverview Phase = "overview"
	PhaseDetail   Phase = "detail"
	PhaseDone     Phase = "done"
	PhaseError    Phase = "error"
)

// ProgressEvent is a transient status notification describing crawl state.
// Events are delivered synchronously and in order to the caller's sink and
// are never persisted.
type ProgressEvent struct {
	Phase       Phase  `json:"phase"`
	Message     string `json:"message"`
	Current     int    `json:"current,omitempty"` // 1-based page counter, detail phase only
	Total       int    `json:"total,omitempty"`
	EventTitle  string `json:"eventTitle,omitempty"`
	EventsFound int    `json:"eventsFound,omitempty"`
}

// ProgressSink receives progress events during one crawl invocation.
type ProgressSink func(ProgressEvent)
