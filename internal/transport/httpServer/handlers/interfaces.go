package handlers

import (
	"context"

	"eventsCrawler/internal/models/domain"

	"github.com/google/uuid"
)

// Crawler runs the extraction pipeline against one overview URL, streaming
// progress to the given sink.
type Crawler interface {
	Run(ctx context.Context, url string, sink domain.ProgressSink) ([]domain.EventRecord, error)
}

// RecordRepository persists and serves staged event records.
type RecordRepository interface {
	CreateRecord(ctx context.Context, rec domain.EventRecord) (domain.EventRecord, error)
	FindRecordBySourceAndTitle(ctx context.Context, sourceURL, title string) (domain.EventRecord, error)
	FindRecordByID(ctx context.Context, id uuid.UUID) (domain.EventRecord, error)
	ReadAllRecords(ctx context.Context) ([]domain.EventRecord, error)
	FindRecordsByStatus(ctx context.Context, status domain.RecordStatus) ([]domain.EventRecord, error)
	UpdateRecordStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}
