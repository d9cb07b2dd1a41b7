package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"eventsCrawler/internal/models/domain"
	"eventsCrawler/internal/models/repositories"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const recordColumns = `id, source_url, title, short_description, description, starts_at, ends_at,
	address, city, country, image_url, ticket_url, price, tags, status, created_at, updated_at`

func (r *Repository) CreateRecord(ctx context.Context, rec domain.EventRecord) (domain.EventRecord, error) {
	op := "repository.CreateRecord()"

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	repoRec := mapToRepo(rec)

	insertQuery := `INSERT INTO event_records (
		id, source_url, title, short_description, description, starts_at, ends_at,
		address, city, country, image_url, ticket_url, price, tags, status,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`

	_, err := r.DB.ExecContext(ctx, insertQuery,
		repoRec.ID,
		repoRec.SourceURL,
		repoRec.Title,
		repoRec.ShortDescription,
		repoRec.Description,
		repoRec.StartsAt,
		repoRec.EndsAt,
		repoRec.Address,
		repoRec.City,
		repoRec.Country,
		repoRec.ImageURL,
		repoRec.TicketURL,
		repoRec.Price,
		repoRec.Tags,
		repoRec.Status,
	)
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func (r *Repository) FindRecordByID(ctx context.Context, id uuid.UUID) (domain.EventRecord, error) {
	var repoRec repositories.EventRecord
	query := `SELECT ` + recordColumns + ` FROM event_records WHERE id = $1 LIMIT 1`

	err := r.DB.GetContext(ctx, &repoRec, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.EventRecord{}, fmt.Errorf("record not found with id: %s", id)
		}
		return domain.EventRecord{}, fmt.Errorf("error in FindRecordByID(): %w", err)
	}

	return mapToDomain(repoRec), nil
}

func (r *Repository) FindRecordBySourceAndTitle(ctx context.Context, sourceURL, title string) (domain.EventRecord, error) {
	var repoRec repositories.EventRecord
	query := `SELECT ` + recordColumns + ` FROM event_records
	          WHERE source_url = $1 AND lower(trim(title)) = lower(trim($2)) LIMIT 1`

	err := r.DB.GetContext(ctx, &repoRec, query, sourceURL, title)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.EventRecord{}, fmt.Errorf("record not found with source: %s and title: %s", sourceURL, title)
		}
		return domain.EventRecord{}, fmt.Errorf("error in FindRecordBySourceAndTitle(): %w", err)
	}

	return mapToDomain(repoRec), nil
}

func (r *Repository) ReadAllRecords(ctx context.Context) ([]domain.EventRecord, error) {
	var repoRecs []repositories.EventRecord
	query := `SELECT ` + recordColumns + ` FROM event_records ORDER BY starts_at ASC NULLS LAST`

	err := r.DB.SelectContext(ctx, &repoRecs, query)
	if err != nil {
		return nil, fmt.Errorf("error in ReadAllRecords(): %w", err)
	}

	result := make([]domain.EventRecord, len(repoRecs))
	for i, rec := range repoRecs {
		result[i] = mapToDomain(rec)
	}

	return result, nil
}

func (r *Repository) FindRecordsByStatus(ctx context.Context, status domain.RecordStatus) ([]domain.EventRecord, error) {
	var repoRecs []repositories.EventRecord
	query := `SELECT ` + recordColumns + ` FROM event_records WHERE status = $1 ORDER BY starts_at ASC NULLS LAST`

	err := r.DB.SelectContext(ctx, &repoRecs, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("error in FindRecordsByStatus(): %w", err)
	}

	result := make([]domain.EventRecord, len(repoRecs))
	for i, rec := range repoRecs {
		result[i] = mapToDomain(rec)
	}

	return result, nil
}

func (r *Repository) UpdateRecordStatus(ctx context.Context, id uuid.UUID, status string) error {
	updateQuery := `UPDATE event_records SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.DB.ExecContext(ctx, updateQuery, status, id)
	if err != nil {
		return fmt.Errorf("error in UpdateRecordStatus(): %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("record with id %s not found", id)
	}

	return nil
}

func (r *Repository) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	deleteQuery := `DELETE FROM event_records WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return fmt.Errorf("error in DeleteRecord(): %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("record with id %s not found", id)
	}

	return nil
}

func mapToRepo(e domain.EventRecord) repositories.EventRecord {
	return repositories.EventRecord{
		BaseModel: repositories.BaseModel{
			ID: e.ID,
		},
		SourceURL:        e.SourceURL,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		Description:      e.Description,
		StartsAt:         nullTime(e.StartsAt),
		EndsAt:           nullTime(e.EndsAt),
		Address:          e.Address,
		City:             e.City,
		Country:          e.Country,
		ImageURL:         e.ImageURL,
		TicketURL:        e.TicketURL,
		Price:            e.Price,
		Tags:             pq.StringArray(e.Tags),
		Status:           string(e.Status),
	}
}

func mapToDomain(e repositories.EventRecord) domain.EventRecord {
	return domain.EventRecord{
		ID:               e.ID,
		SourceURL:        e.SourceURL,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		Description:      e.Description,
		StartsAt:         timePtr(e.StartsAt),
		EndsAt:           timePtr(e.EndsAt),
		Address:          e.Address,
		City:             e.City,
		Country:          e.Country,
		ImageURL:         e.ImageURL,
		TicketURL:        e.TicketURL,
		Price:            e.Price,
		Tags:             []string(e.Tags),
		Status:           domain.RecordStatus(e.Status),
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
