package dto

import (
	"time"

	"eventsCrawler/internal/models/domain"

	"github.com/google/uuid"
)

// CrawlRequest — body of POST /api/v1/crawl.
type CrawlRequest struct {
	URL string `json:"url"`
}

// RecordResponse — one staged event record.
type RecordResponse struct {
	ID               uuid.UUID  `json:"id"`
	SourceURL        string     `json:"source_url"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	Description      string     `json:"description"`
	StartsAt         *time.Time `json:"starts_at"`
	EndsAt           *time.Time `json:"ends_at"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	Country          string     `json:"country"`
	ImageURL         string     `json:"image_url"`
	TicketURL        string     `json:"ticket_url"`
	Price            string     `json:"price"`
	Tags             []string   `json:"tags"`
	Status           string     `json:"status"`
}

// UpdateStatusRequest — body of PUT /api/v1/records/{recordId}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func MapDomainToRecordResponse(e domain.EventRecord) RecordResponse {
	return RecordResponse{
		ID:               e.ID,
		SourceURL:        e.SourceURL,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		Description:      e.Description,
		StartsAt:         e.StartsAt,
		EndsAt:           e.EndsAt,
		Address:          e.Address,
		City:             e.City,
		Country:          e.Country,
		ImageURL:         e.ImageURL,
		TicketURL:        e.TicketURL,
		Price:            e.Price,
		Tags:             e.Tags,
		Status:           string(e.Status),
	}
}

func MapDomainToRecordResponseList(records []domain.EventRecord) []RecordResponse {
	result := make([]RecordResponse, len(records))
	for i, e := range records {
		result[i] = MapDomainToRecordResponse(e)
	}
	return result
}
