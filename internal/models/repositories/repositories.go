package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BaseModel struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type EventRecord struct {
	BaseModel
	SourceURL        string         `db:"source_url"`
	Title            string         `db:"title"`
	ShortDescription string         `db:"short_description"`
	Description      string         `db:"description"`
	StartsAt         sql.NullTime   `db:"starts_at"`
	EndsAt           sql.NullTime   `db:"ends_at"`
	Address          string         `db:"address"`
	City             string         `db:"city"`
	Country          string         `db:"country"`
	ImageURL         string         `db:"image_url"`
	TicketURL        string         `db:"ticket_url"`
	Price            string         `db:"price"`
	Tags             pq.StringArray `db:"tags"`
	Status           string         `db:"status"`
}
