package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"eventsCrawler/internal/config"
	"eventsCrawler/internal/utils/logger/sl"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Repository struct {
	logger *slog.Logger
	DB     *sqlx.DB
}

// New connects to Postgres and exits the process when the database is
// unreachable at startup.
func New(logger *slog.Logger, cfg *config.Config) *Repository {
	op := "repositories.New()"
	log := logger.With(slog.String("op", op))

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBConfig.Host,
		cfg.DBConfig.Port,
		cfg.DBConfig.User,
		cfg.DBConfig.Password,
		cfg.DBConfig.Name,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("cannot connect to database", sl.Err(err))
		os.Exit(1)
	}

	log.Info("connected to database",
		slog.String("host", cfg.DBConfig.Host),
		slog.String("name", cfg.DBConfig.Name),
	)

	return &Repository{
		logger: logger,
		DB:     db,
	}
}

func (r *Repository) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit repository: %w", ctx.Err())
	default:
		return r.DB.Close()
	}
}
