package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"eventsCrawler/internal/config"
	"eventsCrawler/internal/models/domain"
	"eventsCrawler/internal/utils/logger/sl"

	"github.com/google/uuid"
)

// Repository stages extracted records for moderation.
type Repository interface {
	CreateRecord(ctx context.Context, rec domain.EventRecord) (domain.EventRecord, error)
	FindRecordBySourceAndTitle(ctx context.Context, sourceURL, title string) (domain.EventRecord, error)
}

// Notifier is told when a background crawl staged new records.
type Notifier interface {
	CrawlFinished(sourceURL string, staged int) error
}

// Job represents one queued crawl.
type Job struct {
	requestID uuid.UUID
	url       string
	Done      chan struct{} // closed when the crawl completed
}

// Service runs crawls in the background off a job queue and stages the
// results. The synchronous entry point for callers that want progress
// streamed stays Crawler.Run.
type Service struct {
	logger          *slog.Logger
	cfg             *config.Config
	crawler         *Crawler
	repository      Repository
	notifier        Notifier // nil when notifications are disabled
	jobs            chan Job
	shutdownChannel chan struct{}
	wg              *sync.WaitGroup
}

func NewService(
	logger *slog.Logger,
	cfg *config.Config,
	crawler *Crawler,
	repository Repository,
	notifier Notifier,
) *Service {
	op := "crawler.NewService()"
	log := logger.With(slog.String("op", op))
	log.Info("creating crawl service")

	return &Service{
		logger:          logger,
		cfg:             cfg,
		crawler:         crawler,
		repository:      repository,
		notifier:        notifier,
		jobs:            make(chan Job, cfg.Crawler.JobBufferSize),
		shutdownChannel: make(chan struct{}),
		wg:              &sync.WaitGroup{},
	}
}

// Start launches the workers. Each worker crawls one site at a time; the
// per-site request pacing lives in Crawler.Run.
func (s *Service) Start() {
	op := "Service.Start()"
	log := s.logger.With(slog.String("op", op))

	for i := 0; i < s.cfg.Crawler.WorkersCount; i++ {
		s.wg.Add(1)
		go s.handleJob(i)
	}
	log.Info("crawl service started", slog.Int("workers", s.cfg.Crawler.WorkersCount))

	s.wg.Wait()
}

// AddJob queues a crawl of url and returns a channel closed on completion.
func (s *Service) AddJob(url string) (chan struct{}, error) {
	newJob := Job{
		requestID: uuid.New(),
		url:       url,
		Done:      make(chan struct{}),
	}
	select {
	case <-s.shutdownChannel:
		return nil, fmt.Errorf("service is shutting down")
	default:
		select {
		case s.jobs <- newJob:
			return newJob.Done, nil
		default:
			return nil, fmt.Errorf("job buffer is full")
		}
	}
}

func (s *Service) handleJob(id int) {
	defer s.wg.Done()
	op := "Service.handleJob()"
	log := s.logger.With(
		slog.String("op", op),
		slog.Int("workerId", id),
	)

	log.Info("start crawl job handler")

	for {
		select {
		case <-s.shutdownChannel:
			return
		case job, ok := <-s.jobs:
			if !ok {
				log.Error("jobs channel closed")
				return
			}

			joblog := log.With(
				slog.String("requestID", job.requestID.String()),
				slog.String("url", job.url),
			)

			ctx := context.Background()

			// Background jobs log progress instead of streaming it.
			sink := func(ev domain.ProgressEvent) {
				joblog.Debug("progress", slog.String("phase", string(ev.Phase)), slog.String("message", ev.Message))
			}

			records, err := s.crawler.Run(ctx, job.url, sink)
			if err != nil {
				joblog.Error("crawl failed", sl.Err(err))
				close(job.Done)
				continue
			}

			staged := s.stageRecords(ctx, joblog, records)

			if s.notifier != nil && staged > 0 {
				if err := s.notifier.CrawlFinished(job.url, staged); err != nil {
					joblog.Warn("notification failed", sl.Err(err))
				}
			}

			close(job.Done)
			joblog.Info("crawl completed", slog.Int("eventsFound", len(records)), slog.Int("staged", staged))
		}
	}
}

// stageRecords persists new records with status NEW, skipping ones already
// staged from the same source with the same title.
func (s *Service) stageRecords(ctx context.Context, log *slog.Logger, records []domain.EventRecord) int {
	staged := 0
	for _, rec := range records {
		existing, err := s.repository.FindRecordBySourceAndTitle(ctx, rec.SourceURL, rec.Title)
		if err == nil && existing.ID != uuid.Nil {
			log.Debug("record already staged", slog.String("title", rec.Title))
			continue
		}

		rec.ID = uuid.New()
		rec.Status = domain.RecordStatusNew
		if _, err := s.repository.CreateRecord(ctx, rec); err != nil {
			log.Error("failed to stage record", slog.String("title", rec.Title), sl.Err(err))
			continue
		}
		staged++
	}
	return staged
}

// Shutdown stops the workers. Pending jobs are dropped.
func (s *Service) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit crawl service: %w", ctx.Err())
	default:
		close(s.shutdownChannel)
		close(s.jobs)
		return nil
	}
}
