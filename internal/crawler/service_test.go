package crawler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"eventsCrawler/internal/config"
	"eventsCrawler/internal/models/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoRecord = errors.New("record not found")

type memoryRepo struct {
	mu      sync.Mutex
	created []domain.EventRecord
}

func (r *memoryRepo) CreateRecord(_ context.Context, rec domain.EventRecord) (domain.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, rec)
	return rec, nil
}

func (r *memoryRepo) FindRecordBySourceAndTitle(_ context.Context, sourceURL, title string) (domain.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.created {
		if rec.SourceURL == sourceURL && rec.Title == title {
			return rec, nil
		}
	}
	return domain.EventRecord{}, errNoRecord
}

type memoryNotifier struct {
	mu     sync.Mutex
	calls  int
	staged int
}

func (n *memoryNotifier) CrawlFinished(_ string, staged int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.staged += staged
	return nil
}

func serviceFixture(fetcher *stubFetcher, notifier Notifier) (*Service, *memoryRepo) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Crawler: config.CrawlerConfig{
			MaxDetailPages: 30,
			DefaultCountry: "Deutschland",
			JobBufferSize:  4,
			WorkersCount:   1,
		},
	}
	repo := &memoryRepo{}
	core := New(log, fetcher, OptionsFromConfig(cfg))
	return NewService(log, cfg, core, repo, notifier), repo
}

func TestService_RunsQueuedJobAndStagesRecords(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]string{
			"https://example.com/": `<html><head>
				<script type="application/ld+json">
				{"@type":"Event","name":"Jazzabend"}
				</script></head><body></body></html>`,
		},
	}
	notifier := &memoryNotifier{}
	svc, repo := serviceFixture(fetcher, notifier)

	go svc.Start()

	done, err := svc.AddJob("https://example.com/")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not complete")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Jazzabend", repo.created[0].Title)
	assert.NotEqual(t, uuid.Nil, repo.created[0].ID)
	assert.Equal(t, domain.RecordStatusNew, repo.created[0].Status)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, 1, notifier.staged)

	require.NoError(t, svc.Shutdown(context.Background()))
}

func TestService_AddJobAfterShutdown(t *testing.T) {
	svc, _ := serviceFixture(&stubFetcher{}, nil)
	require.NoError(t, svc.Shutdown(context.Background()))

	_, err := svc.AddJob("https://example.com/")
	assert.Error(t, err)
}

func TestService_AddJobBufferFull(t *testing.T) {
	svc, _ := serviceFixture(&stubFetcher{}, nil)
	// no workers running, so jobs pile up in the buffer
	for i := 0; i < 4; i++ {
		_, err := svc.AddJob("https://example.com/")
		require.NoError(t, err)
	}

	_, err := svc.AddJob("https://example.com/")
	assert.Error(t, err)
}
