package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"eventsCrawler/internal/config"
	"eventsCrawler/internal/crawler/extract"
	"eventsCrawler/internal/models/domain"
	"eventsCrawler/internal/utils/logger/sl"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher downloads one document. Timeouts and header policy live behind
// this interface; a failed fetch of a detail page is treated like any other
// per-page failure.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Options bound the crawl's work and pacing.
type Options struct {
	MaxDetailPages    int
	InterRequestDelay time.Duration
	DefaultCountry    string
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxDetailPages:    cfg.Crawler.MaxDetailPages,
		InterRequestDelay: cfg.Crawler.InterRequestDelay,
		DefaultCountry:    cfg.Crawler.DefaultCountry,
	}
}

// Crawler drives the two-phase overview→detail extraction pipeline.
type Crawler struct {
	logger  *slog.Logger
	fetcher Fetcher
	opts    Options
}

func New(logger *slog.Logger, fetcher Fetcher, opts Options) *Crawler {
	op := "Crawler.New()"
	log := logger.With(slog.String("op", op))
	log.Info("creating crawler",
		slog.Int("maxDetailPages", opts.MaxDetailPages),
		slog.Duration("interRequestDelay", opts.InterRequestDelay),
	)

	return &Crawler{
		logger:  logger,
		fetcher: fetcher,
		opts:    opts,
	}
}

// Run crawls startURL and returns the deduplicated event records. Progress
// events are pushed synchronously and in order to sink; a nil sink discards
// them. Only an unreachable overview page is returned as an error; every
// per-page failure is isolated, reported through the sink and skipped.
// Detail pages are fetched strictly sequentially with a fixed delay between
// requests to rate-limit the target site.
func (c *Crawler) Run(ctx context.Context, startURL string, sink domain.ProgressSink) ([]domain.EventRecord, error) {
	op := "Crawler.Run()"
	log := c.logger.With(slog.String("op", op), slog.String("url", startURL))

	emit := func(ev domain.ProgressEvent) {
		if sink != nil {
			sink(ev)
		}
	}

	emit(domain.ProgressEvent{Phase: domain.PhaseInit, Message: "starting crawl of " + startURL})

	base, err := url.Parse(startURL)
	if err != nil || base.Hostname() == "" {
		emit(domain.ProgressEvent{Phase: domain.PhaseError, Message: "invalid overview url: " + startURL})
		return nil, fmt.Errorf("%s: invalid url %q", op, startURL)
	}

	emit(domain.ProgressEvent{Phase: domain.PhaseOverview, Message: "fetching overview page"})

	html, err := c.fetcher.Fetch(ctx, startURL)
	if err != nil {
		emit(domain.ProgressEvent{Phase: domain.PhaseError, Message: "overview page unreachable: " + err.Error()})
		return nil, fmt.Errorf("%s: fetch overview: %w", op, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		emit(domain.ProgressEvent{Phase: domain.PhaseError, Message: "overview page unparseable: " + err.Error()})
		return nil, fmt.Errorf("%s: parse overview: %w", op, err)
	}

	// Structured data on the overview itself settles the crawl outright.
	if structured := extract.StructuredEvents(doc, base, c.opts.DefaultCountry); len(structured) > 0 {
		records := keepValid(extract.Dedupe(structured))
		log.Info("overview carried structured data", slog.Int("events", len(records)))
		emit(doneEvent(len(records)))
		return records, nil
	}

	links := extract.EventLinks(doc, base)
	log.Debug("classified detail links", slog.Int("count", len(links)))

	if len(links) == 0 {
		records := c.overviewFallback(doc, base, log)
		emit(doneEvent(len(records)))
		return records, nil
	}

	if len(links) > c.opts.MaxDetailPages {
		log.Warn("capping detail links",
			slog.Int("found", len(links)),
			slog.Int("cap", c.opts.MaxDetailPages),
		)
		links = links[:c.opts.MaxDetailPages]
	}

	var records []domain.EventRecord
	total := len(links)

	for i, link := range links {
		emit(domain.ProgressEvent{
			Phase:       domain.PhaseDetail,
			Message:     fmt.Sprintf("fetching page %d of %d", i+1, total),
			Current:     i + 1,
			Total:       total,
			EventsFound: len(records),
		})

		rec, found, err := c.detailRecord(ctx, link)
		switch {
		case err != nil:
			log.Warn("detail page failed", slog.String("link", link), sl.Err(err))
			emit(domain.ProgressEvent{
				Phase:       domain.PhaseDetail,
				Message:     fmt.Sprintf("page %d of %d failed: %s", i+1, total, err),
				Current:     i + 1,
				Total:       total,
				EventsFound: len(records),
			})
		case !found:
			emit(domain.ProgressEvent{
				Phase:       domain.PhaseDetail,
				Message:     fmt.Sprintf("page %d of %d: no event found", i+1, total),
				Current:     i + 1,
				Total:       total,
				EventsFound: len(records),
			})
		default:
			records = append(records, rec)
			emit(domain.ProgressEvent{
				Phase:       domain.PhaseDetail,
				Message:     "found: " + rec.Title,
				Current:     i + 1,
				Total:       total,
				EventTitle:  rec.Title,
				EventsFound: len(records),
			})
		}

		// politeness delay between requests, not after the last one
		if i < total-1 && c.opts.InterRequestDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(c.opts.InterRequestDelay):
			}
		}
	}

	records = keepValid(extract.Dedupe(records))
	log.Info("crawl finished", slog.Int("pages", total), slog.Int("events", len(records)))
	emit(doneEvent(len(records)))

	return records, nil
}

// detailRecord fetches and extracts a single detail page.
func (c *Crawler) detailRecord(ctx context.Context, link string) (domain.EventRecord, bool, error) {
	html, err := c.fetcher.Fetch(ctx, link)
	if err != nil {
		return domain.EventRecord{}, false, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.EventRecord{}, false, err
	}

	pageURL, err := url.Parse(link)
	if err != nil {
		return domain.EventRecord{}, false, err
	}

	rec, ok := extract.DetailPage(doc, pageURL, c.opts.DefaultCountry)
	return rec, ok, nil
}

// overviewFallback runs the card heuristic and, failing that, the page-meta
// extractor, on the overview page itself.
func (c *Crawler) overviewFallback(doc *goquery.Document, base *url.URL, log *slog.Logger) []domain.EventRecord {
	records := extract.OverviewCards(doc, base, c.opts.DefaultCountry)
	if len(records) > 0 {
		log.Info("no detail links, extracted overview cards", slog.Int("events", len(records)))
	} else if rec, ok := extract.PageMeta(doc, base, c.opts.DefaultCountry); ok {
		log.Info("no detail links or cards, using page metadata")
		records = []domain.EventRecord{rec}
	}
	return keepValid(extract.Dedupe(records))
}

func doneEvent(found int) domain.ProgressEvent {
	return domain.ProgressEvent{
		Phase:       domain.PhaseDone,
		Message:     fmt.Sprintf("crawl finished, %d events found", found),
		EventsFound: found,
	}
}

func keepValid(records []domain.EventRecord) []domain.EventRecord {
	result := make([]domain.EventRecord, 0, len(records))
	for _, rec := range records {
		if rec.Valid() {
			result = append(result, rec)
		}
	}
	return result
}
