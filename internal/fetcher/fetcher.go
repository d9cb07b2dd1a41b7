package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventsCrawler/internal/config"

	"github.com/go-resty/resty/v2"
)

// ErrStatus marks a response with a non-2xx status code.
var ErrStatus = errors.New("unexpected http status")

// Fetcher downloads documents over HTTP. It identifies itself with a
// descriptive user agent, sends a fixed language preference and follows
// redirects. Every request carries the configured timeout.
type Fetcher struct {
	logger *slog.Logger
	client *resty.Client
}

func New(logger *slog.Logger, cfg *config.Config) *Fetcher {
	op := "Fetcher.New()"
	log := logger.With(slog.String("op", op))

	client := resty.New().
		SetTimeout(cfg.Crawler.RequestTimeout).
		SetHeader("User-Agent", cfg.Crawler.UserAgent).
		SetHeader("Accept-Language", cfg.Crawler.AcceptLanguage)

	log.Info("creating document fetcher", slog.Duration("timeout", cfg.Crawler.RequestTimeout))

	return &Fetcher{
		logger: logger,
		client: client,
	}
}

// Fetch returns the raw HTML of url. Network errors, timeouts and non-2xx
// statuses are all returned as errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	op := "Fetcher.Fetch()"

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%s: %w: %s on %s", op, ErrStatus, resp.Status(), url)
	}

	return resp.String(), nil
}
