package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"eventsCrawler/internal/config"
	"eventsCrawler/internal/crawler"
	"eventsCrawler/internal/fetcher"
	"eventsCrawler/internal/graceful"
	"eventsCrawler/internal/notify"
	"eventsCrawler/internal/repositories"
	"eventsCrawler/internal/transport/httpServer"
	"eventsCrawler/internal/transport/httpServer/handlers"
	"eventsCrawler/internal/transport/httpServer/routers"
	"eventsCrawler/internal/utils/logger/handlers/slogpretty"
	"eventsCrawler/internal/utils/logger/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var Version = "0.1"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info(
		"starting events crawler",
		slog.String("env", cfg.Env),
		slog.String("version", Version),
	)

	repositoryService := repositories.New(log, cfg)
	fetcherService := fetcher.New(log, cfg)
	crawlerCore := crawler.New(log, fetcherService, crawler.OptionsFromConfig(cfg))

	var notifier crawler.Notifier
	if cfg.Notify.Enabled {
		tg, err := notify.New(log, cfg)
		if err != nil {
			log.Error("telegram notifier unavailable", sl.Err(err))
		} else {
			notifier = tg
		}
	}

	crawlService := crawler.NewService(log, cfg, crawlerCore, repositoryService, notifier)

	// HTTP Server
	crawlHandler := handlers.NewCrawlHandler(log, crawlerCore, repositoryService)
	recordHandler := handlers.NewRecordHandler(log, repositoryService)
	router := routers.NewRouter(crawlHandler, recordHandler)
	httpSrv := httpServer.NewHttpServer(log, router, cfg)

	maxSecond := 15 * time.Second
	waitShutdown := graceful.GracefulShutdown(
		context.Background(),
		maxSecond,
		map[string]graceful.Operation{
			"Crawl service": func(ctx context.Context) error {
				return crawlService.Shutdown(ctx)
			},
			"Repository service": func(ctx context.Context) error {
				return repositoryService.Shutdown(ctx)
			},
			"HTTP server": func(ctx context.Context) error {
				return httpSrv.Shutdown(ctx)
			},
		},
		log,
	)

	go crawlService.Start()
	go httpSrv.Listen()

	// queue the configured organizer sites for a background crawl
	for _, site := range cfg.Crawler.Sites {
		if _, err := crawlService.AddJob(site.URL); err != nil {
			log.Error("cannot queue site crawl",
				slog.String("site", site.Name),
				sl.Err(err),
			)
		}
	}

	<-waitShutdown
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog(slog.LevelDebug)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = setupPrettySlog(slog.LevelInfo)
	default: // If env config is invalid, set prod settings by default due to security
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
