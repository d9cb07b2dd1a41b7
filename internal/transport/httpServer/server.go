package httpServer

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"eventsCrawler/internal/config"
	"eventsCrawler/internal/transport/httpServer/routers"
	"eventsCrawler/internal/utils/logger/sl"

	"github.com/go-chi/chi/v5"
)

type HttpServer struct {
	logger *slog.Logger
	server *http.Server
}

func NewHttpServer(logger *slog.Logger, router *routers.Router, cfg *config.Config) *HttpServer {
	op := "httpServer.NewHttpServer()"
	log := logger.With(slog.String("op", op))

	mux := chi.NewRouter()
	router.Mount(mux)

	addr := net.JoinHostPort(cfg.HttpServer.Address, cfg.HttpServer.Port)
	log.Info("creating http server", slog.String("addr", addr))

	return &HttpServer{
		logger: logger,
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HttpServer.Timeout,
		},
	}
}

func (s *HttpServer) Listen() {
	op := "HttpServer.Listen()"
	log := s.logger.With(slog.String("op", op))

	log.Info("http server listening", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server stopped", sl.Err(err))
	}
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
