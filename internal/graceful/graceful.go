package graceful

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"eventsCrawler/internal/utils/logger/sl"
)

// Operation is a cleanup step executed during shutdown.
type Operation func(ctx context.Context) error

// GracefulShutdown waits for SIGINT/SIGTERM, then runs every operation
// concurrently under a shared timeout. The returned channel is closed once
// all operations finished; if the timeout expires first the process exits.
func GracefulShutdown(ctx context.Context, timeout time.Duration, operations map[string]Operation, log *slog.Logger) <-chan struct{} {
	wait := make(chan struct{})

	go func() {
		s := make(chan os.Signal, 1)
		signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
		<-s

		log.Info("shutting down")

		timeoutFunc := time.AfterFunc(timeout, func() {
			log.Error("shutdown timed out, forcing exit", slog.Duration("timeout", timeout))
			os.Exit(1)
		})
		defer timeoutFunc.Stop()

		var wg sync.WaitGroup
		for key, op := range operations {
			wg.Add(1)
			go func(key string, op Operation) {
				defer wg.Done()

				log.Info("cleaning up", slog.String("operation", key))
				if err := op(ctx); err != nil {
					log.Error("cleanup failed", slog.String("operation", key), sl.Err(err))
					return
				}
				log.Info("cleanup done", slog.String("operation", key))
			}(key, op)
		}
		wg.Wait()

		close(wait)
	}()

	return wait
}
