package routers

import (
	"eventsCrawler/internal/transport/httpServer/handlers"
	myMiddleware "eventsCrawler/internal/transport/httpServer/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	crawlHandler  *handlers.CrawlHandler
	recordHandler *handlers.RecordHandler
}

func NewRouter(crawlHandler *handlers.CrawlHandler, recordHandler *handlers.RecordHandler) *Router {
	return &Router{
		crawlHandler:  crawlHandler,
		recordHandler: recordHandler,
	}
}

func (r *Router) Mount(mux *chi.Mux) {

	mux.Use(cors.AllowAll().Handler)
	mux.Use(myMiddleware.LoggerMiddleware)
	mux.Use(middleware.Heartbeat("/ping"))

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/v1", func(mux chi.Router) {
			mux.Post("/crawl", r.crawlHandler.RunCrawl)
			mux.Route("/records", func(mux chi.Router) {
				mux.Get("/", r.recordHandler.GetRecords)
				mux.Put("/{recordId}/status", r.recordHandler.UpdateStatus)
				mux.Delete("/{recordId}", r.recordHandler.DeleteRecord)
			})
		})
	})
}
