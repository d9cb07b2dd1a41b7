package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"eventsCrawler/internal/models/domain"
	"eventsCrawler/internal/transport/httpServer/handlers/dto"
	"eventsCrawler/internal/utils"
	"eventsCrawler/internal/utils/logger/sl"

	"github.com/google/uuid"
)

type CrawlHandler struct {
	crawler    Crawler
	repository RecordRepository
	log        *slog.Logger
}

func NewCrawlHandler(log *slog.Logger, crawler Crawler, repo RecordRepository) *CrawlHandler {
	return &CrawlHandler{
		crawler:    crawler,
		repository: repo,
		log:        log,
	}
}

// RunCrawl handles POST /api/v1/crawl. Progress events are relayed to the
// client as server-sent events while the crawl runs; the terminating
// "result" event carries the extracted records. Successfully extracted
// records are staged for moderation before the stream closes.
func (h *CrawlHandler) RunCrawl(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.CrawlHandler.RunCrawl()"
	log := h.log.With(slog.String("op", op))

	var req dto.CrawlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || parsed.Hostname() == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		h.respondError(log, fmt.Errorf("invalid crawl url: %q", req.URL), w, http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.respondError(log, fmt.Errorf("streaming unsupported"), w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// The sink writes each progress event out as soon as it arrives; the
	// pipeline itself buffers nothing.
	sink := func(ev domain.ProgressEvent) {
		payload, err := json.Marshal(ev)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	log.Info("starting crawl", slog.String("url", req.URL))

	records, err := h.crawler.Run(r.Context(), req.URL, sink)
	if err != nil {
		// the error phase was already streamed to the client
		log.Error("crawl failed", sl.Err(err))
		return
	}

	staged := h.stageRecords(r, log, records)
	log.Info("crawl done", slog.Int("eventsFound", len(records)), slog.Int("staged", staged))

	payload, err := json.Marshal(dto.MapDomainToRecordResponseList(records))
	if err != nil {
		log.Error("cannot encode result", sl.Err(err))
		return
	}
	fmt.Fprintf(w, "event: result\ndata: %s\n\n", payload)
	flusher.Flush()
}

func (h *CrawlHandler) stageRecords(r *http.Request, log *slog.Logger, records []domain.EventRecord) int {
	ctx := r.Context()
	staged := 0

	for i := range records {
		rec := records[i]

		existing, err := h.repository.FindRecordBySourceAndTitle(ctx, rec.SourceURL, rec.Title)
		if err == nil && existing.ID != uuid.Nil {
			continue
		}

		rec.ID = uuid.New()
		rec.Status = domain.RecordStatusNew
		if _, err := h.repository.CreateRecord(ctx, rec); err != nil {
			log.Error("failed to stage record", slog.String("title", rec.Title), sl.Err(err))
			continue
		}
		records[i] = rec
		staged++
	}

	return staged
}

func (h *CrawlHandler) respondError(log *slog.Logger, err error, w http.ResponseWriter, status int) {
	log.Error("handler error", sl.Err(err))
	if httpErr := utils.Err(w, status, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}
