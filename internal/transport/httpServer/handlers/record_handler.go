package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"eventsCrawler/internal/models/domain"
	"eventsCrawler/internal/transport/httpServer/handlers/dto"
	"eventsCrawler/internal/utils"
	"eventsCrawler/internal/utils/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RecordHandler struct {
	repository RecordRepository
	log        *slog.Logger
}

func NewRecordHandler(log *slog.Logger, repo RecordRepository) *RecordHandler {
	return &RecordHandler{
		repository: repo,
		log:        log,
	}
}

// GetRecords handles GET /api/v1/records?status=...
// Without a status filter all staged records are returned.
func (h *RecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.RecordHandler.GetRecords()"
	log := h.log.With(slog.String("op", op))

	status := r.URL.Query().Get("status")
	ctx := r.Context()

	var records []domain.EventRecord
	var err error

	if status != "" {
		if !isValidStatus(status) {
			h.respondError(log, fmt.Errorf("invalid status filter: %s", status), w, http.StatusBadRequest)
			return
		}
		records, err = h.repository.FindRecordsByStatus(ctx, domain.RecordStatus(status))
	} else {
		records, err = h.repository.ReadAllRecords(ctx)
	}

	if err != nil {
		h.respondError(log, fmt.Errorf("failed to get records: %w", err), w, http.StatusInternalServerError)
		return
	}

	response := dto.MapDomainToRecordResponseList(records)

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// UpdateStatus handles PUT /api/v1/records/{recordId}/status.
func (h *RecordHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.RecordHandler.UpdateStatus()"
	log := h.log.With(slog.String("op", op))

	recordID := chi.URLParam(r, "recordId")
	if recordID == "" {
		h.respondError(log, fmt.Errorf("empty recordId"), w, http.StatusBadRequest)
		return
	}

	parsedID, err := uuid.Parse(recordID)
	if err != nil {
		h.respondError(log, fmt.Errorf("invalid recordId: %w", err), w, http.StatusBadRequest)
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}

	if !isValidStatus(req.Status) {
		h.respondError(log, fmt.Errorf("invalid status: %s", req.Status), w, http.StatusBadRequest)
		return
	}

	log.Info("updating record status",
		slog.String("recordID", recordID),
		slog.String("status", req.Status),
	)

	ctx := r.Context()
	if _, err := h.repository.FindRecordByID(ctx, parsedID); err != nil {
		h.respondError(log, fmt.Errorf("failed to get record: %w", err), w, http.StatusNotFound)
		return
	}

	if err := h.repository.UpdateRecordStatus(ctx, parsedID, req.Status); err != nil {
		h.respondError(log, fmt.Errorf("failed to update record status: %w", err), w, http.StatusInternalServerError)
		return
	}

	if err := utils.Json(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// DeleteRecord handles DELETE /api/v1/records/{recordId}.
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.RecordHandler.DeleteRecord()"
	log := h.log.With(slog.String("op", op))

	recordID := chi.URLParam(r, "recordId")
	parsedID, err := uuid.Parse(recordID)
	if err != nil {
		h.respondError(log, fmt.Errorf("invalid recordId: %w", err), w, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, err := h.repository.FindRecordByID(ctx, parsedID); err != nil {
		h.respondError(log, fmt.Errorf("failed to get record: %w", err), w, http.StatusNotFound)
		return
	}

	log.Info("deleting record", slog.String("recordID", recordID))

	if err := h.repository.DeleteRecord(ctx, parsedID); err != nil {
		h.respondError(log, fmt.Errorf("failed to delete record: %w", err), w, http.StatusInternalServerError)
		return
	}

	if err := utils.Json(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *RecordHandler) respondError(log *slog.Logger, err error, w http.ResponseWriter, status int) {
	log.Error("handler error", sl.Err(err))
	if httpErr := utils.Err(w, status, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}

func isValidStatus(status string) bool {
	switch domain.RecordStatus(status) {
	case domain.RecordStatusNew,
		domain.RecordStatusApproved,
		domain.RecordStatusRejected:
		return true
	default:
		return false
	}
}
