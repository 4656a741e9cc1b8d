package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/napoleonai/waitlist-api/internal/entity"
	"github.com/napoleonai/waitlist-api/internal/infra/http/middleware"
)

const (
	maxAnalyticsBodyBytes = 256 * 1024
	maxAnalyticsBatchSize = 1000
)

type AnalyticsHandler struct {
	Repo entity.AnalyticsRepositoryInterface
}

func NewAnalyticsHandler(repo entity.AnalyticsRepositoryInterface) *AnalyticsHandler {
	return &AnalyticsHandler{Repo: repo}
}

// HandleIngest receives behavioral events from the landing page
// (POST /api/analytics/events). The client batches scroll milestones, CTA
// clicks and session events and flushes them as a JSON array; a single
// object is accepted too.
func (h *AnalyticsHandler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyticsBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "failed to read request body")
		return
	}

	events, err := decodeEvents(body)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if len(events) == 0 {
		writeErrorResponse(w, http.StatusBadRequest, "EMPTY_BATCH", "no events provided")
		return
	}
	if len(events) > maxAnalyticsBatchSize {
		writeErrorResponse(w, http.StatusBadRequest, "BATCH_TOO_LARGE", "batch size exceeds maximum of 1000 events")
		return
	}

	for i := range events {
		if events[i].SessionID == "" || events[i].EventType == "" {
			writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "session_id and event_type are required")
			return
		}
		events[i].ConversionEvent = events[i].ConversionEvent || entity.IsConversionEvent(events[i].EventType)
	}

	if len(events) == 1 {
		err = h.Repo.InsertEvent(r.Context(), &events[0])
	} else {
		err = h.Repo.InsertEventsBatch(r.Context(), events)
	}
	if err != nil {
		log.Printf("failed to store analytics events: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to store events")
		return
	}

	middleware.RecordAnalyticsEvents(len(events))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "ok",
		"events_processed": len(events),
	})
}

func decodeEvents(body []byte) ([]entity.AnalyticsEvent, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var events []entity.AnalyticsEvent
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, err
		}
		return events, nil
	}

	var event entity.AnalyticsEvent
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return nil, err
	}
	return []entity.AnalyticsEvent{event}, nil
}
