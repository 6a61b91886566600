package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/eventlog"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// EventsResponse lists audited events, newest first.
type EventsResponse struct {
	Events []eventlog.Event `json:"events"`
}

// HandleRecentEvents returns recent audited events
// @Summary Recent events
// @Description Lists persisted reference and enrichment events, newest first
// @Tags admin
// @Produce json
// @Param run_id query string false "Enrichment run ID"
// @Param type query string false "Event type"
// @Param since query string false "RFC 3339 lower bound"
// @Param limit query int false "Maximum events (default 50, max 500)"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/events [get]
func HandleRecentEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var filter eventlog.EventFilter

		if v := q.Get("run_id"); v != "" {
			filter.RunID = &v
		}
		if v := q.Get("type"); v != "" {
			filter.EventType = &v
		}
		if v := q.Get("since"); v != "" {
			since, err := time.Parse(time.RFC3339, v)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSinceParam)
				return
			}
			filter.Since = &since
		}
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimitParam)
				return
			}
			filter.Limit = n
		}

		events, err := svc.Recent(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgServiceError, "operation", "RecentEvents", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgEventsFailed)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}
		respondJSON(w, http.StatusOK, EventsResponse{Events: events})
	}
}
