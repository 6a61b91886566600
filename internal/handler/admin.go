package handler

import (
	"net/http"

	"github.com/osse101/GlobePalette_Go/internal/globe"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// InvalidateSourceAdmin labels invalidations triggered over HTTP.
const InvalidateSourceAdmin = "admin"

// HandleInvalidateReference marks the reference set stale
// @Summary Invalidate reference data
// @Description Forces the next lookup to refetch the country reference set; the old set stays available as a stale fallback
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/reference/invalidate [post]
func HandleInvalidateReference(svc globe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.InvalidateReference(r.Context(), InvalidateSourceAdmin)
		logger.FromContext(r.Context()).Info(LogMsgReferenceReset)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Reference set invalidated"})
	}
}

// HandleCacheStats reports reference and palette cache counters
// @Summary Cache statistics
// @Tags admin
// @Produce json
// @Success 200 {object} globe.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func HandleCacheStats(svc globe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CacheStats())
	}
}
