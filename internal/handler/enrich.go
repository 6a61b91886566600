package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/enrichment"
	"github.com/osse101/GlobePalette_Go/internal/globe"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// EnrichFeature is one boundary feature to color
type EnrichFeature struct {
	Code      string `json:"code" validate:"required,countrycode"`
	Name      string `json:"name,omitempty" validate:"max=200"`
	BaseColor string `json:"base_color" validate:"required,color"`
}

// EnrichRequest is the body of POST /api/v1/enrich
type EnrichRequest struct {
	Features []EnrichFeature `json:"features" validate:"required,min=1,max=5000,dive"`
}

// EnrichResponse carries the colored features in request order
type EnrichResponse struct {
	Report   enrichment.Report `json:"report"`
	Features []*domain.Feature `json:"features"`
}

// HandleEnrich colors a batch of features. Per-slice progress is relayed to
// SSE subscribers of the run while the request is in flight. An unavailable
// reference set is not an error here: features keep their base colors, so
// the only failures are a cancelled or timed out run.
// @Summary Enrich feature colors
// @Description Sets each feature's color to its country's flag accent, or to its base color when unknown
// @Tags enrichment
// @Accept json
// @Produce json
// @Param request body EnrichRequest true "Features"
// @Success 200 {object} EnrichResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse "Run cancelled"
// @Failure 504 {object} ErrorResponse "Run timed out"
// @Router /api/v1/enrich [post]
func HandleEnrich(svc globe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EnrichRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Enrich"); err != nil {
			return
		}

		features := make([]*domain.Feature, len(req.Features))
		for i, f := range req.Features {
			features[i] = domain.NewFeature(strings.ToUpper(f.Code), f.Name, colormath.HexToRGB(f.BaseColor))
		}

		report, err := svc.EnrichFeatureColors(r.Context(), features, nil)
		if err != nil {
			respondServiceError(w, r, ErrMsgEnrichFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgEnrichRunFinished,
			"run_id", report.RunID,
			"features", report.Total,
			"fallbacks", report.Fallbacks)

		respondJSON(w, http.StatusOK, EnrichResponse{Report: report, Features: features})
	}
}
