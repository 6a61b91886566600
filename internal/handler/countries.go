package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/globe"
	"github.com/osse101/GlobePalette_Go/internal/logger"
	"github.com/osse101/GlobePalette_Go/internal/palette"
)

// Query and path parameters
const (
	ParamName     = "name"
	ParamCode     = "code"
	ParamBase     = "base"
	ParamFallback = "fallback"
)

// ResolveResponse is the body of a successful name resolution
type ResolveResponse struct {
	Query    string         `json:"query"`
	Country  domain.Country `json:"country"`
	Strategy string         `json:"strategy"`
	Stale    bool           `json:"stale"`
}

// PaletteResponse is a country together with its display palette
type PaletteResponse struct {
	Country domain.Country  `json:"country"`
	Palette palette.Display `json:"palette"`
}

// HandleResolveCountry resolves a free-form place name
// @Summary Resolve a country name
// @Description Matches a loosely formatted name (map labels, old names, alternate spellings) to a country record
// @Tags countries
// @Produce json
// @Param name query string true "Place name"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Reference data unavailable"
// @Router /api/v1/countries/resolve [get]
func HandleResolveCountry(svc globe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, ParamName)
		if !ok {
			return
		}

		res, found, err := svc.ResolveCountryByName(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, ErrMsgResolveFailed, err)
			return
		}
		if !found {
			logger.FromContext(r.Context()).Debug(ErrMsgCountryNotFound, "name", name)
			respondError(w, http.StatusNotFound, ErrMsgCountryNotFound)
			return
		}

		respondJSON(w, http.StatusOK, ResolveResponse{
			Query:    name,
			Country:  res.Country,
			Strategy: res.Strategy,
			Stale:    res.Stale,
		})
	}
}

// HandleGetPalette builds the display palette for a country code
// @Summary Get a country palette
// @Description Derives base, accent and shade colors for a country from its continent and flag
// @Tags countries
// @Produce json
// @Param code path string true "ISO alpha-2 or alpha-3 code"
// @Param base query string false "Base color override (#RRGGBB)"
// @Param fallback query string false "Accent fallback when the flag yields no color (#RRGGBB)"
// @Success 200 {object} PaletteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Reference data unavailable"
// @Router /api/v1/countries/{code}/palette [get]
func HandleGetPalette(svc globe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(chi.URLParam(r, ParamCode))
		if err := GetValidator().ValidateVar(code, "required,countrycode"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCodeParam)
			return
		}

		base, ok := GetOptionalColorParam(r, w, ParamBase)
		if !ok {
			return
		}
		fallback, ok := GetOptionalColorParam(r, w, ParamFallback)
		if !ok {
			return
		}

		country, display, err := svc.GetPaletteByCode(r.Context(), code, palette.Options{
			BaseColor:      base,
			FallbackAccent: fallback,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgPaletteFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, PaletteResponse{Country: country, Palette: display})
	}
}
