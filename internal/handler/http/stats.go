package http

import (
	"net/http"

	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/utils"
)

func (h *Handler) statsByBrand(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.CountByBrand(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("brand statistics failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) statsByType(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.CountByType(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("type statistics failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) statsByDecade(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.CountByDecade(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("decade statistics failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) statsValue(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.StatsService.ValueSummary(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("value summary failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
