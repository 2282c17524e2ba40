package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/utils"
	"github.com/MKhiriev/camera-collector/models"
)

// cameraFilterFromQuery translates the listing query parameters into a
// CameraFilter. Numeric parameters that fail to parse are ignored rather
// than rejected; the service applies its own clamping afterwards.
func cameraFilterFromQuery(r *http.Request) models.CameraFilter {
	q := r.URL.Query()

	filter := models.CameraFilter{
		Brand:      q.Get("brand"),
		Type:       q.Get("type"),
		FilmFormat: q.Get("film_format"),
		Condition:  models.Condition(q.Get("condition")),
		SortBy:     q.Get("sort_by"),
		SortDir:    q.Get("sort_dir"),
	}

	if v, err := strconv.Atoi(q.Get("year_min")); err == nil {
		filter.YearMin = v
	}
	if v, err := strconv.Atoi(q.Get("year_max")); err == nil {
		filter.YearMax = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil {
		filter.Offset = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	return filter
}

func (h *Handler) listCameras(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, err := h.services.CameraService.List(ctx, cameraFilterFromQuery(r))
	if err != nil {
		log.Err(err).Msg("camera listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var camera models.Camera
	if err := json.NewDecoder(r.Body).Decode(&camera); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CameraService.Create(ctx, camera)
	if err != nil {
		log.Err(err).Msg("camera creation failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("camera_id", created.ID).Msg("camera created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	camera, err := h.services.CameraService.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("camera lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, camera, http.StatusOK)
}

func (h *Handler) updateCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.CameraUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CameraService.Update(ctx, chi.URLParam(r, "id"), update)
	if err != nil {
		log.Err(err).Msg("camera update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deleted, err := h.services.CameraService.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("camera deletion failed")
		writeError(w, err)
		return
	}

	// deleting an id that is already gone still succeeds; the body
	// reports whether this call removed anything
	utils.WriteJSON(w, map[string]bool{"deleted": deleted}, http.StatusOK)
}
