package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/camera-collector/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu      sync.RWMutex
	access  string
	refresh string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetTokens(access, refresh string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.access = strings.TrimSpace(access)
	h.refresh = strings.TrimSpace(refresh)
}

func (h *httpServerAdapter) AccessToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.access
}

func (h *httpServerAdapter) refreshToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.refresh
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var tokens models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokens); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetTokens(tokens.AccessToken, tokens.RefreshToken)
	return tokens, nil
}

func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: h.refreshToken()}).
		Post("/api/auth/refresh")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var tokens models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokens); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode refresh response: %w", err)
	}

	h.SetTokens(tokens.AccessToken, tokens.RefreshToken)
	return tokens, nil
}

func (h *httpServerAdapter) ListCameras(ctx context.Context, filter models.CameraFilter) (models.CameraPage, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(filterQueryParams(filter)).
		Get("/api/cameras")
	if err != nil {
		return models.CameraPage{}, fmt.Errorf("list cameras request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CameraPage{}, err
	}

	var page models.CameraPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.CameraPage{}, fmt.Errorf("decode camera page: %w", err)
	}
	return page, nil
}

func (h *httpServerAdapter) CreateCamera(ctx context.Context, camera models.Camera) (models.Camera, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(camera).
		Post("/api/cameras")
	if err != nil {
		return models.Camera{}, fmt.Errorf("create camera request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Camera{}, err
	}

	var created models.Camera
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Camera{}, fmt.Errorf("decode created camera: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) GetCamera(ctx context.Context, id string) (models.Camera, error) {
	resp, err := h.authedRequest(ctx).Get("/api/cameras/" + id)
	if err != nil {
		return models.Camera{}, fmt.Errorf("get camera request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Camera{}, err
	}

	var camera models.Camera
	if err = json.Unmarshal(resp.Body(), &camera); err != nil {
		return models.Camera{}, fmt.Errorf("decode camera: %w", err)
	}
	return camera, nil
}

func (h *httpServerAdapter) UpdateCamera(ctx context.Context, id string, update models.CameraUpdate) (models.Camera, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch("/api/cameras/" + id)
	if err != nil {
		return models.Camera{}, fmt.Errorf("update camera request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Camera{}, err
	}

	var updated models.Camera
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Camera{}, fmt.Errorf("decode updated camera: %w", err)
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteCamera(ctx context.Context, id string) (bool, error) {
	resp, err := h.authedRequest(ctx).Delete("/api/cameras/" + id)
	if err != nil {
		return false, fmt.Errorf("delete camera request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var outcome struct {
		Deleted bool `json:"deleted"`
	}
	if err = json.Unmarshal(resp.Body(), &outcome); err != nil {
		return false, fmt.Errorf("decode delete outcome: %w", err)
	}
	return outcome.Deleted, nil
}

func (h *httpServerAdapter) CountByBrand(ctx context.Context) ([]models.BrandCount, error) {
	var stats []models.BrandCount
	if err := h.getStats(ctx, "/api/stats/brands", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (h *httpServerAdapter) CountByType(ctx context.Context) ([]models.TypeCount, error) {
	var stats []models.TypeCount
	if err := h.getStats(ctx, "/api/stats/types", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (h *httpServerAdapter) CountByDecade(ctx context.Context) ([]models.DecadeCount, error) {
	var stats []models.DecadeCount
	if err := h.getStats(ctx, "/api/stats/decades", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (h *httpServerAdapter) ValueSummary(ctx context.Context) (models.ValueSummary, error) {
	var summary models.ValueSummary
	if err := h.getStats(ctx, "/api/stats/value", &summary); err != nil {
		return models.ValueSummary{}, err
	}
	return summary, nil
}

func (h *httpServerAdapter) getStats(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("stats request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode stats response %s: %w", path, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.AccessToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// filterQueryParams flattens a CameraFilter into the listing query
// parameters. Zero values are omitted so the server applies its defaults.
func filterQueryParams(filter models.CameraFilter) map[string]string {
	params := map[string]string{}

	if filter.Brand != "" {
		params["brand"] = filter.Brand
	}
	if filter.Type != "" {
		params["type"] = filter.Type
	}
	if filter.FilmFormat != "" {
		params["film_format"] = filter.FilmFormat
	}
	if filter.Condition != "" {
		params["condition"] = string(filter.Condition)
	}
	if filter.YearMin != 0 {
		params["year_min"] = strconv.Itoa(filter.YearMin)
	}
	if filter.YearMax != 0 {
		params["year_max"] = strconv.Itoa(filter.YearMax)
	}
	if filter.SortBy != "" {
		params["sort_by"] = filter.SortBy
	}
	if filter.SortDir != "" {
		params["sort_dir"] = filter.SortDir
	}
	if filter.Offset != 0 {
		params["offset"] = strconv.Itoa(filter.Offset)
	}
	if filter.Limit != 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}

	return params
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, body)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusServiceUnavailable:
		return ErrServerUnavailable
	}
	return fmt.Errorf("http %d: %s", code, body)
}
