// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/camera-collector/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL})
	return a.(*httpServerAdapter)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ansel", req.Username)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{Username: req.Username, Email: req.Email, IsActive: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{
		Username: "ansel", Email: "ansel@example.com", Password: "f/64group",
	})

	require.NoError(t, err)
	assert.Equal(t, "ansel", got.Username)
	assert.True(t, got.IsActive)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"user already exists"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "ansel"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_StoresTokenPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.TokenResponse{
			AccessToken: "access-jwt", RefreshToken: "refresh-jwt", TokenType: "bearer",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	tokens, err := a.Login(context.Background(), models.LoginRequest{Username: "ansel", Password: "f/64group"})

	require.NoError(t, err)
	assert.Equal(t, "access-jwt", tokens.AccessToken)
	assert.Equal(t, "access-jwt", a.AccessToken())
	assert.Equal(t, "refresh-jwt", a.refreshToken())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "ansel", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.AccessToken())
}

func TestRefresh_SendsStoredRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)

		var req models.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old-refresh", req.RefreshToken)

		_ = json.NewEncoder(w).Encode(models.TokenResponse{
			AccessToken: "new-access", RefreshToken: "new-refresh", TokenType: "bearer",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens("old-access", "old-refresh")

	tokens, err := a.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", a.refreshToken())
}

// ── Cameras ─────────────────────────────────────────────────────────────────

func TestListCameras_SendsFilterAndBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cameras", r.URL.Path)
		assert.Equal(t, "Bearer access-jwt", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "Nikon", q.Get("brand"))
		assert.Equal(t, "1950", q.Get("year_min"))
		assert.Equal(t, "40", q.Get("offset"))
		// zero-valued fields stay out of the query string
		assert.False(t, q.Has("type"))

		_ = json.NewEncoder(w).Encode(models.CameraPage{
			Cameras: []models.Camera{{ID: "cam-1", Brand: "Nikon"}},
			Total:   41,
			Offset:  40,
			Limit:   20,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens("access-jwt", "refresh-jwt")

	page, err := a.ListCameras(context.Background(), models.CameraFilter{
		Brand: "Nikon", YearMin: 1950, Offset: 40, Limit: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(41), page.Total)
	require.Len(t, page.Cameras, 1)
	assert.Equal(t, "Nikon", page.Cameras[0].Brand)
}

func TestCreateCamera_ReturnsServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var camera models.Camera
		require.NoError(t, json.NewDecoder(r.Body).Decode(&camera))
		camera.ID = "0198a4c1-0000-7000-8000-000000000001"

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(camera)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateCamera(context.Background(), models.Camera{Brand: "Leica", Model: "M3"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "M3", created.Model)
}

func TestGetCamera_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"camera not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCamera(context.Background(), "missing-id")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCamera_SendsPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/cameras/cam-1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.Camera{ID: "cam-1", Condition: models.ConditionMint})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	condition := models.ConditionMint
	updated, err := a.UpdateCamera(context.Background(), "cam-1", models.CameraUpdate{Condition: &condition})

	require.NoError(t, err)
	assert.Equal(t, models.ConditionMint, updated.Condition)
}

func TestDeleteCamera_ReportsOutcome(t *testing.T) {
	deleted := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]bool{"deleted": deleted})
		deleted = false
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	first, err := a.DeleteCamera(context.Background(), "cam-1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := a.DeleteCamera(context.Background(), "cam-1")
	require.NoError(t, err)
	assert.False(t, second)
}

// ── Stats ───────────────────────────────────────────────────────────────────

func TestCountByBrand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/brands", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.BrandCount{
			{Brand: "Nikon", Count: 2},
			{Brand: "Leica", Count: 1},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	stats, err := a.CountByBrand(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Nikon", stats[0].Brand)
}

func TestValueSummary_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"storage temporarily unavailable"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ValueSummary(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
