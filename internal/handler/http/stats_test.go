package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/camera-collector/internal/store"
	"github.com/MKhiriev/camera-collector/models"
)

func TestStatsByBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHTTPHandler(t, ctrl)
	router := handler.Init()
	authorize(mocks)

	mocks.stats.EXPECT().CountByBrand(gomock.Any()).Return([]models.BrandCount{
		{Brand: "Nikon", Count: 2},
		{Brand: "Leica", Count: 1},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/stats/brands", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var stats []models.BrandCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	// response order is the aggregation order: count desc, brand asc
	assert.Equal(t, "Nikon", stats[0].Brand)
}

func TestStatsByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHTTPHandler(t, ctrl)
	router := handler.Init()
	authorize(mocks)

	mocks.stats.EXPECT().CountByType(gomock.Any()).Return([]models.TypeCount{
		{Type: "SLR", Count: 3},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/stats/types", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SLR"`)
}

func TestStatsByDecade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHTTPHandler(t, ctrl)
	router := handler.Init()
	authorize(mocks)

	mocks.stats.EXPECT().CountByDecade(gomock.Any()).Return([]models.DecadeCount{
		{Decade: 1950, Count: 1},
		{Decade: 1980, Count: 2},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/stats/decades", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var stats []models.DecadeCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	assert.Equal(t, 1950, stats[0].Decade)
}

func TestStatsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHTTPHandler(t, ctrl)
	router := handler.Init()
	authorize(mocks)

	mocks.stats.EXPECT().ValueSummary(gomock.Any()).
		Return(models.ValueSummary{TotalValue: 2000, AverageValue: 1000, CamerasCounted: 2}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/stats/value", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.ValueSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(2), summary.CamerasCounted)
	assert.InDelta(t, 1000.0, summary.AverageValue, 0.0001)
}

func TestStatsValue_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHTTPHandler(t, ctrl)
	router := handler.Init()
	authorize(mocks)

	mocks.stats.EXPECT().ValueSummary(gomock.Any()).
		Return(models.ValueSummary{}, store.ErrStoreUnavailable)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/stats/value", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
