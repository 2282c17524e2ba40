package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/camera-collector/internal/service"
	"github.com/MKhiriev/camera-collector/internal/utils"
	"github.com/MKhiriev/camera-collector/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestHTTPHandler(t, ctrl)
	router := handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/cameras", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestHTTPHandler(t, ctrl)
	router := handler.Init()

	for _, header := range []string{"Bearer", "Bearer ", "abc.def.ghi extra parts here"} {
		req := httptest.NewRequest(http.MethodGet, "/api/cameras", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHTTPHandler(t, ctrl)
	router := handler.Init()

	mocks.auth.EXPECT().ValidateAccess(gomock.Any(), "bad-token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/api/cameras", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// the reason for rejection must not leak to the client
	assert.NotContains(t, rec.Body.String(), "expired")
}

func TestAuthMiddleware_PutsUserIDIntoContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHTTPHandler(t, ctrl)

	mocks.auth.EXPECT().ValidateAccess(gomock.Any(), "good-token").
		Return(models.Token{UserID: 42, TokenClaims: models.TokenClaims{Kind: models.AccessToken}}, nil)

	var gotUserID any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(utils.UserIDCtxKey)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cameras", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}
