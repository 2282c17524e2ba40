package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/camera-collector/internal/service"
	"github.com/MKhiriev/camera-collector/internal/store"
	"github.com/MKhiriev/camera-collector/internal/utils"
)

// errorStatusMap translates the sentinel errors of the service and store
// layers into HTTP status codes. A storage outage maps to 503 rather than
// 500 so that callers and load balancers can tell "try again later" apart
// from a genuine bug.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrCameraNotFound:    http.StatusNotFound,
	store.ErrStoreUnavailable:  http.StatusServiceUnavailable,
}

// errorMessageMap overrides the response body for errors whose wrapped
// detail must not leak to the client.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:      "invalid credentials",
	service.ErrTokenIsExpiredOrInvalid: "token is expired or invalid",
	store.ErrUserAlreadyExists:         "username or email already exists",
	store.ErrCameraNotFound:            "camera not found",
	store.ErrStoreUnavailable:          "storage temporarily unavailable",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and writes a small JSON error body.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	for target, m := range errorMessageMap {
		if errors.Is(err, target) {
			message = m
			break
		}
	}
	if status == http.StatusBadRequest {
		// validation details are safe and useful for the client
		message = err.Error()
	}

	utils.WriteJSON(w, map[string]string{"error": message}, status)
}
