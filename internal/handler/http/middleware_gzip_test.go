package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, payload string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func echoHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		_, _ = w.Write(body)
	})
}

func TestWithGZip_PassthroughWithoutAcceptEncoding(t *testing.T) {
	handler := withGZip(echoHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/api/cameras", strings.NewReader(`{"brand":"Nikon"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"brand":"Nikon"}`, rec.Body.String())
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	handler := withGZip(echoHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/api/cameras", strings.NewReader(`{"brand":"Leica"}`))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	decoded, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"brand":"Leica"}`, string(decoded))
}

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	var seenBody string
	var seenEncoding string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		seenBody = string(body)
		seenEncoding = r.Header.Get("Content-Encoding")
	}))

	compressed := gzipBytes(t, `{"brand":"Rolleiflex"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cameras", bytes.NewReader(compressed))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"brand":"Rolleiflex"}`, seenBody)
	// the encoding header is removed so downstream code sees a plain body
	assert.Empty(t, seenEncoding)
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	handler := withGZip(echoHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/api/cameras", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_RoundTrip(t *testing.T) {
	handler := withGZip(echoHandler(t))

	compressed := gzipBytes(t, `{"model":"M3"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cameras", bytes.NewReader(compressed))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	decoded, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"model":"M3"}`, string(decoded))
}
