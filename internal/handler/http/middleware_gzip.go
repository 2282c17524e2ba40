package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writer and reader instances are pooled; allocating a gzip.Writer per
// request shows up quickly under load.
var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that send "Accept-Encoding: gzip".
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !decompressRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: zw}, req)

		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

// decompressRequestBody swaps the request body for a pooled gzip reader.
// Returns false after writing a 400 when the body is not valid gzip.
func decompressRequestBody(w http.ResponseWriter, req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	req.Body = &pooledReadCloser{
		Reader: zr,
		onClose: func() {
			zr.Close()
			gzipReaderPool.Put(zr)
		},
	}
	req.Header.Del("Content-Encoding")
	return true
}

type pooledReadCloser struct {
	io.Reader
	onClose func()
}

func (p *pooledReadCloser) Close() error {
	if p.onClose != nil {
		p.onClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
