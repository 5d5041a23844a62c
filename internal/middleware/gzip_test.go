package middleware

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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// compressString сжимает строку с помощью gzip
func compressString(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	_, err := gzipWriter.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())

	return buf.Bytes()
}

// decompressBytes распаковывает данные gzip
func decompressBytes(t *testing.T, data []byte) string {
	t.Helper()

	reader, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	result, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(result)
}

func TestGzipMiddleware_CompressResponse(t *testing.T) {
	const csvBody = "id,original_url,short_url,access_count,created_at,updated_at\n"

	tests := []struct {
		name           string
		contentType    string
		acceptEncoding string
		status         int
		body           string
		shouldCompress bool
	}{
		{
			name:           "JSON envelope",
			contentType:    "application/json",
			acceptEncoding: "gzip",
			status:         http.StatusCreated,
			body:           `{"success":true,"message":"link created"}`,
			shouldCompress: true,
		},
		{
			name:           "CSV report with charset",
			contentType:    "text/csv; charset=utf-8",
			acceptEncoding: "gzip, deflate",
			status:         http.StatusOK,
			body:           csvBody,
			shouldCompress: true,
		},
		{
			name:           "HTML",
			contentType:    "TEXT/HTML",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			body:           "<html><body>brevly</body></html>",
			shouldCompress: true,
		},
		{
			name:           "Client without gzip",
			contentType:    "application/json",
			status:         http.StatusOK,
			body:           `{"success":true}`,
			shouldCompress: false,
		},
		{
			name:           "Plain text",
			contentType:    "text/plain",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			body:           "ok",
			shouldCompress: false,
		},
		{
			name:           "Error responses are not compressed",
			contentType:    "application/json",
			acceptEncoding: "gzip",
			status:         http.StatusNotFound,
			body:           `{"success":false,"error":"link not found"}`,
			shouldCompress: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			GzipMiddleware(zaptest.NewLogger(t))(next).ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.status, rec.Code)
			if tt.shouldCompress {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, decompressBytes(t, rec.Body.Bytes()))
				return
			}

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGzipMiddleware_DecompressRequest(t *testing.T) {
	const payload = `{"originalUrl":"https://example.com","shortUrl":"mylink"}`

	t.Run("gzip body is unpacked", func(t *testing.T) {
		// Arrange
		var received string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			received = string(body)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewReader(compressString(t, payload)))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		// Act
		GzipMiddleware(zaptest.NewLogger(t))(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, payload, received)
	})

	t.Run("plain body passes through", func(t *testing.T) {
		var received string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			received = string(body)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/links", strings.NewReader(payload))
		rec := httptest.NewRecorder()

		GzipMiddleware(zaptest.NewLogger(t))(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, payload, received)
	})
}

func TestGzipMiddleware_InvalidRequestBody(t *testing.T) {
	// Arrange
	observedCore, observedLogs := observer.New(zapcore.ErrorLevel)
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/links", strings.NewReader("not gzip data"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	GzipMiddleware(zap.New(observedCore))(next).ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "invalid request body")

	entries := observedLogs.FilterMessage("failed to decompress request body").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "error")
}

func TestShouldCompress(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/csv", true},
		{"text/csv; charset=utf-8", true},
		{"TEXT/HTML", true},
		{"text/plain", false},
		{"image/png", false},
		{"application/octet-stream", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldCompress(tt.contentType))
		})
	}
}
