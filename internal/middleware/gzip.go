package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/avc-dev/brevly/internal/handler"
	"github.com/avc-dev/brevly/internal/model"
	"go.uber.org/zap"
)

// compressibleTypes типы содержимого, которые имеет смысл сжимать
var compressibleTypes = map[string]struct{}{
	"application/json": {},
	"text/html":        {},
	"text/csv":         {},
}

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// shouldCompress проверяет Content-Type без параметров: "text/csv; charset=utf-8" -> "text/csv"
func shouldCompress(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, ok := compressibleTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}

// gzipBody распаковывает тело запроса и закрывает оба читателя
type gzipBody struct {
	body   io.ReadCloser
	reader *gzip.Reader
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	readerErr := b.reader.Close()
	bodyErr := b.body.Close()
	if readerErr != nil {
		return readerErr
	}
	return bodyErr
}

// compressWriter решает при первом WriteHeader, сжимать ли ответ.
// Сжимаются только успешные ответы подходящего типа без собственной кодировки.
type compressWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (w *compressWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	header := w.Header()
	if statusCode < http.StatusMultipleChoices &&
		header.Get("Content-Encoding") == "" &&
		shouldCompress(header.Get("Content-Type")) {
		header.Set("Content-Encoding", "gzip")
		header.Del("Content-Length")
		header.Add("Vary", "Accept-Encoding")

		w.gz = gzipWriters.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.gz != nil {
		return w.gz.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

// Close дописывает gzip footer и возвращает writer в пул
func (w *compressWriter) Close() error {
	if w.gz == nil {
		return nil
	}

	err := w.gz.Close()
	w.gz.Reset(io.Discard)
	gzipWriters.Put(w.gz)
	w.gz = nil

	return err
}

// GzipMiddleware распаковывает тела запросов с Content-Encoding: gzip
// и сжимает JSON, HTML и CSV ответы для клиентов с Accept-Encoding: gzip.
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				reader, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Error("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
						zap.String("remote_addr", r.RemoteAddr),
					)
					if err := handler.WriteJSON(w, http.StatusBadRequest, model.APIResponse{Error: "invalid request body"}); err != nil {
						logger.Error("failed to encode response", zap.Error(err))
					}
					return
				}

				body := &gzipBody{body: r.Body, reader: reader}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("failed to close request body", zap.Error(err), zap.String("uri", r.RequestURI))
					}
				}()
				r.Body = body
				r.Header.Del("Content-Encoding")
				r.Header.Del("Content-Length")
				r.ContentLength = -1
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressWriter{ResponseWriter: w}
			defer func() {
				if err := cw.Close(); err != nil {
					logger.Error("failed to close gzip writer", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}
