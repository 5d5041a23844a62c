package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/avc-dev/brevly/internal/usecase"
	"github.com/avc-dev/brevly/internal/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Redirect переадресует на оригинальный URL и засчитывает переход.
// Если код не найден, клиент уходит на страницу 404 фронтенда.
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	shortURL := chi.URLParam(req, "shortUrl")

	originalURL, err := h.usecase.ResolveShortURL(req.Context(), shortURL)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotFound) {
			h.logger.Error("failed to resolve short URL",
				zap.String("short_url", shortURL),
				zap.Error(err),
			)
		}
		http.Redirect(w, req, h.cfg.NotFoundPageURL(), http.StatusFound)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}

// NotFound пробует последний сегмент несопоставленного GET пути как короткий код
// и только после этого отвечает 404.
func (h *Handler) NotFound(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		h.writeError(w, http.StatusNotFound, "route not found")
		return
	}

	segment := lastSegment(req.URL.Path)
	if !validation.IsFallbackCandidate(segment, h.cfg.APIPrefix) {
		h.writeError(w, http.StatusNotFound, "route not found")
		return
	}

	originalURL, err := h.usecase.ResolveShortURL(req.Context(), segment)
	if err != nil {
		h.logger.Debug("fallback short URL lookup failed",
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		h.writeError(w, http.StatusNotFound, "route not found")
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}

func lastSegment(path string) string {
	path = strings.TrimRight(path, "/")
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// MethodNotAllowed отвечает 405 в общем формате ответа
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
