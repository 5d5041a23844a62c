package handler

import (
	"net/http"
	"strconv"

	"github.com/avc-dev/brevly/internal/usecase"
)

// ListLinks возвращает страницу ссылок, параметры page и limit необязательны
func (h *Handler) ListLinks(w http.ResponseWriter, req *http.Request) {
	page, ok := queryInt(req, "page", usecase.DefaultPage)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	if page > usecase.MaxPage {
		h.writeError(w, http.StatusBadRequest, "page is too large")
		return
	}

	limit, ok := queryInt(req, "limit", usecase.DefaultLimit)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	result, err := h.usecase.ListLinks(req.Context(), page, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, result, "")
}

func queryInt(req *http.Request, name string, fallback int) (int, bool) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, false
	}

	return value, true
}
