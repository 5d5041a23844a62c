package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// CreateLinkRequest тело запроса на создание ссылки
type CreateLinkRequest struct {
	OriginalURL string `json:"originalUrl"`
	ShortURL    string `json:"shortUrl,omitempty"`
}

// CreateLink обрабатывает POST запрос для создания короткой ссылки.
// 201 для новой ссылки, 200 если ссылка на этот URL уже была.
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	var request CreateLinkRequest

	decoder := json.NewDecoder(req.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, created, err := h.usecase.CreateLink(req.Context(), request.OriginalURL, request.ShortURL)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if !created {
		h.writeSuccess(w, http.StatusOK, link, "link already exists")
		return
	}

	h.writeSuccess(w, http.StatusCreated, link, "link created")
}
