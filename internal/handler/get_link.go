package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetLink(w http.ResponseWriter, req *http.Request) {
	link, err := h.usecase.GetLinkByID(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, link, "")
}

func (h *Handler) GetLinkByShortURL(w http.ResponseWriter, req *http.Request) {
	link, err := h.usecase.GetLinkByShortURL(req.Context(), chi.URLParam(req, "shortUrl"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, link, "")
}

// DeleteLink удаляет ссылку по идентификатору
func (h *Handler) DeleteLink(w http.ResponseWriter, req *http.Request) {
	if err := h.usecase.DeleteLink(req.Context(), chi.URLParam(req, "id")); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, nil, "link deleted")
}
