package handler

import (
	"net/http"
)

// GenerateReport строит CSV отчёт по всем ссылкам и публикует его
func (h *Handler) GenerateReport(w http.ResponseWriter, req *http.Request) {
	report, err := h.usecase.GenerateReport(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, report, "report generated")
}

func (h *Handler) ListReports(w http.ResponseWriter, req *http.Request) {
	reports, err := h.usecase.ListReports(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, reports, "")
}
