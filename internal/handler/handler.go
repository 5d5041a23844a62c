package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/avc-dev/brevly/internal/config/db"
	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/usecase"
	"github.com/avc-dev/brevly/internal/validation"
	"go.uber.org/zap"
)

//go:generate mockery --name URLUsecase

// URLUsecase определяет сценарии, доступные HTTP слою
type URLUsecase interface {
	CreateLink(ctx context.Context, originalURL, shortURL string) (model.Link, bool, error)
	ListLinks(ctx context.Context, page, limit int) (model.LinksPage, error)
	GetLinkByID(ctx context.Context, id string) (model.Link, error)
	GetLinkByShortURL(ctx context.Context, shortURL string) (model.Link, error)
	DeleteLink(ctx context.Context, id string) error
	ResolveShortURL(ctx context.Context, shortURL string) (string, error)
	GenerateReport(ctx context.Context) (model.Report, error)
	ListReports(ctx context.Context) ([]model.Report, error)
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	usecase   URLUsecase
	logger    *zap.Logger
	db        db.Database
	cfg       *config.Config
	startedAt time.Time
	now       func() time.Time
}

// New создает новый экземпляр Handler
func New(usecase URLUsecase, logger *zap.Logger, database db.Database, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	return &Handler{
		usecase:   usecase,
		logger:    logger,
		db:        database,
		cfg:       cfg,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

// WriteJSON записывает конверт ответа с указанным статусом
func WriteJSON(w http.ResponseWriter, status int, response model.APIResponse) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response model.APIResponse) {
	if err := WriteJSON(w, status, response); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	h.writeJSON(w, status, model.APIResponse{Success: true, Data: data, Message: message})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.APIResponse{Success: false, Error: message})
}

// handleError переводит ошибку usecase в HTTP статус и сообщение клиенту.
// Детали неожиданных ошибок остаются в логах.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error

	switch {
	case errors.As(err, &validationErr):
		h.writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, usecase.ErrConflict):
		h.writeError(w, http.StatusConflict, usecase.ErrConflict.Error())
	case errors.Is(err, usecase.ErrNotFound):
		h.writeError(w, http.StatusNotFound, usecase.ErrNotFound.Error())
	case errors.Is(err, usecase.ErrNoLinks):
		h.writeError(w, http.StatusNotFound, usecase.ErrNoLinks.Error())
	case errors.Is(err, usecase.ErrStorage):
		h.writeError(w, http.StatusInternalServerError, usecase.ErrStorage.Error())
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
