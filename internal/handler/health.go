package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/avc-dev/brevly/internal/model"
	"go.uber.org/zap"
)

const (
	databaseConnected     = "connected"
	databaseDisconnected  = "disconnected"
	databaseNotConfigured = "not configured"

	healthPingTimeout = 2 * time.Second
)

// Health сообщает о работоспособности сервиса и состоянии базы данных.
// Всегда отвечает 200, состояние БД передаётся в теле.
func (h *Handler) Health(w http.ResponseWriter, req *http.Request) {
	now := h.now()

	status := model.HealthStatus{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339),
		Database:  h.databaseStatus(req.Context()),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	}

	h.writeSuccess(w, http.StatusOK, status, "")
}

func (h *Handler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return databaseNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		return databaseDisconnected
	}

	return databaseConnected
}
