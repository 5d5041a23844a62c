package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/service"
	"github.com/avc-dev/brevly/internal/store"
	"github.com/avc-dev/brevly/internal/validation"
	"go.uber.org/zap"
)

// CreateLink валидирует вход и создает ссылку.
// Возвращает created=false, если ссылка на этот URL уже существовала.
func (u *URLUsecase) CreateLink(ctx context.Context, originalURL, shortURL string) (model.Link, bool, error) {
	normalized, err := validation.NormalizeURL(originalURL)
	if err != nil {
		return model.Link{}, false, err
	}

	if shortURL != "" {
		if err := validation.ValidateShortURL(shortURL); err != nil {
			return model.Link{}, false, err
		}
	}

	link, created, err := u.linkService.CreateLink(ctx, normalized, shortURL)
	switch {
	case err == nil:
		return link, created, nil
	case errors.Is(err, store.ErrShortURLTaken), errors.Is(err, service.ErrMaxRetriesExceeded):
		u.logger.Debug("short URL conflict",
			zap.String("short_url", shortURL),
			zap.Error(err),
		)
		return model.Link{}, false, fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		u.logger.Error("failed to create link",
			zap.String("original_url", normalized),
			zap.String("short_url", shortURL),
			zap.Error(err),
		)
		return model.Link{}, false, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
}
