package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/store"
	"github.com/avc-dev/brevly/internal/validation"
	"go.uber.org/zap"
)

// GetLinkByID получает ссылку по идентификатору
func (u *URLUsecase) GetLinkByID(ctx context.Context, id string) (model.Link, error) {
	if err := validation.ValidateLinkID(id); err != nil {
		return model.Link{}, err
	}

	link, err := u.repo.GetLinkByID(ctx, id)
	if err != nil {
		return model.Link{}, u.lookupError(err, zap.String("id", id))
	}

	return link, nil
}

// GetLinkByShortURL получает ссылку по короткому коду
func (u *URLUsecase) GetLinkByShortURL(ctx context.Context, shortURL string) (model.Link, error) {
	if err := validation.ValidateShortURL(shortURL); err != nil {
		return model.Link{}, err
	}

	link, err := u.repo.GetLinkByShortURL(ctx, shortURL)
	if err != nil {
		return model.Link{}, u.lookupError(err, zap.String("short_url", shortURL))
	}

	return link, nil
}

// DeleteLink удаляет ссылку по идентификатору
func (u *URLUsecase) DeleteLink(ctx context.Context, id string) error {
	if err := validation.ValidateLinkID(id); err != nil {
		return err
	}

	if err := u.repo.DeleteLink(ctx, id); err != nil {
		return u.lookupError(err, zap.String("id", id))
	}

	u.logger.Info("link deleted", zap.String("id", id))

	return nil
}

// lookupError переводит ошибку хранилища в ErrNotFound или ErrServiceUnavailable
func (u *URLUsecase) lookupError(err error, field zap.Field) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	u.logger.Error("link storage failure", field, zap.Error(err))

	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
