package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/avc-dev/brevly/internal/model"
	"go.uber.org/zap"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage наибольший номер страницы, при котором смещение не переполняет int
	MaxPage = math.MaxInt / MaxLimit
)

// ListLinks возвращает страницу ссылок, новые первыми.
// Некорректные page/limit заменяются значениями по умолчанию,
// limit ограничен MaxLimit, page ограничен MaxPage.
func (u *URLUsecase) ListLinks(ctx context.Context, page, limit int) (model.LinksPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)
	page = min(page, MaxPage)

	links, total, err := u.repo.ListLinks(ctx, limit, (page-1)*limit)
	if err != nil {
		u.logger.Error("failed to list links",
			zap.Int("page", page),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return model.LinksPage{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return model.LinksPage{
		Links:      links,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}
