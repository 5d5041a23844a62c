package usecase

import (
	"context"

	"go.uber.org/zap"
)

// ResolveShortURL находит оригинальный URL и засчитывает переход.
// Поиск и инкремент счётчика выполняются одной операцией хранилища.
func (u *URLUsecase) ResolveShortURL(ctx context.Context, shortURL string) (string, error) {
	link, err := u.repo.IncrementAccessCount(ctx, shortURL)
	if err != nil {
		return "", u.lookupError(err, zap.String("short_url", shortURL))
	}

	return link.OriginalURL, nil
}
