package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/store"
	"github.com/google/uuid"
)

// LinkService содержит бизнес-логику создания коротких ссылок
type LinkService struct {
	repo          LinkRepository
	codeGenerator Generator
	cfg           *config.Config
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(repo LinkRepository, cfg *config.Config) *LinkService {
	return &LinkService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		cfg:           cfg,
	}
}

// CreateLink сохраняет ссылку на уже нормализованный originalURL.
// Пользовательский shortURL используется как есть; занятый код даёт store.ErrShortURLTaken.
// Без shortURL код генерируется, и при коллизии генерация повторяется до cfg.Retry.MaxAttempts раз.
func (s *LinkService) CreateLink(ctx context.Context, originalURL, shortURL string) (model.Link, bool, error) {
	if shortURL != "" {
		return s.createWithCode(ctx, originalURL, shortURL)
	}

	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		link, created, err := s.createWithCode(ctx, originalURL, s.codeGenerator.GenerateCode())
		if errors.Is(err, store.ErrShortURLTaken) {
			continue
		}
		return link, created, err
	}

	return model.Link{}, false, fmt.Errorf("failed to generate unique code after %d attempts: %w",
		s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}

func (s *LinkService) createWithCode(ctx context.Context, originalURL, shortURL string) (model.Link, bool, error) {
	link, created, err := s.repo.CreateOrGetLink(ctx, model.Link{
		ID:          uuid.NewString(),
		OriginalURL: originalURL,
		ShortURL:    shortURL,
	})
	if err != nil {
		return model.Link{}, false, fmt.Errorf("failed to create or get link: %w", err)
	}

	return link, created, nil
}
