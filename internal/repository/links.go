package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/brevly/internal/model"
)

func (r *Repository) CreateOrGetLink(ctx context.Context, link model.Link) (model.Link, bool, error) {
	result, created, err := r.underlying.CreateOrGetLink(ctx, link)
	if err != nil {
		return model.Link{}, false, fmt.Errorf("failed to create or get link: %w", err)
	}

	return result, created, nil
}

func (r *Repository) GetLinkByID(ctx context.Context, id string) (model.Link, error) {
	link, err := r.underlying.GetLinkByID(ctx, id)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to get link by id: %w", err)
	}

	return link, nil
}

func (r *Repository) GetLinkByShortURL(ctx context.Context, shortURL string) (model.Link, error) {
	link, err := r.underlying.GetLinkByShortURL(ctx, shortURL)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to get link by short URL: %w", err)
	}

	return link, nil
}

func (r *Repository) ListLinks(ctx context.Context, limit, offset int) ([]model.Link, int, error) {
	links, total, err := r.underlying.ListLinks(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list links: %w", err)
	}

	return links, total, nil
}

func (r *Repository) ListAllLinks(ctx context.Context) ([]model.Link, error) {
	links, err := r.underlying.ListAllLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all links: %w", err)
	}

	return links, nil
}

func (r *Repository) DeleteLink(ctx context.Context, id string) error {
	if err := r.underlying.DeleteLink(ctx, id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}

func (r *Repository) IncrementAccessCount(ctx context.Context, shortURL string) (model.Link, error) {
	link, err := r.underlying.IncrementAccessCount(ctx, shortURL)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to increment access count: %w", err)
	}

	return link, nil
}
