package repository

import (
	"context"

	"github.com/avc-dev/brevly/internal/model"
)

// Store хранилище ссылок и отчётов (in-memory или PostgreSQL)
type Store interface {
	CreateOrGetLink(ctx context.Context, link model.Link) (model.Link, bool, error)
	GetLinkByID(ctx context.Context, id string) (model.Link, error)
	GetLinkByShortURL(ctx context.Context, shortURL string) (model.Link, error)
	ListLinks(ctx context.Context, limit, offset int) ([]model.Link, int, error)
	ListAllLinks(ctx context.Context) ([]model.Link, error)
	DeleteLink(ctx context.Context, id string) error
	IncrementAccessCount(ctx context.Context, shortURL string) (model.Link, error)
	CreateReport(ctx context.Context, report model.Report) (model.Report, error)
	ListReports(ctx context.Context) ([]model.Report, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}
