package usecase

import (
	"context"

	"github.com/avc-dev/brevly/internal/model"
	"go.uber.org/zap"
)

// URLRepository определяет интерфейс для чтения и изменения ссылок и отчётов
type URLRepository interface {
	GetLinkByID(ctx context.Context, id string) (model.Link, error)
	GetLinkByShortURL(ctx context.Context, shortURL string) (model.Link, error)
	ListLinks(ctx context.Context, limit, offset int) ([]model.Link, int, error)
	DeleteLink(ctx context.Context, id string) error
	IncrementAccessCount(ctx context.Context, shortURL string) (model.Link, error)
	ListReports(ctx context.Context) ([]model.Report, error)
}

// LinkService создает ссылки
type LinkService interface {
	CreateLink(ctx context.Context, originalURL, shortURL string) (model.Link, bool, error)
}

// ReportService генерирует CSV отчёты
type ReportService interface {
	GenerateReport(ctx context.Context) (model.Report, error)
}

// URLUsecase содержит сценарии работы со ссылками и отчётами
type URLUsecase struct {
	repo          URLRepository
	linkService   LinkService
	reportService ReportService
	logger        *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLRepository, linkService LinkService, reportService ReportService, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:          repo,
		linkService:   linkService,
		reportService: reportService,
		logger:        logger,
	}
}
