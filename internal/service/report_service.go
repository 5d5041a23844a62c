package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/brevly/internal/model"
	"github.com/google/uuid"
)

// ReportService собирает CSV отчёт по всем ссылкам и публикует его в объектное хранилище
type ReportService struct {
	repo    ReportRepository
	storage ObjectStorage
	now     func() time.Time
	suffix  func() string
}

// NewReportService создает новый экземпляр ReportService
func NewReportService(repo ReportRepository, storage ObjectStorage) *ReportService {
	return &ReportService{
		repo:    repo,
		storage: storage,
		now:     time.Now,
		suffix:  randomSuffix,
	}
}

// randomSuffix 8 hex символов
func randomSuffix() string {
	return uuid.NewString()[:8]
}

// GenerateReport выгружает все ссылки в CSV, загружает файл и только после успешной
// загрузки сохраняет запись об отчёте.
func (s *ReportService) GenerateReport(ctx context.Context) (model.Report, error) {
	links, err := s.repo.ListAllLinks(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to load links: %w", err)
	}

	if len(links) == 0 {
		return model.Report{}, ErrNoLinks
	}

	content, err := EncodeLinksCSV(links)
	if err != nil {
		return model.Report{}, err
	}

	fileName := ReportFileName(s.now(), s.suffix())

	publicURL, err := s.storage.Upload(ctx, ReportObjectKey(fileName), content, "text/csv", fileName)
	if err != nil {
		return model.Report{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	report, err := s.repo.CreateReport(ctx, model.Report{
		ID:        uuid.NewString(),
		FileName:  fileName,
		PublicURL: publicURL,
		FileSize:  int64(len(content)),
	})
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to save report %s: %w", fileName, err)
	}

	return report, nil
}
