package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/service"
	"go.uber.org/zap"
)

// GenerateReport строит и публикует CSV отчёт по всем ссылкам
func (u *URLUsecase) GenerateReport(ctx context.Context) (model.Report, error) {
	report, err := u.reportService.GenerateReport(ctx)
	switch {
	case err == nil:
		u.logger.Info("report generated",
			zap.String("file_name", report.FileName),
			zap.Int64("file_size", report.FileSize),
		)
		return report, nil
	case errors.Is(err, service.ErrNoLinks):
		return model.Report{}, fmt.Errorf("%w: %w", ErrNoLinks, err)
	case errors.Is(err, service.ErrUploadFailed):
		u.logger.Error("failed to upload report", zap.Error(err))
		return model.Report{}, fmt.Errorf("%w: %w", ErrStorage, err)
	default:
		u.logger.Error("failed to generate report", zap.Error(err))
		return model.Report{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
}

// ListReports возвращает все отчёты, новые первыми
func (u *URLUsecase) ListReports(ctx context.Context) ([]model.Report, error) {
	reports, err := u.repo.ListReports(ctx)
	if err != nil {
		u.logger.Error("failed to list reports", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return reports, nil
}
