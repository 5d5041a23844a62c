package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/brevly/internal/model"
)

func (r *Repository) CreateReport(ctx context.Context, report model.Report) (model.Report, error) {
	created, err := r.underlying.CreateReport(ctx, report)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to create report: %w", err)
	}

	return created, nil
}

func (r *Repository) ListReports(ctx context.Context) ([]model.Report, error) {
	reports, err := r.underlying.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, nil
}
