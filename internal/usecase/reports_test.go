package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		expectedErr error
	}{
		{name: "Success"},
		{name: "No links", serviceErr: service.ErrNoLinks, expectedErr: ErrNoLinks},
		{name: "Upload failed", serviceErr: fmt.Errorf("%w: denied", service.ErrUploadFailed), expectedErr: ErrStorage},
		{name: "Unexpected", serviceErr: errors.New("boom"), expectedErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc, m := newTestUsecase(t)
			expected := model.Report{ID: "r1", FileName: "brevly-report.csv", FileSize: 42}
			if tt.serviceErr != nil {
				expected = model.Report{}
			}
			m.reportService.EXPECT().GenerateReport(mock.Anything).Return(expected, tt.serviceErr).Once()

			// Act
			report, err := uc.GenerateReport(context.Background())

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expected, report)
		})
	}
}

func TestListReports(t *testing.T) {
	uc, m := newTestUsecase(t)
	reports := []model.Report{{ID: "2"}, {ID: "1"}}
	m.repo.EXPECT().ListReports(mock.Anything).Return(reports, nil).Once()

	result, err := uc.ListReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reports, result)

	m.repo.EXPECT().ListReports(mock.Anything).Return(nil, errors.New("boom")).Once()
	_, err = uc.ListReports(context.Background())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
