package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avc-dev/brevly/internal/model"
)

const (
	// ISOTimeLayout ISO-8601 в UTC с миллисекундами
	ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

	reportFilePrefix = "brevly-report-"
	reportKeyPrefix  = "reports/"
)

// ReportHeader фиксированный порядок колонок отчёта
var ReportHeader = []string{"ID", "Original URL", "Short URL", "Access Count", "Created At", "Updated At"}

var fileTimestampReplacer = strings.NewReplacer(":", "-", ".", "-")

// EncodeLinksCSV сериализует ссылки в CSV с заголовком ReportHeader
func EncodeLinksCSV(links []model.Link) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(ReportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, link := range links {
		record := []string{
			link.ID,
			link.OriginalURL,
			link.ShortURL,
			strconv.FormatInt(link.AccessCount, 10),
			link.CreatedAt.UTC().Format(ISOTimeLayout),
			link.UpdatedAt.UTC().Format(ISOTimeLayout),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// ReportFileName строит имя файла отчёта: brevly-report-2025-01-02T03-04-05-678Z-1a2b3c4d.csv
func ReportFileName(now time.Time, suffix string) string {
	timestamp := fileTimestampReplacer.Replace(now.UTC().Format(ISOTimeLayout))
	return reportFilePrefix + timestamp + "-" + suffix + ".csv"
}

// ReportObjectKey ключ отчёта в объектном хранилище
func ReportObjectKey(fileName string) string {
	return reportKeyPrefix + fileName
}
