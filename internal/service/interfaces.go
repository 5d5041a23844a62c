package service

import (
	"context"

	"github.com/avc-dev/brevly/internal/model"
)

// LinkRepository определяет методы хранилища, нужные для создания ссылок
type LinkRepository interface {
	// CreateOrGetLink создает ссылку или возвращает существующую для того же оригинального URL.
	// Второе значение true, если запись создана.
	CreateOrGetLink(ctx context.Context, link model.Link) (model.Link, bool, error)
}

// ReportRepository определяет методы хранилища, нужные для отчётов
type ReportRepository interface {
	ListAllLinks(ctx context.Context) ([]model.Link, error)
	CreateReport(ctx context.Context, report model.Report) (model.Report, error)
}

// ObjectStorage загружает файл и возвращает его публичный URL
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType, fileName string) (string, error)
}

// Generator генерирует кандидатов в короткие коды
type Generator interface {
	GenerateCode() string
}
