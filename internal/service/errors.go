package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось подобрать свободный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	// ErrNoLinks нечего выгружать в отчёт
	ErrNoLinks = errors.New("no links to export")

	// ErrUploadFailed загрузка отчёта в объектное хранилище не удалась
	ErrUploadFailed = errors.New("report upload failed")
)
