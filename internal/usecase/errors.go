package usecase

import "errors"

var (
	ErrConflict           = errors.New("short URL already in use")
	ErrNotFound           = errors.New("link not found")
	ErrNoLinks            = errors.New("no links found to generate report")
	ErrStorage            = errors.New("failed to upload report")
	ErrServiceUnavailable = errors.New("service unavailable")
)
