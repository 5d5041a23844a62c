package validation

import "errors"

// ErrValidation базовая ошибка для всех нарушений правил валидации
var ErrValidation = errors.New("validation failed")

// Error описывает конкретное нарушение правила валидации.
// Reason возвращается клиенту как есть.
type Error struct {
	Field  string
	Reason string
}

func newError(field, reason string) *Error {
	return &Error{Field: field, Reason: reason}
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return ErrValidation
}
