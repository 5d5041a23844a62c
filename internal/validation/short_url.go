package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	MinShortURLLength = 3
	MaxShortURLLength = 20

	// maxFallbackSegmentLength ограничивает сегмент пути, который пробуем как короткий код
	maxFallbackSegmentLength = 64
)

var (
	shortURLPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	segmentPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// reservedWords совпадают с префиксами служебных маршрутов
var reservedWords = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"auth":      {},
	"login":     {},
	"logout":    {},
	"register":  {},
	"dashboard": {},
	"settings":  {},
	"profile":   {},
	"help":      {},
	"about":     {},
	"contact":   {},
	"terms":     {},
	"privacy":   {},
	"health":    {},
	"status":    {},
}

// IsReservedWord сообщает, занят ли код служебным маршрутом (без учёта регистра)
func IsReservedWord(code string) bool {
	_, ok := reservedWords[strings.ToLower(code)]
	return ok
}

// ValidateShortURL проверяет пользовательский короткий код.
// Каждое нарушенное правило даёт своё сообщение.
func ValidateShortURL(code string) error {
	switch {
	case code == "":
		return newError("shortUrl", "short URL must not be empty")
	case len(code) < MinShortURLLength:
		return newError("shortUrl", fmt.Sprintf("short URL must be at least %d characters", MinShortURLLength))
	case len(code) > MaxShortURLLength:
		return newError("shortUrl", fmt.Sprintf("short URL must be at most %d characters", MaxShortURLLength))
	case !shortURLPattern.MatchString(code):
		return newError("shortUrl", "short URL may contain only letters, numbers and hyphens")
	case IsReservedWord(code):
		return newError("shortUrl", "short URL is a reserved word")
	}

	return nil
}

// ValidateLinkID проверяет, что идентификатор ссылки является UUID
func ValidateLinkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return newError("id", "invalid link id")
	}
	return nil
}

// IsFallbackCandidate решает, можно ли трактовать последний сегмент
// несопоставленного пути как короткий код.
func IsFallbackCandidate(segment, apiPrefix string) bool {
	if segment == "" || len(segment) > maxFallbackSegmentLength {
		return false
	}

	if segment == strings.Trim(apiPrefix, "/") {
		return false
	}

	return segmentPattern.MatchString(segment)
}
