package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// MaxURLLength максимальная длина оригинального URL
const MaxURLLength = 2048

// schemePrefix схема в начале строки, "://" внутри query схемой не считается
var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// disallowedSchemes префиксы, которые не должны попасть в редирект
var disallowedSchemes = []string{"javascript:", "data:", "vbscript:", "file:", "ftp:"}

// NormalizeURL проверяет оригинальный URL и приводит его к каноничному виду:
// пробелы удаляются, при отсутствии схемы добавляется https://.
func NormalizeURL(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return "", newError("originalUrl", "URL must not be empty")
	}

	if len(cleaned) > MaxURLLength {
		return "", errTooLong()
	}

	lower := strings.ToLower(cleaned)
	for _, scheme := range disallowedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "", newError("originalUrl", "URL uses a disallowed protocol")
		}
	}

	if !schemePrefix.MatchString(cleaned) {
		cleaned = "https://" + cleaned
		if len(cleaned) > MaxURLLength {
			return "", errTooLong()
		}
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", newError("originalUrl", "invalid URL format")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", newError("originalUrl", "URL must use HTTP or HTTPS")
	}

	if parsed.Host == "" {
		return "", newError("originalUrl", "invalid URL format")
	}

	return cleaned, nil
}

func errTooLong() *Error {
	return newError("originalUrl", fmt.Sprintf("URL must be at most %d characters", MaxURLLength))
}
