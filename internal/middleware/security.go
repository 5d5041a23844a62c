package middleware

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var securityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"X-XSS-Protection":        "1; mode=block",
	"Referrer-Policy":         "strict-origin-when-cross-origin",
	"Content-Security-Policy": "default-src 'self'",
}

var (
	scriptPattern = regexp.MustCompile(`(?i)<\s*script|javascript:`)
	sqlPattern    = regexp.MustCompile(`(?i)\b(union\s+select|select\s+.+\s+from|insert\s+into|drop\s+table|delete\s+from|or\s+1\s*=\s*1)\b`)
	pathTraversal = regexp.MustCompile(`\.\./|\.\.\\`)

	scannerAgents = []string{"sqlmap", "nikto", "nmap", "masscan", "acunetix", "dirbuster"}
)

// SecurityHeaders выставляет защитные заголовки и логирует подозрительные запросы.
// Запрос не блокируется, решение остаётся за обработчиком.
func SecurityHeaders(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}

			if reason := suspiciousReason(r); reason != "" {
				logger.Warn("suspicious request",
					zap.String("reason", reason),
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("user_agent", r.UserAgent()),
				)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// suspiciousReason возвращает причину, по которой запрос выглядит как атака, или пустую строку
func suspiciousReason(r *http.Request) string {
	target := r.URL.RawQuery
	if decoded, err := url.QueryUnescape(target); err == nil {
		target = decoded
	}
	path := r.URL.Path

	switch {
	case scriptPattern.MatchString(target) || scriptPattern.MatchString(path):
		return "script injection"
	case sqlPattern.MatchString(target):
		return "sql injection"
	case pathTraversal.MatchString(path) || pathTraversal.MatchString(target):
		return "path traversal"
	}

	agent := strings.ToLower(r.UserAgent())
	for _, scanner := range scannerAgents {
		if strings.Contains(agent, scanner) {
			return "scanner user agent"
		}
	}

	return ""
}
