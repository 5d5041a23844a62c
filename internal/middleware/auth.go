package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avc-dev/brevly/internal/handler"
	"github.com/avc-dev/brevly/internal/model"
	"go.uber.org/zap"
)

// AdminSubjectKey тип ключа контекста для subject администратора
type AdminSubjectKey string

const (
	// AdminSubjectContextKey ключ контекста, под которым лежит subject проверенного токена
	AdminSubjectContextKey AdminSubjectKey = "admin_subject"

	bearerPrefix = "Bearer "
)

// TokenValidator проверяет токены администратора
type TokenValidator interface {
	Enabled() bool
	ValidateAdminToken(token string) (string, error)
}

// AuthMiddleware защищает административные маршруты
type AuthMiddleware struct {
	authService TokenValidator
	logger      *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(authService TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// RequireAdmin пропускает запрос только с действительным токеном администратора
// в заголовке Authorization. Без настроенного секрета проверка не выполняется.
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !am.authService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			am.unauthorized(w, r, "missing bearer token")
			return
		}

		subject, err := am.authService.ValidateAdminToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			am.logger.Warn("admin token rejected",
				zap.Error(err),
				zap.String("uri", r.RequestURI),
				zap.String("remote_addr", r.RemoteAddr),
			)
			am.unauthorized(w, r, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), AdminSubjectContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (am *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	am.logger.Debug("unauthorized admin request",
		zap.String("method", r.Method),
		zap.String("uri", r.RequestURI),
	)

	w.Header().Set("WWW-Authenticate", `Bearer realm="brevly"`)
	if err := handler.WriteJSON(w, http.StatusUnauthorized, model.APIResponse{Error: message}); err != nil {
		am.logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetAdminSubjectFromContext извлекает subject администратора из контекста запроса
func GetAdminSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(AdminSubjectContextKey).(string)
	return subject, ok
}
