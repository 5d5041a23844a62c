package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminRole = "admin"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNotAdmin     = errors.New("token does not grant admin role")
)

// AuthService выпускает и проверяет HS256 токены администратора.
// С пустым секретом проверка отключена.
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// Enabled сообщает, задан ли секрет
func (a *AuthService) Enabled() bool {
	return len(a.jwtSecret) > 0
}

// GenerateAdminToken создает токен администратора для subject со сроком жизни ttl
func (a *AuthService) GenerateAdminToken(subject string, ttl time.Duration) (string, error) {
	if !a.Enabled() {
		return "", errors.New("JWT secret is not configured")
	}

	now := a.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": adminRole,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateAdminToken проверяет подпись, срок действия и роль; возвращает subject
func (a *AuthService) ValidateAdminToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	}, jwt.WithTimeFunc(a.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	if role, _ := claims["role"].(string); role != adminRole {
		return "", ErrNotAdmin
	}

	subject, _ := claims["sub"].(string)
	return subject, nil
}
