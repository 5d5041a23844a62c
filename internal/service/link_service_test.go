package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/avc-dev/brevly/internal/mocks"
	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func linkWith(originalURL, shortURL string) interface{} {
	return mock.MatchedBy(func(link model.Link) bool {
		_, err := uuid.Parse(link.ID)
		return err == nil && link.OriginalURL == originalURL && link.ShortURL == shortURL
	})
}

// TestCreateLink_GeneratedCode проверяет создание ссылки со сгенерированным кодом
func TestCreateLink_GeneratedCode(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	expected := model.Link{ID: uuid.NewString(), OriginalURL: "https://example.com", ShortURL: "aB3dE9"}

	mockGenerator.EXPECT().GenerateCode().Return("aB3dE9").Once()
	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, linkWith("https://example.com", "aB3dE9")).
		Return(expected, true, nil).
		Once()

	service := NewLinkService(mockRepo, config.NewDefaultConfig())
	service.codeGenerator = mockGenerator

	// Act
	link, created, err := service.CreateLink(context.Background(), "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, expected, link)
}

// TestCreateLink_CustomCode проверяет, что пользовательский код не генерируется заново
func TestCreateLink_CustomCode(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	expected := model.Link{ID: uuid.NewString(), OriginalURL: "https://example.com/page", ShortURL: "mylink"}

	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, linkWith("https://example.com/page", "mylink")).
		Return(expected, true, nil).
		Once()

	service := NewLinkService(mockRepo, config.NewDefaultConfig())
	service.codeGenerator = mockGenerator

	// Act
	link, created, err := service.CreateLink(context.Background(), "https://example.com/page", "mylink")

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "mylink", link.ShortURL)
	mockGenerator.AssertNotCalled(t, "GenerateCode")
}

// TestCreateLink_ExistingOriginalURL проверяет возврат существующей записи
func TestCreateLink_ExistingOriginalURL(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	existing := model.Link{ID: uuid.NewString(), OriginalURL: "https://example.com", ShortURL: "old123", AccessCount: 7}

	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, linkWith("https://example.com", "newone")).
		Return(existing, false, nil).
		Once()

	service := NewLinkService(mockRepo, config.NewDefaultConfig())

	// Act
	link, created, err := service.CreateLink(context.Background(), "https://example.com", "newone")

	// Assert
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, link)
}

// TestCreateLink_CustomCodeTaken проверяет, что занятый пользовательский код не перегенерируется
func TestCreateLink_CustomCodeTaken(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)

	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, linkWith("https://example.com", "taken")).
		Return(model.Link{}, false, fmt.Errorf("short URL taken: %w", store.ErrShortURLTaken)).
		Once()

	service := NewLinkService(mockRepo, config.NewDefaultConfig())
	service.codeGenerator = mockGenerator

	// Act
	_, _, err := service.CreateLink(context.Background(), "https://example.com", "taken")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrShortURLTaken)
	mockGenerator.AssertNotCalled(t, "GenerateCode")
}

// TestCreateLink_RetryOnGeneratedCollision проверяет повтор генерации при коллизии
func TestCreateLink_RetryOnGeneratedCollision(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	expected := model.Link{ID: uuid.NewString(), OriginalURL: "https://example.com", ShortURL: "second"}

	mockGenerator.EXPECT().GenerateCode().Return("first1").Once()
	mockGenerator.EXPECT().GenerateCode().Return("second").Once()

	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, linkWith("https://example.com", "first1")).
		Return(model.Link{}, false, store.ErrShortURLTaken).
		Once()
	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, linkWith("https://example.com", "second")).
		Return(expected, true, nil).
		Once()

	service := NewLinkService(mockRepo, config.NewDefaultConfig())
	service.codeGenerator = mockGenerator

	// Act
	link, created, err := service.CreateLink(context.Background(), "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "second", link.ShortURL)
}

// TestCreateLink_MaxRetriesExceeded проверяет исчерпание попыток
func TestCreateLink_MaxRetriesExceeded(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = 3

	mockGenerator.EXPECT().GenerateCode().Return("dupdup").Times(3)
	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, linkWith("https://example.com", "dupdup")).
		Return(model.Link{}, false, store.ErrShortURLTaken).
		Times(3)

	service := NewLinkService(mockRepo, cfg)
	service.codeGenerator = mockGenerator

	// Act
	_, _, err := service.CreateLink(context.Background(), "https://example.com", "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
}

// TestCreateLink_RepositoryError проверяет, что прочие ошибки не повторяются
func TestCreateLink_RepositoryError(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	dbErr := errors.New("connection refused")

	mockGenerator.EXPECT().GenerateCode().Return("abc123").Once()
	mockRepo.EXPECT().
		CreateOrGetLink(mock.Anything, mock.Anything).
		Return(model.Link{}, false, dbErr).
		Once()

	service := NewLinkService(mockRepo, config.NewDefaultConfig())
	service.codeGenerator = mockGenerator

	// Act
	_, _, err := service.CreateLink(context.Background(), "https://example.com", "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrMaxRetriesExceeded)
}
