package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShortURL(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		expectedError string
	}{
		{name: "Lowercase letters", code: "mylink"},
		{name: "Mixed case with digits", code: "MyLink42"},
		{name: "With hyphens", code: "my-link-1"},
		{name: "Minimum length", code: "abc"},
		{name: "Maximum length", code: strings.Repeat("a", MaxShortURLLength)},
		{
			name:          "Empty",
			code:          "",
			expectedError: "short URL must not be empty",
		},
		{
			name:          "Too short",
			code:          "ab",
			expectedError: "short URL must be at least 3 characters",
		},
		{
			name:          "Too long",
			code:          strings.Repeat("a", MaxShortURLLength+1),
			expectedError: "short URL must be at most 20 characters",
		},
		{
			name:          "Underscore not allowed",
			code:          "my_link",
			expectedError: "short URL may contain only letters, numbers and hyphens",
		},
		{
			name:          "Slash not allowed",
			code:          "my/link",
			expectedError: "short URL may contain only letters, numbers and hyphens",
		},
		{
			name:          "Reserved word",
			code:          "admin",
			expectedError: "short URL is a reserved word",
		},
		{
			name:          "Reserved word in upper case",
			code:          "HEALTH",
			expectedError: "short URL is a reserved word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := ValidateShortURL(tt.code)

			// Assert
			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Equal(t, tt.expectedError, err.Error())
		})
	}
}

func TestIsReservedWord(t *testing.T) {
	for _, word := range []string{"admin", "api", "auth", "login", "logout", "register", "dashboard",
		"settings", "profile", "help", "about", "contact", "terms", "privacy", "health", "status"} {
		assert.True(t, IsReservedWord(word), word)
	}

	assert.True(t, IsReservedWord("Api"))
	assert.False(t, IsReservedWord("apis"))
}

func TestValidateLinkID(t *testing.T) {
	assert.NoError(t, ValidateLinkID("4f8b2c1e-2d3a-4b5c-9d6e-7f8091a2b3c4"))

	err := ValidateLinkID("not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, "invalid link id", err.Error())
}

func TestIsFallbackCandidate(t *testing.T) {
	tests := []struct {
		name     string
		segment  string
		expected bool
	}{
		{name: "Regular code", segment: "abc123", expected: true},
		{name: "Underscore allowed", segment: "my_code", expected: true},
		{name: "Hyphen allowed", segment: "my-code", expected: true},
		{name: "Longest allowed", segment: strings.Repeat("x", 64), expected: true},
		{name: "Too long", segment: strings.Repeat("x", 65), expected: false},
		{name: "Empty", segment: "", expected: false},
		{name: "Dot not allowed", segment: "favicon.ico", expected: false},
		{name: "API prefix", segment: "api", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFallbackCandidate(tt.segment, "/api"))
		})
	}
}
