package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL_Success(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "HTTPS URL kept as is",
			input:    "https://example.com/page",
			expected: "https://example.com/page",
		},
		{
			name:     "HTTP URL kept as is",
			input:    "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "Scheme-less URL gets https prefix",
			input:    "example.com/page",
			expected: "https://example.com/page",
		},
		{
			name:     "Surrounding whitespace trimmed",
			input:    "  https://example.com  ",
			expected: "https://example.com",
		},
		{
			name:     "Inner whitespace stripped",
			input:    "https://exa mple.com/pa\tth",
			expected: "https://example.com/path",
		},
		{
			name:     "Query and fragment preserved",
			input:    "https://example.com/search?q=go&page=2#top",
			expected: "https://example.com/search?q=go&page=2#top",
		},
		{
			name:     "Scheme-less URL with nested URL in query",
			input:    "example.com/r?to=https://foo.com",
			expected: "https://example.com/r?to=https://foo.com",
		},
		{
			name:     "Host with port",
			input:    "localhost:8080/path",
			expected: "https://localhost:8080/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			result, err := NormalizeURL(tt.input)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeURL_Errors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedError string
	}{
		{
			name:          "Empty string",
			input:         "",
			expectedError: "URL must not be empty",
		},
		{
			name:          "Only whitespace",
			input:         "   \t\n",
			expectedError: "URL must not be empty",
		},
		{
			name:          "Too long",
			input:         "https://example.com/" + strings.Repeat("a", MaxURLLength),
			expectedError: "URL must be at most 2048 characters",
		},
		{
			name:          "javascript scheme",
			input:         "javascript:alert(1)",
			expectedError: "URL uses a disallowed protocol",
		},
		{
			name:          "Uppercase data scheme",
			input:         "DATA:text/html;base64,PHNjcmlwdD4=",
			expectedError: "URL uses a disallowed protocol",
		},
		{
			name:          "vbscript scheme",
			input:         "vbscript:msgbox",
			expectedError: "URL uses a disallowed protocol",
		},
		{
			name:          "file scheme",
			input:         "file:///etc/passwd",
			expectedError: "URL uses a disallowed protocol",
		},
		{
			name:          "ftp scheme",
			input:         "ftp://files.example.com",
			expectedError: "URL uses a disallowed protocol",
		},
		{
			name:          "Other scheme",
			input:         "ws://example.com/socket",
			expectedError: "URL must use HTTP or HTTPS",
		},
		{
			name:          "Missing host",
			input:         "https://",
			expectedError: "invalid URL format",
		},
		{
			name:          "Unparsable host",
			input:         "http://[::1",
			expectedError: "invalid URL format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			result, err := NormalizeURL(tt.input)

			// Assert
			require.Error(t, err)
			assert.Empty(t, result)
			assert.True(t, errors.Is(err, ErrValidation))

			var vErr *Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "originalUrl", vErr.Field)
			assert.Equal(t, tt.expectedError, vErr.Error())
		})
	}
}

func TestNormalizeURL_MaxLengthBoundary(t *testing.T) {
	prefix := "https://example.com/"
	exact := prefix + strings.Repeat("a", MaxURLLength-len(prefix))

	result, err := NormalizeURL(exact)

	require.NoError(t, err)
	assert.Len(t, result, MaxURLLength)
}

func TestNormalizeURL_MaxLengthAppliesAfterPrefix(t *testing.T) {
	// Arrange
	host := "example.com/"
	fits := host + strings.Repeat("a", MaxURLLength-len("https://")-len(host))
	overflows := fits + "a"

	// Act
	result, err := NormalizeURL(fits)
	_, overflowErr := NormalizeURL(overflows)

	// Assert
	require.NoError(t, err)
	assert.Len(t, result, MaxURLLength)

	var vErr *Error
	require.ErrorAs(t, overflowErr, &vErr)
	assert.Equal(t, "URL must be at most 2048 characters", vErr.Reason)
}
