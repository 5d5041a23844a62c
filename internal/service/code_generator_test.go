package service

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var generatedCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

// TestCodeGenerator_Format проверяет длину и алфавит кода
func TestCodeGenerator_Format(t *testing.T) {
	generator := NewCodeGenerator()

	for range 1000 {
		code := generator.GenerateCode()
		assert.Regexp(t, generatedCodePattern, code)
	}
}

// TestCodeGenerator_Alphabet проверяет размер алфавита
func TestCodeGenerator_Alphabet(t *testing.T) {
	seen := make(map[rune]struct{})
	for _, r := range AllowedChars {
		seen[r] = struct{}{}
	}

	assert.Len(t, seen, 62)
}

// TestCodeGenerator_Concurrent проверяет генерацию из нескольких горутин
func TestCodeGenerator_Concurrent(t *testing.T) {
	generator := NewCodeGenerator()

	var wg sync.WaitGroup
	codes := make(chan string, 400)

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				codes <- generator.GenerateCode()
			}
		}()
	}
	wg.Wait()
	close(codes)

	unique := make(map[string]struct{})
	for code := range codes {
		assert.Len(t, code, CodeLength)
		unique[code] = struct{}{}
	}

	// 62^6 вариантов: совпадения среди 400 кодов практически исключены
	assert.Greater(t, len(unique), 390)
}
