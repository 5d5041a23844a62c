package service

import "math/rand/v2"

const (
	CodeLength   = 6
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator генерирует случайные коды из 62 алфавитно-цифровых символов.
// Безопасен для конкурентного использования.
type CodeGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// GenerateCode генерирует случайный код длины CodeLength
func (g *CodeGenerator) GenerateCode() string {
	result := make([]byte, CodeLength)

	for i := range result {
		result[i] = AllowedChars[rand.IntN(len(AllowedChars))]
	}

	return string(result)
}
