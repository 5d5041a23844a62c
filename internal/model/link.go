package model

import "time"

// Link представляет сокращённую ссылку
type Link struct {
	ID          string    `json:"id"`
	OriginalURL string    `json:"originalUrl"`
	ShortURL    string    `json:"shortUrl"`
	AccessCount int64     `json:"accessCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LinksPage представляет страницу списка ссылок
type LinksPage struct {
	Links      []Link `json:"links"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}
