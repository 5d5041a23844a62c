package model

import "time"

// Report описывает сгенерированный CSV отчёт, загруженный в объектное хранилище
type Report struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	PublicURL string    `json:"publicUrl"`
	FileSize  int64     `json:"fileSize"`
	CreatedAt time.Time `json:"createdAt"`
}
