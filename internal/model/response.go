package model

// APIResponse общий конверт для всех JSON ответов
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthStatus содержимое ответа /health
type HealthStatus struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Database  string  `json:"database"`
	Uptime    float64 `json:"uptime"`
}
