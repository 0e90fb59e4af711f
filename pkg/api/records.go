package api

import "time"

// Record представляет версионированную запись в wire-формате CRUD API.
type Record struct {
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Fields        map[string]any   `json:"fields"`
	VersionVector map[string]int64 `json:"version_vector"`
	ID            string           `json:"id"`
	Version       int64            `json:"version"`
}

// UpdateRecordRequest представляет частичное обновление записи.
// Передаются только измененные доменные поля плюс версионные метаданные.
type UpdateRecordRequest struct {
	UpdatedAt     time.Time        `json:"updated_at"`
	Fields        map[string]any   `json:"fields"`
	VersionVector map[string]int64 `json:"version_vector"`
	Version       int64            `json:"version"`
}

// ListRecordsResponse представляет ответ сервера на запрос всех записей.
type ListRecordsResponse struct {
	Records []Record `json:"records"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
