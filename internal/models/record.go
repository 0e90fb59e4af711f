package models

import (
	"time"

	"github.com/offlinekit/recordsync/internal/vector"
)

// SyncStatus отражает состояние локальной копии записи относительно сервера.
type SyncStatus string

const (
	// SyncStatusPending запись изменена локально и ожидает отправки на сервер
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSynced запись совпадает с последним известным серверным состоянием
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusConflict запись имеет критический конфликт и ждет ручного разрешения
	SyncStatusConflict SyncStatus = "conflict"
)

// Record представляет версионированную запись (quote), реплицируемую между
// устройствами. Системные поля (идентичность, версия, временные метки)
// живут в структуре; доменные поля — в Fields и классифицируются
// пакетом conflict.
type Record struct {
	CreatedAt     time.Time      `json:"created_at"`     // CreatedAt время создания записи
	UpdatedAt     time.Time      `json:"updated_at"`     // UpdatedAt время последнего изменения (сигнал для LWW)
	Fields        map[string]any `json:"fields"`         // Fields доменные поля записи
	VersionVector vector.Vector  `json:"version_vector"` // VersionVector причинная история правок по устройствам
	ID            string         `json:"id"`             // ID уникальный идентификатор записи (UUID)
	SyncStatus    SyncStatus     `json:"sync_status"`    // SyncStatus локальное состояние синхронизации
	Version       int64          `json:"version"`        // Version монотонная версия; растет только при merge
}

// Field возвращает значение доменного поля (nil, если поля нет).
func (r *Record) Field(name string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[name]
}

// Clone создает глубокую копию записи, включая вектор и доменные поля.
func (r *Record) Clone() *Record {
	fields := make(map[string]any, len(r.Fields))
	for name, value := range r.Fields {
		fields[name] = CloneValue(value)
	}

	return &Record{
		ID:            r.ID,
		Version:       r.Version,
		VersionVector: r.VersionVector.Clone(),
		Fields:        fields,
		SyncStatus:    r.SyncStatus,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// CloneValue создает глубокую копию значения доменного поля.
// Поддерживаются JSON-совместимые значения: скаляры, map[string]any, []any.
func CloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, item := range v {
			result[key] = CloneValue(item)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = CloneValue(item)
		}
		return result
	default:
		// Скаляры (string, bool, числа, nil) иммутабельны
		return v
	}
}
