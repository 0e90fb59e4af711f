package models

import (
	"time"

	"github.com/offlinekit/recordsync/internal/vector"
)

// Side указывает, чья версия поля выбрана при разрешении конфликта.
type Side string

const (
	SideLocal  Side = "local"
	SideRemote Side = "remote"
)

// MergeStrategy идентифицирует политику автоматического разрешения.
const (
	// StrategyLastWriterWins побеждает значение с более поздним updated_at
	StrategyLastWriterWins = "last-writer-wins"
)

// ConflictField описывает одно разошедшееся критическое поле.
// Оба значения и обе временные метки сохраняются, чтобы UI мог показать
// пользователю полный контекст выбора.
type ConflictField struct {
	LocalUpdatedAt  time.Time `json:"local_updated_at"`  // LocalUpdatedAt когда менялась локальная сторона
	RemoteUpdatedAt time.Time `json:"remote_updated_at"` // RemoteUpdatedAt когда менялась удаленная сторона
	LocalValue      any       `json:"local_value"`       // LocalValue значение на этом устройстве
	RemoteValue     any       `json:"remote_value"`      // RemoteValue значение на сервере
	Path            string    `json:"path"`              // Path имя поля (один уровень вложенности)
	Severity        string    `json:"severity"`          // Severity всегда "critical"
}

// SeverityCritical единственный уровень серьезности ConflictField:
// auto-mergeable расхождения разрешаются сразу и попадают в AutoMergedField.
const SeverityCritical = "critical"

// AutoMergedField описывает поле, разрешенное без участия пользователя.
type AutoMergedField struct {
	ResolvedValue any    `json:"resolved_value"` // ResolvedValue победившее значение
	Path          string `json:"path"`           // Path имя поля
	Strategy      string `json:"strategy"`       // Strategy политика разрешения (last-writer-wins)
	ChosenSide    Side   `json:"chosen_side"`    // ChosenSide чья версия победила
}

// ConflictReport — результат одного вызова детектора конфликтов.
// Создается заново при каждом вызове detect и не персистится как есть;
// оркестратор сохраняет ConflictState только для критических конфликтов.
type ConflictReport struct {
	LocalVector      vector.Vector     `json:"local_vector"`       // LocalVector снимок локального вектора на момент детекции
	RemoteVector     vector.Vector     `json:"remote_vector"`      // RemoteVector снимок удаленного вектора
	CriticalFields   []ConflictField   `json:"critical_fields"`    // CriticalFields поля, требующие ручного выбора
	AutoMergedFields []AutoMergedField `json:"auto_merged_fields"` // AutoMergedFields поля, уже разрешенные LWW
	HasConflict      bool              `json:"has_conflict"`       // HasConflict есть хотя бы одно расхождение
}

// ConflictState — сериализуемый снимок критического конфликта,
// сохраняемый рядом с локальной записью. Позволяет UI возобновить ручное
// разрешение без повторного запроса к серверу.
type ConflictState struct {
	DetectedAt time.Time       `json:"detected_at"` // DetectedAt когда конфликт был обнаружен
	Remote     *Record         `json:"remote"`      // Remote снимок серверной версии записи
	Report     *ConflictReport `json:"report"`      // Report отчет детектора на момент обнаружения
	RecordID   string          `json:"record_id"`   // RecordID идентификатор конфликтующей записи
}
