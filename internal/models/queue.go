package models

import "time"

// Operation — тип операции, ожидающей доставки на сервер.
// Дискриминант явный: вид операции никогда не выводится из формы payload.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// EntityKind — вид сущности, к которой относится операция.
type EntityKind string

const (
	// EntityQuote коммерческое предложение — основная сущность системы
	EntityQuote EntityKind = "quote"
)

// Priority — приоритет доставки элемента очереди.
// Меньшее число означает более высокий приоритет.
type Priority int

const (
	PriorityCritical Priority = 0
	PriorityHigh     Priority = 1
	PriorityNormal   Priority = 2
	PriorityLow      Priority = 3
)

// String возвращает человекочитаемое имя приоритета.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// QueueItem — элемент очереди синхронизации: одна локальная мутация,
// ожидающая доставки на сервер. Жизненный цикл:
//
//	active(retryCount=0) -> доставлено (удаляется)
//	                     -> active(retryCount+1, nextRetryAt=now+backoff)
//	                     -> deadLetter после исчерпания попыток
type QueueItem struct {
	EnqueuedAt    time.Time      `json:"enqueued_at"`              // EnqueuedAt время постановки в очередь (FIFO внутри приоритета)
	NextRetryAt   *time.Time     `json:"next_retry_at,omitempty"`  // NextRetryAt элемент не выдается до этого момента
	FailedAt      *time.Time     `json:"failed_at,omitempty"`      // FailedAt когда элемент попал в dead letter
	Payload       map[string]any `json:"payload,omitempty"`        // Payload частичная запись для отправки
	ID            string         `json:"id"`                       // ID уникальный идентификатор элемента (UUID)
	RecordID      string         `json:"record_id"`                // RecordID идентификатор целевой записи
	LastError     string         `json:"last_error,omitempty"`     // LastError текст последней ошибки доставки
	FailureReason string         `json:"failure_reason,omitempty"` // FailureReason причина попадания в dead letter
	Entity        EntityKind     `json:"entity"`                   // Entity вид сущности (явный дискриминант)
	Operation     Operation      `json:"operation"`                // Operation вид операции
	Priority      Priority       `json:"priority"`                 // Priority приоритет доставки
	RetryCount    int            `json:"retry_count"`              // RetryCount сколько попыток доставки уже провалилось
	DeadLetter    bool           `json:"dead_letter"`              // DeadLetter элемент исчерпал попытки и ждет вмешательства
}
