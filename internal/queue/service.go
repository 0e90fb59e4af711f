package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс очереди синхронизации.
//
// Жизненный цикл элемента: active -> доставлен (MarkSuccess, удаляется)
// либо active -> retry с backoff (MarkFailure) и после исчерпания
// попыток -> dead letter. Dead letter элементы можно просмотреть,
// вернуть в очередь или удалить навсегда.
type Service interface {
	// Enqueue ставит локальную мутацию в очередь доставки и возвращает ID элемента
	Enqueue(ctx context.Context, req EnqueueRequest) (string, error)

	// DequeueBatch возвращает до maxItems готовых к доставке элементов
	// в порядке (priority, enqueuedAt)
	DequeueBatch(ctx context.Context, maxItems int) ([]*models.QueueItem, error)

	// MarkSuccess удаляет доставленный элемент
	MarkSuccess(ctx context.Context, itemID string) error

	// MarkFailure учитывает неудачную попытку доставки: назначает backoff
	// либо переводит элемент в dead letter после исчерпания попыток
	MarkFailure(ctx context.Context, itemID, errText string) error

	// MarkPermanentFailure немедленно переводит элемент в dead letter,
	// минуя retry. Используется для безнадежных отказов сервера (4xx)
	MarkPermanentFailure(ctx context.Context, itemID, reason string) error

	// PromoteIfRepeatedlyFailing поднимает приоритет застрявшего элемента
	// до high, чтобы он не голодал за свежей низкоприоритетной работой
	PromoteIfRepeatedlyFailing(ctx context.Context, itemID string) error

	// PendingCount возвращает количество элементов, ожидающих доставки
	PendingCount(ctx context.Context) (int, error)

	// DeadLetters возвращает все элементы dead-letter уровня
	DeadLetters(ctx context.Context) ([]*models.QueueItem, error)

	// RequeueDeadLetter возвращает dead letter элемент в активную очередь,
	// сбрасывая счетчик попыток; priority опционально повышает приоритет
	RequeueDeadLetter(ctx context.Context, itemID string, priority *models.Priority) error

	// PurgeDeadLetter окончательно удаляет dead letter элемент
	PurgeDeadLetter(ctx context.Context, itemID string) error
}

// EnqueueRequest описывает мутацию, которую нужно доставить на сервер.
type EnqueueRequest struct {
	Payload   map[string]any   // частичная запись для отправки
	Priority  *models.Priority // nil = вывести приоритет из операции и payload
	RecordID  string           // идентификатор целевой записи
	Entity    models.EntityKind
	Operation models.Operation
}

// Политика повторов: таблица backoff монотонно растет, последнее значение
// повторяется для всех последующих попыток. После maxRetries неудач элемент
// переводится в dead letter.
var backoffSchedule = []time.Duration{
	1 * time.Second,
	2 * time.Second,
	4 * time.Second,
	8 * time.Second,
	30 * time.Second,
	60 * time.Second,
}

const (
	maxRetries = 6
	// promoteThreshold: после стольких неудач элемент поднимается до high
	promoteThreshold = 3
)

// Поля, изменение которых поднимает приоритет доставки: статусные
// и контактные данные клиента важнее прочих правок.
var elevatedFields = map[string]bool{
	"status":         true,
	"customer_name":  true,
	"customer_email": true,
	"customer_phone": true,
}

type service struct {
	store  storage.QueueStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает очередь синхронизации поверх переданного хранилища.
func NewService(store storage.QueueStorage, logger *slog.Logger) Service {
	return &service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// NewServiceWithClock создает очередь с заданным источником времени.
// Используется в тестах, чтобы проверять backoff без реальных задержек.
func NewServiceWithClock(store storage.QueueStorage, logger *slog.Logger, now func() time.Time) Service {
	return &service{
		store:  store,
		logger: logger,
		now:    now,
	}
}

func (s *service) Enqueue(ctx context.Context, req EnqueueRequest) (string, error) {
	priority := derivePriority(req)

	item := &models.QueueItem{
		ID:         uuid.New().String(),
		RecordID:   req.RecordID,
		Entity:     req.Entity,
		Operation:  req.Operation,
		Payload:    req.Payload,
		Priority:   priority,
		EnqueuedAt: s.now(),
	}

	if err := s.store.SaveItem(ctx, item); err != nil {
		return "", fmt.Errorf("failed to enqueue item: %w", err)
	}

	s.logger.Debug("Enqueued sync item",
		"item_id", item.ID,
		"record_id", item.RecordID,
		"operation", item.Operation,
		"priority", priority.String())

	return item.ID, nil
}

// derivePriority применяет фиксированное правило классификации: явный
// приоритет уважается; удаления и правки статусных/контактных полей
// поднимаются до high; все остальное — normal.
func derivePriority(req EnqueueRequest) models.Priority {
	if req.Priority != nil {
		return *req.Priority
	}

	if req.Operation == models.OperationDelete {
		return models.PriorityHigh
	}

	for name := range req.Payload {
		if elevatedFields[name] {
			return models.PriorityHigh
		}
	}

	return models.PriorityNormal
}

func (s *service) DequeueBatch(ctx context.Context, maxItems int) ([]*models.QueueItem, error) {
	items, err := s.store.ListReady(ctx, s.now(), maxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready items: %w", err)
	}

	return items, nil
}

func (s *service) MarkSuccess(ctx context.Context, itemID string) error {
	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to remove delivered item: %w", err)
	}

	return nil
}

func (s *service) MarkFailure(ctx context.Context, itemID, errText string) error {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load failed item: %w", err)
	}

	item.RetryCount++
	item.LastError = errText

	if item.RetryCount > maxRetries {
		now := s.now()
		item.DeadLetter = true
		item.NextRetryAt = nil
		item.FailureReason = errText
		item.FailedAt = &now

		s.logger.Warn("Queue item moved to dead letter",
			"item_id", item.ID,
			"record_id", item.RecordID,
			"retry_count", item.RetryCount,
			"error", errText)
	} else {
		nextRetryAt := s.now().Add(backoffFor(item.RetryCount))
		item.NextRetryAt = &nextRetryAt

		s.logger.Debug("Queue item scheduled for retry",
			"item_id", item.ID,
			"retry_count", item.RetryCount,
			"next_retry_at", nextRetryAt)
	}

	if err := s.store.SaveItem(ctx, item); err != nil {
		return fmt.Errorf("failed to save failed item: %w", err)
	}

	return nil
}

// backoffFor возвращает задержку перед попыткой retryCount (с 1).
// За пределами таблицы повторяется последнее значение.
func backoffFor(retryCount int) time.Duration {
	index := retryCount - 1
	if index >= len(backoffSchedule) {
		index = len(backoffSchedule) - 1
	}
	return backoffSchedule[index]
}

func (s *service) MarkPermanentFailure(ctx context.Context, itemID, reason string) error {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load failed item: %w", err)
	}

	now := s.now()
	item.RetryCount++
	item.LastError = reason
	item.DeadLetter = true
	item.NextRetryAt = nil
	item.FailureReason = reason
	item.FailedAt = &now

	if err := s.store.SaveItem(ctx, item); err != nil {
		return fmt.Errorf("failed to save dead letter item: %w", err)
	}

	s.logger.Warn("Queue item rejected permanently",
		"item_id", item.ID,
		"record_id", item.RecordID,
		"reason", reason)

	return nil
}

func (s *service) PromoteIfRepeatedlyFailing(ctx context.Context, itemID string) error {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load item for promotion: %w", err)
	}

	if item.DeadLetter || item.RetryCount < promoteThreshold || item.Priority <= models.PriorityHigh {
		return nil
	}

	item.Priority = models.PriorityHigh
	if err := s.store.SaveItem(ctx, item); err != nil {
		return fmt.Errorf("failed to promote item: %w", err)
	}

	s.logger.Info("Promoted repeatedly failing item",
		"item_id", item.ID,
		"retry_count", item.RetryCount)

	return nil
}

func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.store.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}

	return count, nil
}

func (s *service) DeadLetters(ctx context.Context) ([]*models.QueueItem, error) {
	items, err := s.store.ListDeadLetters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead letters: %w", err)
	}

	return items, nil
}

func (s *service) RequeueDeadLetter(ctx context.Context, itemID string, priority *models.Priority) error {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load dead letter item: %w", err)
	}

	if !item.DeadLetter {
		return fmt.Errorf("item %s is not a dead letter", itemID)
	}

	item.DeadLetter = false
	item.RetryCount = 0
	item.NextRetryAt = nil
	item.LastError = ""
	item.FailureReason = ""
	item.FailedAt = nil
	if priority != nil {
		item.Priority = *priority
	}

	if err := s.store.SaveItem(ctx, item); err != nil {
		return fmt.Errorf("failed to requeue dead letter item: %w", err)
	}

	s.logger.Info("Requeued dead letter item", "item_id", item.ID)

	return nil
}

func (s *service) PurgeDeadLetter(ctx context.Context, itemID string) error {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load dead letter item: %w", err)
	}

	if !item.DeadLetter {
		return fmt.Errorf("item %s is not a dead letter", itemID)
	}

	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to purge dead letter item: %w", err)
	}

	return nil
}
