package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	apihttp "github.com/offlinekit/recordsync/internal/client/api"
	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/conflict"
	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/netmon"
	"github.com/offlinekit/recordsync/internal/queue"
	"github.com/offlinekit/recordsync/internal/vector"
)

//go:generate moq -out service_mock.go . Service

// Типизированные отказы оркестратора. Offline — не исключительная
// ситуация: сетевой вызов не предпринимался и очередь не тронута.
var (
	ErrOffline        = errors.New("sync failed: offline")
	ErrSyncInProgress = errors.New("sync already in progress")
)

// Service — оркестратор синхронизации: гонит очередь на сервер (push),
// забирает серверные изменения (pull) и разруливает конфликты через
// детектор и merge-движок. Все входы сериализованы in-flight флагом:
// push, pull, авто-синк и периодический таймер никогда не выполняются
// одновременно на одном устройстве.
type Service interface {
	// Push доставляет на сервер до batchSize готовых элементов очереди
	Push(ctx context.Context, batchSize int) (*PushResult, error)

	// Pull забирает все записи с сервера и согласует их с локальным состоянием
	Pull(ctx context.Context) (*PullResult, error)

	// SyncAll выполняет push, затем pull. Последовательность обязательна:
	// pull рассчитывает, что локально известные изменения уже на сервере
	SyncAll(ctx context.Context) (*Result, error)

	// Resolve завершает ручное разрешение конфликта по выбору пользователя
	Resolve(ctx context.Context, recordID string, choices map[string]models.Side) (*models.Record, error)

	// Conflicts возвращает запаркованные критические конфликты
	Conflicts(ctx context.Context) ([]*models.ConflictState, error)

	// Run крутит цикл авто-синхронизации до отмены контекста
	Run(ctx context.Context)
}

// TokenProvider выдает действующий access token для запросов к серверу.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// PushResult агрегирует исход одного push-батча.
// Success — true только если ни один элемент не провалился.
type PushResult struct {
	Errors    []string // тексты ошибок по элементам
	Attempted int      // сколько элементов взято из очереди
	Succeeded int      // доставлено
	Failed    int      // провалено (вернулись в очередь или в dead letter)
}

// Success возвращает true, если батч прошел без единой ошибки.
func (r *PushResult) Success() bool { return r.Failed == 0 }

// PullResult агрегирует исход одного pull-цикла.
type PullResult struct {
	Errors        []string // ошибки по отдельным записям
	Fetched       int      // получено записей с сервера
	Inserted      int      // новых записей вставлено локально
	FastForwarded int      // локальных копий перезаписано без конфликта
	Merged        int      // записей слито автоматически
	Conflicts     int      // критических конфликтов запарковано
	Failed        int      // записей не удалось обработать
}

// Success возвращает true, если все записи обработаны.
func (r *PullResult) Success() bool { return r.Failed == 0 }

// Result — объединенный результат SyncAll.
type Result struct {
	Push   *PushResult
	Pull   *PullResult
	Errors []string
}

// Success возвращает true, если и push, и pull прошли полностью.
func (r *Result) Success() bool { return len(r.Errors) == 0 }

// Config собирает зависимости оркестратора. Все коллабораторы
// инжектируются, чтобы несколько устройств (и тесты) могли работать
// в изоляции без глобального состояния.
type Config struct {
	API       apihttp.ClientAPI
	Records   storage.RecordStorage
	Queue     queue.Service
	Monitor   netmon.Monitor
	Tokens    TokenProvider
	Logger    *slog.Logger
	DeviceID  string
	BatchSize int           // размер push-батча (по умолчанию 20)
	Interval  time.Duration // период фонового авто-синка (по умолчанию 30s)
}

const (
	defaultBatchSize = 20
	defaultInterval  = 30 * time.Second
)

type service struct {
	api       apihttp.ClientAPI
	records   storage.RecordStorage
	queue     queue.Service
	monitor   netmon.Monitor
	tokens    TokenProvider
	merger    *conflict.Merger
	logger    *slog.Logger
	now       func() time.Time
	newTicker func(d time.Duration) (<-chan time.Time, func())
	deviceID  string
	batchSize int
	interval  time.Duration
	inFlight  atomic.Bool
}

// NewService создает оркестратор синхронизации.
func NewService(cfg Config) Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}

	return &service{
		api:       cfg.API,
		records:   cfg.Records,
		queue:     cfg.Queue,
		monitor:   cfg.Monitor,
		tokens:    cfg.Tokens,
		merger:    conflict.NewMerger(cfg.DeviceID),
		logger:    cfg.Logger,
		deviceID:  cfg.DeviceID,
		batchSize: cfg.BatchSize,
		interval:  cfg.Interval,
		now:       time.Now,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

func (s *service) Push(ctx context.Context, batchSize int) (*PushResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.inFlight.Store(false)

	return s.push(ctx, batchSize)
}

func (s *service) Pull(ctx context.Context) (*PullResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.inFlight.Store(false)

	return s.pull(ctx)
}

func (s *service) SyncAll(ctx context.Context) (*Result, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.inFlight.Store(false)

	result := &Result{}

	// Отказ push не блокирует pull: ошибки копятся независимо
	pushResult, err := s.push(ctx, s.batchSize)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("push: %v", err))
	} else {
		result.Push = pushResult
		result.Errors = append(result.Errors, pushResult.Errors...)
	}

	pullResult, err := s.pull(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("pull: %v", err))
	} else {
		result.Pull = pullResult
		result.Errors = append(result.Errors, pullResult.Errors...)
	}

	return result, nil
}

// push доставляет батч очереди на сервер. Провал одного элемента
// не прерывает батч: частичный успех ожидаем и отражается в результате.
func (s *service) push(ctx context.Context, batchSize int) (*PushResult, error) {
	if !s.monitor.IsOnline() {
		return nil, ErrOffline
	}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	items, err := s.queue.DequeueBatch(ctx, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue batch: %w", err)
	}

	result := &PushResult{}

	for _, item := range items {
		result.Attempted++

		if deliverErr := s.deliver(ctx, token, item); deliverErr != nil {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s %s: %v", item.Operation, item.RecordID, deliverErr))
			s.handleDeliveryFailure(ctx, item, deliverErr)
			continue
		}

		result.Succeeded++
		if err := s.queue.MarkSuccess(ctx, item.ID); err != nil {
			s.logger.Warn("Failed to remove delivered item", "item_id", item.ID, "error", err)
		}
	}

	s.logger.Info("Push completed",
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed)

	return result, nil
}

// deliver выполняет операцию элемента против удаленного API.
// Состояние записи берется текущее: если запись менялась после постановки
// в очередь, на сервер уходит последняя версия.
func (s *service) deliver(ctx context.Context, token string, item *models.QueueItem) error {
	switch item.Operation {
	case models.OperationCreate, models.OperationUpdate:
		record, err := s.records.GetRecord(ctx, item.RecordID)
		if errors.Is(err, storage.ErrRecordNotFound) {
			// Запись удалили локально до доставки; delete уже в очереди
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load record: %w", err)
		}

		if item.Operation == models.OperationCreate {
			if _, err := s.api.CreateRecord(ctx, token, toWire(record)); err != nil {
				return err
			}
		} else {
			req := apiUpdateRequest(record)
			if _, err := s.api.UpdateRecord(ctx, token, record.ID, req); err != nil {
				return err
			}
		}

		s.markRecordSynced(ctx, record)
		return nil

	case models.OperationDelete:
		err := s.api.DeleteRecord(ctx, token, item.RecordID)
		var apiErr *apihttp.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			// Запись уже удалена на сервере
			return nil
		}
		return err

	default:
		return fmt.Errorf("unknown operation %q", item.Operation)
	}
}

// handleDeliveryFailure применяет retry-политику к провалившемуся элементу.
// Безнадежные отказы сервера (4xx, кроме 408 и 429) сразу уходят
// в dead letter: повторная отправка того же payload обречена.
// Транспортные ошибки и 5xx ретраятся с backoff.
func (s *service) handleDeliveryFailure(ctx context.Context, item *models.QueueItem, deliverErr error) {
	var apiErr *apihttp.Error
	if errors.As(deliverErr, &apiErr) && isPermanentRejection(apiErr.StatusCode) {
		if err := s.queue.MarkPermanentFailure(ctx, item.ID, deliverErr.Error()); err != nil {
			s.logger.Warn("Failed to dead-letter item", "item_id", item.ID, "error", err)
		}
		return
	}

	if err := s.queue.MarkFailure(ctx, item.ID, deliverErr.Error()); err != nil {
		s.logger.Warn("Failed to record item failure", "item_id", item.ID, "error", err)
		return
	}
	if err := s.queue.PromoteIfRepeatedlyFailing(ctx, item.ID); err != nil {
		s.logger.Warn("Failed to promote item", "item_id", item.ID, "error", err)
	}
}

func isPermanentRejection(statusCode int) bool {
	if statusCode < 400 || statusCode >= 500 {
		return false
	}
	return statusCode != 408 && statusCode != 429
}

// markRecordSynced помечает запись как синхронизированную после
// успешной доставки ее состояния на сервер.
func (s *service) markRecordSynced(ctx context.Context, record *models.Record) {
	if record.SyncStatus == models.SyncStatusConflict {
		return
	}

	record.SyncStatus = models.SyncStatusSynced
	if err := s.records.SaveRecord(ctx, record); err != nil {
		s.logger.Warn("Failed to mark record synced", "record_id", record.ID, "error", err)
	}
}

// pull забирает все записи с сервера и согласует каждую с локальной
// копией. Ошибка по одной записи не прерывает обработку остальных.
func (s *service) pull(ctx context.Context) (*PullResult, error) {
	if !s.monitor.IsOnline() {
		return nil, ErrOffline
	}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	wireRecords, err := s.api.ListRecords(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote records: %w", err)
	}

	result := &PullResult{Fetched: len(wireRecords)}

	for i := range wireRecords {
		remote := fromWire(&wireRecords[i])
		if err := s.applyRemote(ctx, remote, result); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("record %s: %v", remote.ID, err))
		}
	}

	s.logger.Info("Pull completed",
		"fetched", result.Fetched,
		"inserted", result.Inserted,
		"fast_forwarded", result.FastForwarded,
		"merged", result.Merged,
		"conflicts", result.Conflicts,
		"failed", result.Failed)

	return result, nil
}

// applyRemote согласует одну серверную запись с локальным состоянием.
func (s *service) applyRemote(ctx context.Context, remote *models.Record, result *PullResult) error {
	local, err := s.records.GetRecord(ctx, remote.ID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		remote.SyncStatus = models.SyncStatusSynced
		if err := s.records.SaveRecord(ctx, remote); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
		result.Inserted++
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load local record: %w", err)
	}

	// Без локальных изменений серверная версия применяется целиком
	if local.SyncStatus == models.SyncStatusSynced {
		if vector.Equal(local.VersionVector, remote.VersionVector) {
			return nil
		}
		remote.SyncStatus = models.SyncStatusSynced
		if err := s.records.SaveRecord(ctx, remote); err != nil {
			return fmt.Errorf("failed to fast-forward record: %w", err)
		}
		result.FastForwarded++
		return nil
	}

	report := conflict.Detect(local, remote)

	if !report.HasConflict {
		// Истории упорядочены: либо сервер строго новее, либо локальная
		// сторона ждет push
		if vector.Dominates(remote.VersionVector, local.VersionVector) {
			remote.SyncStatus = models.SyncStatusSynced
			if err := s.records.SaveRecord(ctx, remote); err != nil {
				return fmt.Errorf("failed to fast-forward record: %w", err)
			}
			result.FastForwarded++
		}
		return nil
	}

	merged, err := s.merger.AutoMerge(local, remote)

	var criticalErr *conflict.CriticalConflictError
	if errors.As(err, &criticalErr) {
		// Ожидаемый исход, не ошибка: паркуем конфликт для ручного
		// разрешения вместе со снимком серверной версии
		state := &models.ConflictState{
			RecordID:   local.ID,
			Remote:     remote,
			Report:     report,
			DetectedAt: s.now(),
		}

		local.SyncStatus = models.SyncStatusConflict
		if err := s.records.SaveRecord(ctx, local); err != nil {
			return fmt.Errorf("failed to flag record as conflicted: %w", err)
		}
		if err := s.records.SaveConflict(ctx, state); err != nil {
			return fmt.Errorf("failed to park conflict: %w", err)
		}

		s.logger.Warn("Critical conflict parked",
			"record_id", local.ID,
			"critical_fields", criticalErr.Count)

		result.Conflicts++
		return nil
	}
	if err != nil {
		return fmt.Errorf("auto-merge failed: %w", err)
	}

	merged.SyncStatus = models.SyncStatusSynced
	if err := s.records.SaveRecord(ctx, merged); err != nil {
		return fmt.Errorf("failed to save merged record: %w", err)
	}

	result.Merged++
	return nil
}

// Resolve применяет выбор пользователя к запаркованному конфликту.
// Итоговая запись помечается pending и ставится в очередь с высоким
// приоритетом, чтобы разрешение быстрее добралось до сервера.
func (s *service) Resolve(ctx context.Context, recordID string, choices map[string]models.Side) (*models.Record, error) {
	local, err := s.records.GetRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	state, err := s.records.GetConflict(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflict snapshot: %w", err)
	}

	merged, err := s.merger.ApplyManualResolution(local, state.Remote, choices, state.Report.AutoMergedFields)
	if err != nil {
		return nil, err
	}

	merged.SyncStatus = models.SyncStatusPending
	if err := s.records.SaveRecord(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to save resolved record: %w", err)
	}
	if err := s.records.DeleteConflict(ctx, recordID); err != nil {
		return nil, fmt.Errorf("failed to clear conflict snapshot: %w", err)
	}

	priority := models.PriorityHigh
	if _, err := s.queue.Enqueue(ctx, queue.EnqueueRequest{
		RecordID:  merged.ID,
		Entity:    models.EntityQuote,
		Operation: models.OperationUpdate,
		Payload:   merged.Fields,
		Priority:  &priority,
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue resolved record: %w", err)
	}

	s.logger.Info("Conflict resolved manually", "record_id", recordID)

	return merged, nil
}

func (s *service) Conflicts(ctx context.Context) ([]*models.ConflictState, error) {
	return s.records.ListConflicts(ctx)
}
