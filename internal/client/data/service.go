package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/queue"
	"github.com/offlinekit/recordsync/internal/vector"
)

// ErrUnresolvedConflict возвращается при попытке редактировать запись,
// у которой есть неразрешенный критический конфликт.
var ErrUnresolvedConflict = errors.New("record has an unresolved conflict")

// Service — локальный CRUD слой записей. Каждая мутация увеличивает
// счетчик этого устройства в version vector, помечает запись как pending
// и ставит соответствующий элемент в очередь синхронизации.
type Service struct {
	records  storage.RecordStorage
	queue    queue.Service
	logger   *slog.Logger
	now      func() time.Time
	deviceID string
}

// NewService создает локальный слой данных для устройства deviceID.
func NewService(records storage.RecordStorage, q queue.Service, deviceID string, logger *slog.Logger) *Service {
	return &Service{
		records:  records,
		queue:    q,
		deviceID: deviceID,
		logger:   logger,
		now:      time.Now,
	}
}

// NewServiceWithClock создает сервис с заданным источником времени (тесты).
func NewServiceWithClock(records storage.RecordStorage, q queue.Service, deviceID string, logger *slog.Logger, now func() time.Time) *Service {
	s := NewService(records, q, deviceID, logger)
	s.now = now
	return s
}

// cloneFields глубоко копирует доменные поля: ни запись, ни payload
// очереди не должны разделять карту с вызывающим.
func cloneFields(fields map[string]any) map[string]any {
	cloned := make(map[string]any, len(fields))
	for name, value := range fields {
		cloned[name] = models.CloneValue(value)
	}
	return cloned
}

// CreateRecord создает новую локальную запись и ставит create в очередь.
func (s *Service) CreateRecord(ctx context.Context, fields map[string]any) (*models.Record, error) {
	now := s.now()
	fields = cloneFields(fields)

	record := &models.Record{
		ID:            uuid.New().String(),
		Version:       1,
		VersionVector: vector.NewForDevice(s.deviceID),
		Fields:        fields,
		SyncStatus:    models.SyncStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.records.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, queue.EnqueueRequest{
		RecordID:  record.ID,
		Entity:    models.EntityQuote,
		Operation: models.OperationCreate,
		Payload:   cloneFields(fields),
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue create: %w", err)
	}

	s.logger.Info("Created record", "record_id", record.ID)

	return record, nil
}

// UpdateRecord применяет частичное обновление к локальной записи
// и ставит update в очередь. Запись с неразрешенным конфликтом
// редактировать нельзя: сначала Resolve.
func (s *Service) UpdateRecord(ctx context.Context, id string, fields map[string]any) (*models.Record, error) {
	record, err := s.records.GetRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	if record.SyncStatus == models.SyncStatusConflict {
		return nil, ErrUnresolvedConflict
	}

	if record.Fields == nil {
		record.Fields = make(map[string]any, len(fields))
	}
	for name, value := range fields {
		record.Fields[name] = models.CloneValue(value)
	}
	payload := cloneFields(fields)

	// Версия растет только при merge; локальная правка двигает
	// вектор и временную метку
	record.VersionVector = record.VersionVector.Increment(s.deviceID)
	record.UpdatedAt = s.now()
	record.SyncStatus = models.SyncStatusPending

	if err := s.records.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, queue.EnqueueRequest{
		RecordID:  record.ID,
		Entity:    models.EntityQuote,
		Operation: models.OperationUpdate,
		Payload:   payload,
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue update: %w", err)
	}

	return record, nil
}

// DeleteRecord удаляет запись локально и ставит delete в очередь.
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.records.GetRecord(ctx, id); err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	if err := s.records.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, queue.EnqueueRequest{
		RecordID:  id,
		Entity:    models.EntityQuote,
		Operation: models.OperationDelete,
	}); err != nil {
		return fmt.Errorf("failed to enqueue delete: %w", err)
	}

	s.logger.Info("Deleted record", "record_id", id)

	return nil
}

// GetRecord возвращает локальную запись по ID.
func (s *Service) GetRecord(ctx context.Context, id string) (*models.Record, error) {
	return s.records.GetRecord(ctx, id)
}

// ListRecords возвращает все локальные записи.
func (s *Service) ListRecords(ctx context.Context) ([]*models.Record, error) {
	return s.records.ListRecords(ctx)
}
