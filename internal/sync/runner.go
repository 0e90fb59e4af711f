package sync

import (
	"context"
	"errors"
	"time"
)

// Run крутит цикл авто-синхронизации до отмены контекста.
//
// Два независимых триггера:
//   - переход offline -> online запускает SyncAll, если очередь не пуста;
//   - периодический таймер перепроверяет очередь, пока устройство онлайн,
//     страхуя от пропущенных событий монитора. В offline таймер остановлен.
//
// Пересекающиеся срабатывания схлопываются: SyncAll под in-flight флагом
// возвращает ErrSyncInProgress, и повторный запуск просто пропускается.
func (s *service) Run(ctx context.Context) {
	events := make(chan bool, 8)
	unsubscribe := s.monitor.Subscribe(func(online bool) {
		select {
		case events <- online:
		default:
			// Канал полон: состояние перечитается по таймеру
		}
	})
	defer unsubscribe()

	var tickC <-chan time.Time
	var stopTicker func()

	startTimer := func() {
		if stopTicker == nil {
			tickC, stopTicker = s.newTicker(s.interval)
		}
	}
	stopTimer := func() {
		if stopTicker != nil {
			stopTicker()
			stopTicker = nil
			tickC = nil
		}
	}
	defer stopTimer()

	if s.monitor.IsOnline() {
		startTimer()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case online := <-events:
			if !online {
				stopTimer()
				continue
			}
			startTimer()
			s.autoSync(ctx)

		case <-tickC:
			if !s.monitor.IsOnline() {
				stopTimer()
				continue
			}
			s.autoSync(ctx)
		}
	}
}

// autoSync запускает SyncAll, если есть ожидающая работа.
func (s *service) autoSync(ctx context.Context) {
	pending, err := s.queue.PendingCount(ctx)
	if err != nil {
		s.logger.Warn("Failed to check pending queue", "error", err)
		return
	}
	if pending == 0 {
		return
	}

	result, err := s.SyncAll(ctx)
	switch {
	case errors.Is(err, ErrSyncInProgress):
		s.logger.Debug("Auto-sync skipped: sync already running")
	case err != nil:
		s.logger.Warn("Auto-sync failed", "error", err)
	case !result.Success():
		s.logger.Warn("Auto-sync finished with errors", "errors", len(result.Errors))
	}
}
