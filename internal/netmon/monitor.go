package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out monitor_mock.go . Monitor

// Monitor наблюдает за доступностью сервера. Оркестратор проверяет
// IsOnline перед каждым сетевым циклом и подписывается на переходы
// offline -> online, чтобы сразу запустить синхронизацию.
type Monitor interface {
	// IsOnline возвращает последнее известное состояние связи
	IsOnline() bool

	// Subscribe регистрирует callback на смену состояния.
	// Возвращает функцию отписки.
	Subscribe(callback func(online bool)) (unsubscribe func())
}

// Prober выполняет одну проверку доступности сервера.
type Prober interface {
	Health(ctx context.Context) error
}

// PollingMonitor периодически опрашивает health endpoint сервера.
// Состояние меняется только по результату опроса; подписчики
// уведомляются при каждом переходе.
type PollingMonitor struct {
	prober    Prober
	logger    *slog.Logger
	stop      chan struct{}
	done      chan struct{}
	callbacks map[int]func(online bool)
	interval  time.Duration
	nextID    int
	mu        sync.Mutex
	online    bool
}

// NewPollingMonitor создает монитор с заданным интервалом опроса.
func NewPollingMonitor(prober Prober, interval time.Duration, logger *slog.Logger) *PollingMonitor {
	return &PollingMonitor{
		prober:    prober,
		interval:  interval,
		logger:    logger,
		callbacks: make(map[int]func(online bool)),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start выполняет первый опрос синхронно и запускает цикл опроса.
// После возврата IsOnline отражает реальное состояние сервера:
// разовые команды читают его сразу, не дожидаясь фонового цикла.
func (m *PollingMonitor) Start(ctx context.Context) {
	m.probe(ctx)

	go func() {
		defer close(m.done)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stop:
				return
			case <-ticker.C:
				m.probe(ctx)
			}
		}
	}()
}

// Stop останавливает цикл опроса и дожидается его завершения.
func (m *PollingMonitor) Stop() {
	close(m.stop)
	<-m.done
}

// IsOnline возвращает последнее известное состояние связи
func (m *PollingMonitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe регистрирует callback на смену состояния
func (m *PollingMonitor) Subscribe(callback func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.callbacks[id] = callback

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.callbacks, id)
	}
}

// SetOnline выставляет состояние напрямую, уведомляя подписчиков.
// Используется в тестах и для ручного перевода в offline режим.
func (m *PollingMonitor) SetOnline(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	callbacks := make([]func(bool), 0, len(m.callbacks))
	for _, cb := range m.callbacks {
		callbacks = append(callbacks, cb)
	}
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info("Connectivity changed", "online", online)
	for _, cb := range callbacks {
		cb(online)
	}
}

func (m *PollingMonitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := m.prober.Health(probeCtx)
	m.SetOnline(err == nil)
}
